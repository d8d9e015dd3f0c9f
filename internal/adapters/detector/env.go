// Package detector decides whether the interactive viewer can run.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the chart.
type OutputMode int

const (
	// ModeAuto picks the mode from the environment.
	ModeAuto OutputMode = iota
	// ModeTUI runs the interactive viewer.
	ModeTUI
	// ModeLinear prints the text chart.
	ModeLinear
)

// String returns the flag name of the mode.
func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns ModeLinear when stdout is not a terminal or CI is set, else ModeTUI.
func DetectEnvironment() OutputMode {
	return detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) OutputMode {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return ModeLinear
	}
	return ModeTUI
}

// ResolveMode applies the user's --output flag to the detected mode.
// userFlag is one of "auto", "tui", "linear", "ci" or empty; unknown values keep the detected mode.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}

// TerminalSize returns the size of the terminal on stdout, or fallback values when stdout is not a terminal.
func TerminalSize(fallbackWidth, fallbackHeight int) (width, height int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return fallbackWidth, fallbackHeight
	}
	return w, h
}
