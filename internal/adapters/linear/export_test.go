package linear

import (
	"io"

	"github.com/muesli/termenv"
)

// NewRendererWithProfile exposes newRenderer for testing.
func NewRendererWithProfile(stdout, stderr io.Writer, profile func() termenv.Profile) *Renderer {
	return newRenderer(stdout, stderr, profile)
}
