package tui

import "go.trai.ch/gantt/internal/core/domain"

// MsgLayout delivers a freshly rebuilt layout.
type MsgLayout struct {
	Layout *domain.Layout
}

// MsgStatus replaces the status line text. A non-nil Err is shown as an error.
type MsgStatus struct {
	Text string
	Err  error
}

// MsgFeedClosed is sent once the viewer has stopped.
type MsgFeedClosed struct{}
