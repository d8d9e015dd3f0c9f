package ports

import "go.trai.ch/gantt/internal/core/domain"

// LayoutSink receives every layout produced by a rebuild.
//
//go:generate mockgen -source=layout.go -destination=mocks/mock_layout.go -package=mocks
type LayoutSink interface {
	Present(layout *domain.Layout)
}

// ElementHost is the visual parent elements are attached to.
// Attach returns the callback that removes the element from the host again.
type ElementHost interface {
	Attach(el domain.Element) (detach func())
}
