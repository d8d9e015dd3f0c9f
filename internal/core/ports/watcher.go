package ports

import (
	"context"
	"iter"
)

// WatchOp represents the type of file system operation.
type WatchOp uint8

const (
	// OpWrite indicates a file was modified.
	OpWrite WatchOp = iota
	// OpCreate indicates a file was created, which editors do when saving atomically.
	OpCreate
	// OpRemove indicates a file was removed.
	OpRemove
	// OpRename indicates a file was renamed.
	OpRename
)

// WatchEvent represents a change to a watched file.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher watches individual files for changes.
type Watcher interface {
	// Start begins watching path.
	Start(ctx context.Context, path string) error
	// Stop stops the watcher and releases all resources.
	Stop() error
	// Events returns an iterator of change events.
	Events() iter.Seq[WatchEvent]
}
