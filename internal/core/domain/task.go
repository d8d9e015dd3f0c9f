package domain

import "time"

// Task is a read-only bar on the chart.
// IDs use InternedString since the same ids flow through every rebuild.
type Task struct {
	ID       InternedString
	Name     string
	Start    time.Time
	End      time.Time
	RowIndex int
}

// Placement is where a task ended up after layout.
type Placement struct {
	TaskID     InternedString
	Name       string
	RowIndex   int
	StartIndex int
	ColumnSpan int
}

// Layout is the result of one rebuild, handed to a LayoutSink.
type Layout struct {
	// Ticks are the column boundaries of the whole timeline.
	Ticks []time.Time
	// Labels are the header texts for Columns, in order.
	Labels []string
	// Unit is the granularity the ticks were generated with.
	Unit TimeUnit
	// Columns and Rows are the index windows materialized by the rebuild.
	Columns VisibleRange
	Rows    VisibleRange
	// RowCount is the total number of rows, materialized or not.
	RowCount int
	// Placements holds one entry per placed task.
	Placements []Placement
	// Skipped counts tasks that were not placed.
	Skipped int
	// Virtualized reports whether the virtualized strategy produced this layout.
	Virtualized bool
	// Elements counts the live elements per kind after the rebuild.
	Elements map[ElementKind]int
}
