package layout

import (
	"time"

	"go.trai.ch/gantt/internal/core/domain"
	"go.trai.ch/gantt/internal/engine/spanmap"
	"go.trai.ch/gantt/internal/engine/timeaxis"
	"go.trai.ch/gantt/internal/engine/viewport"
)

// build runs one layout pass. The caller holds rebuildMu.
func (o *Orchestrator) build(in Inputs) *domain.Layout {
	opts := in.Options
	rowHeight := orDefault(opts.RowHeight, domain.DefaultRowHeight)
	columnWidth := orDefault(opts.ColumnWidth, domain.DefaultColumnWidth)

	ticks := o.ticks.Ticks(in.Start, in.End, in.Unit, in.Locale)
	rowCount := rowCount(in)

	virtualized := opts.EnableVirtualization && viewport.ShouldVirtualize(len(in.Tasks), opts.MaxVisibleTasks)

	// Elements from the previous pass go back to the pool before anything is materialized.
	o.recycle()

	rows := domain.FullRange(rowCount)
	columns := domain.FullRange(len(ticks))
	if virtualized {
		w := viewport.Plan(in.Viewport, rowCount, len(ticks), rowHeight, columnWidth)
		rows, columns = w.Rows, w.Columns
	}

	layout := &domain.Layout{
		Ticks:       ticks,
		Unit:        in.Unit,
		Columns:     columns,
		Rows:        rows,
		RowCount:    rowCount,
		Virtualized: virtualized,
	}

	o.buildHeaders(layout, in)
	o.buildGrid(layout, rowHeight)
	o.placeTasks(layout, in)

	layout.Elements = make(map[domain.ElementKind]int, len(domain.ElementKinds))
	for _, el := range o.visible {
		layout.Elements[el.Kind()]++
	}
	return layout
}

func (o *Orchestrator) buildHeaders(layout *domain.Layout, in Inputs) {
	if layout.Columns.IsEmpty() {
		return
	}
	window := layout.Ticks[layout.Columns.StartIndex : layout.Columns.EndIndex+1]
	layout.Labels = timeaxis.FormatTicks(window, in.Unit, in.DateFormat, in.TimeFormat, in.Locale)

	for i, tick := range window {
		cell := o.pool.HeaderCell()
		cell.Column = layout.Columns.StartIndex + i
		cell.Tick = tick
		cell.Label = layout.Labels[i]
		o.attach(cell)
	}
}

func (o *Orchestrator) buildGrid(layout *domain.Layout, rowHeight float64) {
	for r := layout.Rows.StartIndex; r <= layout.Rows.EndIndex; r++ {
		row := o.pool.Row()
		row.Row = r
		row.Top = float64(r) * rowHeight
		row.Height = rowHeight
		row.Striped = r%2 == 1
		o.attach(row)

		for c := layout.Columns.StartIndex; c <= layout.Columns.EndIndex; c++ {
			cell := o.pool.Cell()
			cell.Row = r
			cell.Column = c
			cell.Weekend = layout.Unit == domain.UnitDay && isWeekend(layout.Ticks[c])
			o.attach(cell)
		}
	}
}

func (o *Orchestrator) placeTasks(layout *domain.Layout, in Inputs) {
	mapper := spanmap.New(in.Locale)

	for i := range in.Tasks {
		task := &in.Tasks[i]

		row, ok := resolveRow(task.RowIndex, layout.RowCount, in.Options.ClampTasksToVisibleRows)
		if !ok {
			layout.Skipped++
			continue
		}

		span := mapper.TaskSpan(layout.Ticks, task.Start, task.End, in.Unit)
		if layout.Virtualized && !inWindow(layout, row, span) {
			layout.Skipped++
			continue
		}

		bar := o.pool.Bar()
		bar.TaskID = task.ID
		bar.Label = task.Name
		bar.Row = row
		bar.Column = span.StartIndex
		bar.ColumnSpan = span.ColumnSpan
		o.attach(bar)

		layout.Placements = append(layout.Placements, domain.Placement{
			TaskID:     task.ID,
			Name:       task.Name,
			RowIndex:   row,
			StartIndex: span.StartIndex,
			ColumnSpan: span.ColumnSpan,
		})
	}
}

// resolveRow maps a task row into [0, rowCount). Out-of-range rows are clamped or rejected.
func resolveRow(row, rowCount int, clampRows bool) (int, bool) {
	if row >= 0 && row < rowCount {
		return row, true
	}
	if !clampRows || rowCount == 0 {
		return 0, false
	}
	return max(0, min(row, rowCount-1)), true
}

func inWindow(layout *domain.Layout, row int, span domain.TaskSpan) bool {
	if !layout.Rows.Contains(row) {
		return false
	}
	return span.EndIndex() >= layout.Columns.StartIndex && span.StartIndex <= layout.Columns.EndIndex
}

func (o *Orchestrator) attach(el domain.Element) {
	o.visible = append(o.visible, el)
	if o.host != nil {
		el.SetOwner(o.host.Attach(el))
	}
}

// recycle returns every visible element to the pool. The caller holds rebuildMu.
func (o *Orchestrator) recycle() {
	o.pool.ReturnAll(o.visible)
	clear(o.visible)
	o.visible = o.visible[:0]
}

func rowCount(in Inputs) int {
	if in.Options.VisibleRows > 0 {
		return in.Options.VisibleRows
	}
	rows := 0
	for i := range in.Tasks {
		rows = max(rows, in.Tasks[i].RowIndex+1)
	}
	return rows
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func orDefault(v, fallback float64) float64 {
	if v > 0 {
		return v
	}
	return fallback
}
