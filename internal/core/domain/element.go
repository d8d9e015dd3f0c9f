package domain

import "time"

// ElementKind identifies a pooled visual primitive.
type ElementKind uint8

const (
	// KindTimeHeaderCell is a column header cell.
	KindTimeHeaderCell ElementKind = iota
	// KindGridRow is a row background.
	KindGridRow
	// KindGridCell is a single row/column cell.
	KindGridCell
	// KindTaskBar is a task bar.
	KindTaskBar
)

// ElementKinds lists every element kind.
var ElementKinds = []ElementKind{KindTimeHeaderCell, KindGridRow, KindGridCell, KindTaskBar}

// String returns the kind name.
func (k ElementKind) String() string {
	switch k {
	case KindTimeHeaderCell:
		return "header"
	case KindGridRow:
		return "row"
	case KindGridCell:
		return "cell"
	case KindTaskBar:
		return "bar"
	default:
		return "unknown"
	}
}

// Element is a reusable visual primitive.
// Placement fields are mutable; Reset restores the default placement.
type Element interface {
	Kind() ElementKind
	// Reset restores every placement field to its default.
	Reset()
	// SetOwner registers the callback that unregisters the element from its current parent.
	SetOwner(detach func())
	// Detach runs and clears the owner callback, if any.
	Detach()
}

type owner struct {
	detach func()
}

func (o *owner) SetOwner(detach func()) {
	o.detach = detach
}

func (o *owner) Detach() {
	if o.detach == nil {
		return
	}
	fn := o.detach
	o.detach = nil
	fn()
}

// TimeHeaderCell labels one timeline column.
type TimeHeaderCell struct {
	owner
	Column int
	Tick   time.Time
	Label  string
}

// Kind implements Element.
func (*TimeHeaderCell) Kind() ElementKind { return KindTimeHeaderCell }

// Reset implements Element.
func (c *TimeHeaderCell) Reset() {
	c.Column = 0
	c.Tick = time.Time{}
	c.Label = ""
}

// GridRow is the background of one task row.
type GridRow struct {
	owner
	Row     int
	Top     float64
	Height  float64
	Striped bool
}

// Kind implements Element.
func (*GridRow) Kind() ElementKind { return KindGridRow }

// Reset implements Element.
func (r *GridRow) Reset() {
	r.Row = 0
	r.Top = 0
	r.Height = 0
	r.Striped = false
}

// GridCell is one row/column intersection.
type GridCell struct {
	owner
	Row     int
	Column  int
	Weekend bool
}

// Kind implements Element.
func (*GridCell) Kind() ElementKind { return KindGridCell }

// Reset implements Element.
func (c *GridCell) Reset() {
	c.Row = 0
	c.Column = 0
	c.Weekend = false
}

// TaskBar draws one task across its span. A reset bar covers one column at the origin.
type TaskBar struct {
	owner
	TaskID     InternedString
	Label      string
	Row        int
	Column     int
	ColumnSpan int
}

// Kind implements Element.
func (*TaskBar) Kind() ElementKind { return KindTaskBar }

// Reset implements Element.
func (b *TaskBar) Reset() {
	b.TaskID = InternedString{}
	b.Label = ""
	b.Row = 0
	b.Column = 0
	b.ColumnSpan = 1
}

// NewElement constructs an element of kind with default placement.
func NewElement(kind ElementKind) Element {
	var el Element
	switch kind {
	case KindTimeHeaderCell:
		el = &TimeHeaderCell{}
	case KindGridRow:
		el = &GridRow{}
	case KindGridCell:
		el = &GridCell{}
	case KindTaskBar:
		el = &TaskBar{}
	default:
		return nil
	}
	el.Reset()
	return el
}
