package autogrid

import "github.com/grindlemire/go-autogrid/internal/layout"

// Definition is a single row or column slot.
type Definition struct {
	Size Value
}

// Grid is a panel that assigns rows and columns to its children
// automatically. It owns its slot definitions and children directly.
//
// A Grid is not safe for concurrent use; the host drives it from a single
// layout thread.
type Grid struct {
	// Slots
	rows    []Definition
	columns []Definition

	// Children in flow order
	children []*Child

	// Flow properties
	orientation  Orientation
	autoIndexing bool

	// Re-index bookkeeping. crossAxisCount is the cross axis slot count seen
	// by the last re-index and is compared against the live count to detect
	// slot edits made behind the grid's back.
	dirty          bool
	crossAxisCount int

	// Presets for children that leave the attribute unset (nil = no preset)
	childHorizontalAlignment *Align
	childVerticalAlignment   *Align
	childMargin              *Edges

	// Results of the last Calculate
	bounds      Rect
	rowSizes    []int
	columnSizes []int
}

// New creates a new Grid with the given options.
// By default a Grid flows horizontally, auto-indexes its children and has
// no slots.
func New(opts ...Option) *Grid {
	g := &Grid{
		orientation:  Horizontal,
		autoIndexing: true,
		dirty:        true,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Orientation returns the flow order of the grid.
func (g *Grid) Orientation() Orientation {
	return g.orientation
}

// SetOrientation changes the flow order and forces a re-index.
func (g *Grid) SetOrientation(o Orientation) {
	g.orientation = o
	g.MarkDirty()
}

// AutoIndexing reports whether the grid assigns child indices itself.
func (g *Grid) AutoIndexing() bool {
	return g.autoIndexing
}

// SetAutoIndexing turns automatic index assignment on or off.
// With auto-indexing off children keep the row and column they were given,
// and only the child presets are applied.
func (g *Grid) SetAutoIndexing(enabled bool) {
	g.autoIndexing = enabled
	g.MarkDirty()
}

// MarkDirty forces a re-index on the next measurement pass.
func (g *Grid) MarkDirty() {
	g.dirty = true
}

// IsDirty returns whether the grid will re-index on the next measurement pass
// because of a property or child change.
func (g *Grid) IsDirty() bool {
	return g.dirty
}

// Bounds returns the rectangle passed to the last Calculate.
func (g *Grid) Bounds() Rect {
	return g.bounds
}

// RowSizes returns the row heights resolved by the last Calculate.
func (g *Grid) RowSizes() []int {
	return g.rowSizes
}

// ColumnSizes returns the column widths resolved by the last Calculate.
func (g *Grid) ColumnSizes() []int {
	return g.columnSizes
}

// values returns the size policies of defs.
func values(defs []Definition) []Value {
	sizes := make([]Value, len(defs))
	for i, def := range defs {
		sizes[i] = def.Size
	}
	return sizes
}

// Calculate runs the measurement pass: re-index if needed, then resolve the
// slot sizes within a width x height area and store a Rect on every child.
func (g *Grid) Calculate(width, height int) {
	g.Measure()

	g.bounds = NewRect(0, 0, max(0, width), max(0, height))

	cells := make([]layout.Cell, len(g.children))
	for i, child := range g.children {
		cells[i] = child
	}

	result := layout.Arrange(values(g.rows), values(g.columns), g.bounds, cells)
	g.rowSizes = result.Rows
	g.columnSizes = result.Columns
}
