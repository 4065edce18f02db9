package autogrid

import "github.com/grindlemire/go-autogrid/internal/layout"

// Child is an element placed in a Grid.
//
// Row and column are written by the grid when auto-indexing is on; spans are
// read by the grid and always stay under the caller's control. Alignment and
// margin are optional: a nil override leaves the attribute to the grid's
// child presets.
type Child struct {
	name string

	// Owning grid, for dirty propagation
	grid *Grid

	// Slot position
	row, column         int
	rowSpan, columnSpan int

	// Natural size excluding margin
	desired Size

	// Explicit overrides (nil = unset)
	horizontalAlignment *Align
	verticalAlignment   *Align
	margin              *Edges

	// Presets copied from the grid during re-index (nil = no preset)
	presetHorizontalAlignment *Align
	presetVerticalAlignment   *Align
	presetMargin              *Edges

	// Computed by Calculate
	rect Rect
}

// Compile-time check that Child implements layout.Cell
var _ layout.Cell = (*Child)(nil)

// NewChild creates a new Child with the given options.
// By default a Child starts at row 0, column 0 and spans one slot each way.
func NewChild(opts ...ChildOption) *Child {
	c := &Child{
		rowSpan:    1,
		columnSpan: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the label given with WithName.
func (c *Child) Name() string {
	return c.name
}

// Grid returns the grid this child belongs to, or nil.
func (c *Child) Grid() *Grid {
	return c.grid
}

// Row returns the row index.
func (c *Child) Row() int {
	return c.row
}

// SetRow sets the row index. With auto-indexing on the grid overwrites it on
// the next re-index.
func (c *Child) SetRow(row int) {
	c.row = row
}

// Column returns the column index.
func (c *Child) Column() int {
	return c.column
}

// SetColumn sets the column index. With auto-indexing on the grid overwrites
// it on the next re-index.
func (c *Child) SetColumn(column int) {
	c.column = column
}

// RowSpan returns the number of rows the child covers. A zero Child
// covers one.
func (c *Child) RowSpan() int {
	return max(1, c.rowSpan)
}

// SetRowSpan sets the number of rows the child covers (minimum 1) and marks
// the owning grid dirty.
func (c *Child) SetRowSpan(span int) {
	c.rowSpan = max(1, span)
	c.markGridDirty()
}

// ColumnSpan returns the number of columns the child covers. A zero Child
// covers one.
func (c *Child) ColumnSpan() int {
	return max(1, c.columnSpan)
}

// SetColumnSpan sets the number of columns the child covers (minimum 1) and
// marks the owning grid dirty.
func (c *Child) SetColumnSpan(span int) {
	c.columnSpan = max(1, span)
	c.markGridDirty()
}

// DesiredSize returns the natural size of the child excluding margin.
func (c *Child) DesiredSize() Size {
	return c.desired
}

// SetDesiredSize sets the natural size of the child excluding margin.
func (c *Child) SetDesiredSize(width, height int) {
	c.desired = Size{Width: max(0, width), Height: max(0, height)}
}

// Rect returns the rectangle computed by the last Calculate.
func (c *Child) Rect() Rect {
	return c.rect
}

// --- Alignment and margin ---

// HorizontalAlignment returns the effective horizontal alignment: the
// child's own value, else the grid preset, else AlignStretch.
func (c *Child) HorizontalAlignment() Align {
	return resolve(c.horizontalAlignment, c.presetHorizontalAlignment, AlignStretch)
}

// SetHorizontalAlignment sets an explicit horizontal alignment that grid
// presets never replace.
func (c *Child) SetHorizontalAlignment(a Align) {
	c.horizontalAlignment = &a
}

// ClearHorizontalAlignment removes the explicit horizontal alignment so the
// grid preset applies again.
func (c *Child) ClearHorizontalAlignment() {
	c.horizontalAlignment = nil
	c.markGridDirty()
}

// HasHorizontalAlignment reports whether the child set its own horizontal
// alignment.
func (c *Child) HasHorizontalAlignment() bool {
	return c.horizontalAlignment != nil
}

// VerticalAlignment returns the effective vertical alignment: the child's
// own value, else the grid preset, else AlignStretch.
func (c *Child) VerticalAlignment() Align {
	return resolve(c.verticalAlignment, c.presetVerticalAlignment, AlignStretch)
}

// SetVerticalAlignment sets an explicit vertical alignment that grid presets
// never replace.
func (c *Child) SetVerticalAlignment(a Align) {
	c.verticalAlignment = &a
}

// ClearVerticalAlignment removes the explicit vertical alignment so the grid
// preset applies again.
func (c *Child) ClearVerticalAlignment() {
	c.verticalAlignment = nil
	c.markGridDirty()
}

// HasVerticalAlignment reports whether the child set its own vertical
// alignment.
func (c *Child) HasVerticalAlignment() bool {
	return c.verticalAlignment != nil
}

// Margin returns the effective margin: the child's own value, else the grid
// preset, else no margin.
func (c *Child) Margin() Edges {
	return resolve(c.margin, c.presetMargin, Edges{})
}

// SetMargin sets an explicit margin that grid presets never replace.
func (c *Child) SetMargin(m Edges) {
	c.margin = &m
}

// ClearMargin removes the explicit margin so the grid preset applies again.
func (c *Child) ClearMargin() {
	c.margin = nil
	c.markGridDirty()
}

// HasMargin reports whether the child set its own margin.
func (c *Child) HasMargin() bool {
	return c.margin != nil
}

// --- layout.Cell ---

// CellPlacement implements layout.Cell.
func (c *Child) CellPlacement() layout.Placement {
	return layout.Placement{
		Row:        c.row,
		Column:     c.column,
		RowSpan:    c.RowSpan(),
		ColumnSpan: c.ColumnSpan(),
	}
}

// CellStyle implements layout.Cell.
func (c *Child) CellStyle() layout.CellStyle {
	return layout.CellStyle{
		Margin:              c.Margin(),
		HorizontalAlignment: c.HorizontalAlignment(),
		VerticalAlignment:   c.VerticalAlignment(),
		Desired:             c.desired,
	}
}

// SetRect implements layout.Cell.
func (c *Child) SetRect(r Rect) {
	c.rect = r
}

// flowSpan returns the span along the axis children flow through: columns
// for a horizontal grid, rows for a vertical one.
func (c *Child) flowSpan(o Orientation) int {
	if o == Vertical {
		return c.RowSpan()
	}
	return c.ColumnSpan()
}

// detach clears the owning grid and the presets copied from it.
func (c *Child) detach() {
	c.grid = nil
	c.presetHorizontalAlignment = nil
	c.presetVerticalAlignment = nil
	c.presetMargin = nil
}

func (c *Child) markGridDirty() {
	if c.grid != nil {
		c.grid.MarkDirty()
	}
}

// resolve returns the first non-nil of own and preset, else fallback.
func resolve[T any](own, preset *T, fallback T) T {
	if own != nil {
		return *own
	}
	if preset != nil {
		return *preset
	}
	return fallback
}
