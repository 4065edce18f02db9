package layout

// Placement is the slot position of a cell: its start row and column and
// the number of rows and columns it covers.
type Placement struct {
	Row, Column         int
	RowSpan, ColumnSpan int
}

// Cell is the interface for anything that can be arranged into grid slots.
// The arrangement works entirely with this interface, enabling custom implementations.
type Cell interface {
	// CellPlacement returns the slot position of this cell.
	CellPlacement() Placement

	// CellStyle returns the effective margin, alignment and desired size.
	CellStyle() CellStyle

	// SetRect is called by Arrange to store the computed rectangle.
	SetRect(Rect)
}
