package layout

// Orientation specifies the order in which children flow into the grid.
type Orientation uint8

const (
	Horizontal Orientation = iota // Fill a row, then move to the next row
	Vertical                      // Fill a column, then move to the next column
)

// String returns the lower-case name of the orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Align specifies how a child is positioned inside its cell on one axis.
type Align uint8

const (
	AlignStretch Align = iota // Fill the cell (default)
	AlignStart                // Left or top edge
	AlignEnd                  // Right or bottom edge
	AlignCenter               // Centered in the cell
)

// String returns the lower-case name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	default:
		return "stretch"
	}
}

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// CellStyle holds the effective per-child properties used when arranging.
type CellStyle struct {
	Margin              Edges
	HorizontalAlignment Align
	VerticalAlignment   Align

	// Desired is the child's natural size excluding margin. It feeds Auto
	// slots and positions non-stretched children.
	Desired Size
}
