// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package autogrid

import "github.com/grindlemire/go-autogrid/internal/layout"

// Orientation specifies the order in which children flow into the grid.
type Orientation = layout.Orientation

const (
	Horizontal = layout.Horizontal
	Vertical   = layout.Vertical
)

// Align specifies how a child is positioned inside its cell on one axis.
type Align = layout.Align

const (
	AlignStretch = layout.AlignStretch
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
)

// Value is the size policy of a row or column definition.
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto  = layout.UnitAuto
	UnitFixed = layout.UnitFixed
	UnitStar  = layout.UnitStar
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Auto returns a size policy that sizes a slot to its content.
func Auto() Value { return layout.Auto() }

// Fixed returns a size policy with an absolute size.
func Fixed(px float64) Value { return layout.Fixed(px) }

// Star returns a size policy sharing the remaining space by weight.
func Star(weight float64) Value { return layout.Star(weight) }

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, w, h int) Rect { return layout.NewRect(x, y, w, h) }

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges { return layout.EdgeAll(n) }

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h int) Edges { return layout.EdgeSymmetric(v, h) }

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges { return layout.EdgeTRBL(t, r, b, l) }
