package layout

import (
	"strconv"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto  Unit = iota // Size determined by content
	UnitFixed             // Absolute number of cells
	UnitStar              // Weighted share of the remaining space
)

// Value is the size policy of a single row or column definition.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that is sized to its content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute size.
func Fixed(px float64) Value {
	return Value{Amount: px, Unit: UnitFixed}
}

// Star returns a Value that takes a share of the remaining space
// proportional to weight.
func Star(weight float64) Value {
	return Value{Amount: weight, Unit: UnitStar}
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsFixed returns true if this value is an absolute size.
func (v Value) IsFixed() bool {
	return v.Unit == UnitFixed
}

// IsStar returns true if this value is a proportional weight.
func (v Value) IsStar() bool {
	return v.Unit == UnitStar
}

// String formats the value the same way it is written in a size list.
func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return formatAmount(v.Amount)
	case UnitStar:
		if v.Amount == 1 {
			return "*"
		}
		return formatAmount(v.Amount) + "*"
	default:
		return "Auto"
	}
}

func formatAmount(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
