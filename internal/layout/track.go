package layout

import "math"

// ResolveSlots computes the size of each slot along one axis.
//
// Fixed slots take their amount up to the available space, Auto slots take the matching entry of
// content (the largest content measured for that slot), and Star slots share
// whatever space is left by weight. Space lost to integer rounding is not
// redistributed. An axis without definitions has one implicit slot that
// fills all available space.
func ResolveSlots(defs []Value, available int, content []int) []int {
	if len(defs) == 0 {
		return []int{max(0, available)}
	}

	sizes := make([]int, len(defs))
	used := 0
	totalWeight := 0.0

	for i, def := range defs {
		switch {
		case def.IsFixed():
			sizes[i] = fixedSize(def.Amount, available)
		case def.IsAuto():
			if i < len(content) {
				sizes[i] = max(0, content[i])
			}
		default:
			if isWeight(def.Amount) {
				totalWeight += def.Amount
			}
			continue
		}
		used += sizes[i]
	}

	remaining := available - used
	if remaining <= 0 || totalWeight == 0 {
		return sizes
	}

	for i, def := range defs {
		if def.IsStar() && isWeight(def.Amount) {
			sizes[i] = int(float64(remaining) * def.Amount / totalWeight)
		}
	}
	return sizes
}

// fixedSize converts a fixed amount to cells, limited to [0, available].
// NaN counts as zero.
func fixedSize(amount float64, available int) int {
	if !(amount > 0) || available <= 0 {
		return 0
	}
	return int(math.Min(amount, float64(available)))
}

// isWeight reports whether a star amount takes part in sharing space.
func isWeight(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 1)
}

// slotOffsets returns the start offset of every slot given resolved sizes.
func slotOffsets(sizes []int) []int {
	offsets := make([]int, len(sizes))
	pos := 0
	for i, size := range sizes {
		offsets[i] = pos
		pos += size
	}
	return offsets
}

// spanExtent returns the combined size of count slots starting at start.
func spanExtent(sizes []int, start, count int) int {
	total := 0
	for i := start; i < start+count && i < len(sizes); i++ {
		total += sizes[i]
	}
	return total
}
