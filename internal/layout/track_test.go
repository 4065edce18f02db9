package layout

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveSlots(t *testing.T) {
	type tc struct {
		defs      []Value
		available int
		content   []int
		expected  []int
	}

	tests := map[string]tc{
		"no definitions fills available": {
			defs:      nil,
			available: 40,
			expected:  []int{40},
		},
		"fixed auto and weighted star": {
			defs:      []Value{Fixed(10), Star(1), Star(2), Auto()},
			available: 100,
			content:   []int{0, 0, 0, 15},
			expected:  []int{10, 25, 50, 15},
		},
		"fixed overflow leaves stars empty": {
			defs:      []Value{Fixed(80), Star(1)},
			available: 50,
			expected:  []int{50, 0},
		},
		"huge fixed is limited to available": {
			defs:      []Value{Fixed(1e20), Star(1)},
			available: 20,
			expected:  []int{20, 0},
		},
		"non-finite amounts take no space": {
			defs:      []Value{Fixed(math.NaN()), Star(math.Inf(1)), Star(1)},
			available: 20,
			expected:  []int{0, 0, 20},
		},
		"rounding remainder is dropped": {
			defs:      []Value{Star(1), Star(1), Star(1)},
			available: 10,
			expected:  []int{3, 3, 3},
		},
		"non-positive weight gets nothing": {
			defs:      []Value{Star(0), Star(1)},
			available: 12,
			expected:  []int{0, 12},
		},
		"auto without content is zero": {
			defs:      []Value{Auto(), Auto()},
			available: 12,
			content:   []int{4},
			expected:  []int{4, 0},
		},
		"negative fixed clamps to zero": {
			defs:      []Value{Fixed(-5), Star(1)},
			available: 10,
			expected:  []int{0, 10},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ResolveSlots(tt.defs, tt.available, tt.content)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ResolveSlots() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSlotOffsets(t *testing.T) {
	got := slotOffsets([]int{3, 0, 5, 2})
	if diff := cmp.Diff([]int{0, 3, 3, 8}, got); diff != "" {
		t.Errorf("slotOffsets() mismatch (-want +got):\n%s", diff)
	}
	if got := spanExtent([]int{3, 0, 5, 2}, 1, 5); got != 7 {
		t.Errorf("spanExtent() past the end = %d, want 7", got)
	}
}
