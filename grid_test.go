package autogrid

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNew_Defaults(t *testing.T) {
	g := New()

	if g.Orientation() != Horizontal {
		t.Errorf("Orientation() = %v, want horizontal", g.Orientation())
	}
	if !g.AutoIndexing() {
		t.Error("AutoIndexing() = false, want true")
	}
	if !g.IsDirty() {
		t.Error("new grid should be dirty")
	}
	if g.RowCount() != 0 || g.ColumnCount() != 0 {
		t.Errorf("slots = %dx%d, want 0x0", g.RowCount(), g.ColumnCount())
	}
}

func TestNewChild_Defaults(t *testing.T) {
	c := NewChild(WithRowSpan(0), WithColumnSpan(-2))

	if c.RowSpan() != 1 || c.ColumnSpan() != 1 {
		t.Errorf("spans = %d/%d, want 1/1", c.RowSpan(), c.ColumnSpan())
	}
	if c.HasHorizontalAlignment() || c.HasVerticalAlignment() || c.HasMargin() {
		t.Error("new child should have no explicit overrides")
	}
	if c.Grid() != nil {
		t.Error("new child should not belong to a grid")
	}
}

func TestGrid_Calculate(t *testing.T) {
	title := NewChild(WithName("title"), WithColumnSpan(2), WithSize(6, 1))
	left := NewChild(WithName("left"), WithSize(4, 3))
	right := NewChild(WithName("right"), WithSize(2, 2),
		WithHorizontalAlignment(AlignCenter), WithVerticalAlignment(AlignEnd))

	g := New(
		WithColumns("8,*"),
		WithRowHeight(Auto()),
		WithChildren(title, left, right),
	)

	g.Calculate(20, 10)

	if diff := cmp.Diff([]int{8, 12}, g.ColumnSizes()); diff != "" {
		t.Errorf("ColumnSizes() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{1, 3}, g.RowSizes()); diff != "" {
		t.Errorf("RowSizes() mismatch (-want +got):\n%s", diff)
	}

	type tc struct {
		child    *Child
		expected Rect
	}

	tests := map[string]tc{
		"spanning title": {child: title, expected: NewRect(0, 0, 20, 1)},
		"stretched left": {child: left, expected: NewRect(0, 1, 8, 3)},
		"aligned right":  {child: right, expected: NewRect(13, 2, 2, 2)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.child.Rect(); got != tt.expected {
				t.Errorf("Rect() = %+v, want %+v", got, tt.expected)
			}
		})
	}

	if g.Bounds() != NewRect(0, 0, 20, 10) {
		t.Errorf("Bounds() = %+v, want 20x10", g.Bounds())
	}
}

func TestGrid_CalculateNonFiniteSizes(t *testing.T) {
	type tc struct {
		columns  string
		expected []int
	}

	tests := map[string]tc{
		"infinite weight": {columns: "Inf*,1*", expected: []int{10, 10}},
		"nan fixed":       {columns: "NaN,*", expected: []int{0, 20}},
		"huge fixed":      {columns: "1e20,*", expected: []int{20, 0}},
		"infinite fixed":  {columns: "Infinity,*", expected: []int{0, 20}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			first, second := NewChild(), NewChild()
			g := New(WithColumns(tt.columns), WithChildren(first, second))

			g.Calculate(20, 5)

			if diff := cmp.Diff(tt.expected, g.ColumnSizes()); diff != "" {
				t.Errorf("ColumnSizes() mismatch (-want +got):\n%s", diff)
			}
			if x := second.Rect().X; x < 0 || x > 20 {
				t.Errorf("second child X = %d, want within [0, 20]", x)
			}
		})
	}
}

func TestGrid_CalculateAppliesMarginPreset(t *testing.T) {
	child := NewChild()
	g := New(WithColumns("*"), WithRowHeight(Star(1)), WithChildMargin(EdgeAll(2)), WithChildren(child))

	g.Calculate(10, 10)

	if want := NewRect(2, 2, 6, 6); child.Rect() != want {
		t.Errorf("Rect() = %+v, want %+v", child.Rect(), want)
	}
}

func TestGrid_CalculateNegativeArea(t *testing.T) {
	g := New(WithChildren(NewChild()))

	g.Calculate(-4, -1)

	if g.Bounds() != NewRect(0, 0, 0, 0) {
		t.Errorf("Bounds() = %+v, want empty", g.Bounds())
	}
}
