package layout

import "testing"

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  int
		bottom int
	}

	tests := map[string]tc{
		"standard rect": {rect: NewRect(5, 10, 20, 15), right: 25, bottom: 25},
		"zero size":     {rect: NewRect(5, 5, 0, 0), right: 5, bottom: 5},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRect_Inset(t *testing.T) {
	type tc struct {
		rect     Rect
		edges    Edges
		expected Rect
	}

	tests := map[string]tc{
		"uniform margin": {
			rect:     NewRect(10, 10, 100, 100),
			edges:    EdgeAll(5),
			expected: NewRect(15, 15, 90, 90),
		},
		"trbl margin": {
			rect:     NewRect(0, 0, 100, 100),
			edges:    EdgeTRBL(10, 20, 30, 40),
			expected: NewRect(40, 10, 40, 60),
		},
		"margin larger than rect clamps size": {
			rect:     NewRect(0, 0, 4, 4),
			edges:    EdgeSymmetric(3, 3),
			expected: NewRect(3, 3, 0, 0),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Inset(tt.edges); got != tt.expected {
				t.Errorf("Inset() = %+v, want %+v", got, tt.expected)
			}
		})
	}
}

func TestEdges_Sums(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)
	if e.Horizontal() != 6 {
		t.Errorf("Horizontal() = %d, want 6", e.Horizontal())
	}
	if e.Vertical() != 4 {
		t.Errorf("Vertical() = %d, want 4", e.Vertical())
	}
	if e.IsZero() {
		t.Error("IsZero() = true, want false")
	}
	if !(Edges{}).IsZero() {
		t.Error("zero Edges IsZero() = false, want true")
	}
}
