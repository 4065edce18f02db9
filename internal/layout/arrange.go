package layout

// Result holds the resolved slot sizes of one arrangement.
type Result struct {
	Rows    []int
	Columns []int
}

// Arrange resolves the row and column slots within bounds and stores a
// rectangle on every cell.
//
// Placements outside the defined slots are clamped: the start index moves to
// the last slot and the span is cut to the slots that remain.
func Arrange(rows, columns []Value, bounds Rect, cells []Cell) Result {
	rowCount := max(1, len(rows))
	columnCount := max(1, len(columns))

	placements := make([]Placement, len(cells))
	styles := make([]CellStyle, len(cells))
	for i, cell := range cells {
		placements[i] = clampPlacement(cell.CellPlacement(), rowCount, columnCount)
		styles[i] = cell.CellStyle()
	}

	// Auto slots size to the largest single-span content that starts in them
	rowContent := make([]int, rowCount)
	columnContent := make([]int, columnCount)
	for i := range cells {
		p, s := placements[i], styles[i]
		if p.RowSpan == 1 {
			rowContent[p.Row] = max(rowContent[p.Row], s.Desired.Height+s.Margin.Vertical())
		}
		if p.ColumnSpan == 1 {
			columnContent[p.Column] = max(columnContent[p.Column], s.Desired.Width+s.Margin.Horizontal())
		}
	}

	result := Result{
		Rows:    ResolveSlots(rows, bounds.Height, rowContent),
		Columns: ResolveSlots(columns, bounds.Width, columnContent),
	}
	rowOffsets := slotOffsets(result.Rows)
	columnOffsets := slotOffsets(result.Columns)

	for i, cell := range cells {
		p, s := placements[i], styles[i]

		slot := Rect{
			X:      bounds.X + columnOffsets[p.Column],
			Y:      bounds.Y + rowOffsets[p.Row],
			Width:  spanExtent(result.Columns, p.Column, p.ColumnSpan),
			Height: spanExtent(result.Rows, p.Row, p.RowSpan),
		}

		// Margin shrinks the slot to the child's box; alignment then places
		// the desired size within it.
		box := slot
		if !s.Margin.IsZero() {
			box = slot.Inset(s.Margin)
		}
		x, width := alignWithin(s.HorizontalAlignment, box.X, box.Width, s.Desired.Width)
		y, height := alignWithin(s.VerticalAlignment, box.Y, box.Height, s.Desired.Height)

		cell.SetRect(Rect{X: x, Y: y, Width: width, Height: height})
	}

	return result
}

// clampPlacement keeps a placement inside rowCount x columnCount slots.
func clampPlacement(p Placement, rowCount, columnCount int) Placement {
	p.Row = clamp(p.Row, 0, rowCount-1)
	p.Column = clamp(p.Column, 0, columnCount-1)
	p.RowSpan = clamp(p.RowSpan, 1, rowCount-p.Row)
	p.ColumnSpan = clamp(p.ColumnSpan, 1, columnCount-p.Column)
	return p
}

// alignWithin returns the start and size of an item of the desired size
// positioned in [start, start+available) according to align.
func alignWithin(align Align, start, available, desired int) (int, int) {
	if align == AlignStretch {
		return start, available
	}
	size := clamp(desired, 0, available)
	return start + calculateAlignOffset(align, available, size), size
}

// calculateAlignOffset returns the offset for positioning an item inside a slot.
func calculateAlignOffset(align Align, slotSize, itemSize int) int {
	switch align {
	case AlignEnd:
		return slotSize - itemSize
	case AlignCenter:
		return (slotSize - itemSize) / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
