package autogrid

// Measure is the hook the host calls before each measurement pass. It
// re-indexes the children when a property or the child set changed, or when
// auto-indexing is on and the cross axis slot count no longer matches the
// count seen by the last re-index. Returns true if a re-index ran.
func (g *Grid) Measure() bool {
	reason := g.reindexReason()
	if reason == "" {
		return false
	}
	Logger().Debug("autogrid: re-index",
		"reason", reason,
		"orientation", g.orientation,
		"children", len(g.children))
	g.Reindex()
	return true
}

// reindexReason returns why a re-index is needed, or "" if it is not.
func (g *Grid) reindexReason() string {
	if g.dirty {
		return "dirty"
	}
	if g.autoIndexing && g.crossSlotCount() != g.crossAxisCount {
		return "cross axis changed"
	}
	return ""
}

// crossSlotCount returns the live slot count of the fixed axis: columns for a
// horizontal grid, rows for a vertical one.
func (g *Grid) crossSlotCount() int {
	if g.orientation == Vertical {
		return len(g.rows)
	}
	return len(g.columns)
}

// Reindex unconditionally assigns slots to the children.
//
// With auto-indexing on, the cross axis count stays fixed and the growing
// axis is resized to (cells-1)/cross + 1 slots, where cells is the sum of the
// children's spans along the flow axis. Integer division truncates toward
// zero, so a grid without children keeps one growing slot when cross > 1
// and none when cross == 1. Children then take consecutive flow positions in
// order, each advancing the position by its span.
//
// Child presets are applied whether or not auto-indexing is on.
func (g *Grid) Reindex() {
	horizontal := g.orientation == Horizontal

	cross := g.crossSlotCount()
	if cross == 0 {
		cross = 1
	}

	if g.autoIndexing {
		cells := 0
		for _, child := range g.children {
			cells += child.flowSpan(g.orientation)
		}
		required := (cells-1)/cross + 1

		if horizontal {
			g.rows = fitDefinitions(g.rows, required)
		} else {
			g.columns = fitDefinitions(g.columns, required)
		}
	}

	position := 0
	for _, child := range g.children {
		if g.autoIndexing {
			major, minor := position/cross, position%cross
			if horizontal {
				child.row, child.column = major, minor
			} else {
				child.column, child.row = major, minor
			}
			position += child.flowSpan(g.orientation)
		}
		g.applyPresets(child)
	}

	g.dirty = false
	g.crossAxisCount = g.crossSlotCount()
}
