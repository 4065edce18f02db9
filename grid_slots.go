package autogrid

// RowDefinitions returns a copy of the row slots.
func (g *Grid) RowDefinitions() []Definition {
	return append([]Definition(nil), g.rows...)
}

// ColumnDefinitions returns a copy of the column slots.
func (g *Grid) ColumnDefinitions() []Definition {
	return append([]Definition(nil), g.columns...)
}

// RowCount returns the number of row slots.
func (g *Grid) RowCount() int {
	return len(g.rows)
}

// ColumnCount returns the number of column slots.
func (g *Grid) ColumnCount() int {
	return len(g.columns)
}

// SetRowCount replaces the rows with count rows that all take the size of
// the current first row (Auto if there are none). Negative counts are ignored.
func (g *Grid) SetRowCount(count int) {
	if count < 0 {
		Logger().Debug("autogrid: ignoring negative row count", "count", count)
		return
	}
	g.rows = uniformDefinitions(g.rows, count)
	g.MarkDirty()
}

// SetColumnCount replaces the columns with count columns that all take the
// size of the current first column (Auto if there are none). Negative counts
// are ignored.
func (g *Grid) SetColumnCount(count int) {
	if count < 0 {
		Logger().Debug("autogrid: ignoring negative column count", "count", count)
		return
	}
	g.columns = uniformDefinitions(g.columns, count)
	g.MarkDirty()
}

// SetRowHeight gives every row the size v, creating one row first if there
// are none. The row count is preserved.
func (g *Grid) SetRowHeight(v Value) {
	g.rows = resizeAll(g.rows, v)
	g.MarkDirty()
}

// SetColumnWidth gives every column the size v, creating one column first if
// there are none. The column count is preserved.
func (g *Grid) SetColumnWidth(v Value) {
	g.columns = resizeAll(g.columns, v)
	g.MarkDirty()
}

// SetRows replaces the rows with one row per entry of a size list.
// An empty list leaves the rows untouched.
func (g *Grid) SetRows(sizes string) {
	parsed := ParseSizes(sizes)
	if parsed == nil {
		Logger().Debug("autogrid: ignoring empty row size list")
		return
	}
	g.rows = definitionsFrom(parsed)
	g.MarkDirty()
}

// SetColumns replaces the columns with one column per entry of a size list.
// An empty list leaves the columns untouched.
func (g *Grid) SetColumns(sizes string) {
	parsed := ParseSizes(sizes)
	if parsed == nil {
		Logger().Debug("autogrid: ignoring empty column size list")
		return
	}
	g.columns = definitionsFrom(parsed)
	g.MarkDirty()
}

// uniformDefinitions returns count definitions sharing the size of the first
// entry of defs.
func uniformDefinitions(defs []Definition, count int) []Definition {
	size := Auto()
	if len(defs) > 0 {
		size = defs[0].Size
	}
	out := make([]Definition, count)
	for i := range out {
		out[i] = Definition{Size: size}
	}
	return out
}

// resizeAll sets the size of every definition to v, seeding one default
// definition when defs is empty.
func resizeAll(defs []Definition, v Value) []Definition {
	if len(defs) == 0 {
		defs = append(defs, Definition{Size: Auto()})
	}
	for i := range defs {
		defs[i].Size = v
	}
	return defs
}

func definitionsFrom(sizes []Value) []Definition {
	defs := make([]Definition, len(sizes))
	for i, size := range sizes {
		defs[i] = Definition{Size: size}
	}
	return defs
}

// fitDefinitions grows defs with Auto definitions or truncates its tail so
// that exactly count remain.
func fitDefinitions(defs []Definition, count int) []Definition {
	if len(defs) > count {
		return defs[:count]
	}
	for len(defs) < count {
		defs = append(defs, Definition{Size: Auto()})
	}
	return defs
}
