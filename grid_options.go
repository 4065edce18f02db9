package autogrid

// Option configures a Grid.
type Option func(*Grid)

// --- Slot Options ---

// WithRows sets the row definitions from a size list such as "Auto,*,2*".
func WithRows(sizes string) Option {
	return func(g *Grid) {
		g.SetRows(sizes)
	}
}

// WithColumns sets the column definitions from a size list such as "10,*".
func WithColumns(sizes string) Option {
	return func(g *Grid) {
		g.SetColumns(sizes)
	}
}

// WithRowCount creates count rows sharing the size of the first row.
// Negative counts are ignored.
func WithRowCount(count int) Option {
	return func(g *Grid) {
		g.SetRowCount(count)
	}
}

// WithColumnCount creates count columns sharing the size of the first column.
// Negative counts are ignored.
func WithColumnCount(count int) Option {
	return func(g *Grid) {
		g.SetColumnCount(count)
	}
}

// WithRowHeight sets every row to the same size policy.
func WithRowHeight(v Value) Option {
	return func(g *Grid) {
		g.SetRowHeight(v)
	}
}

// WithColumnWidth sets every column to the same size policy.
func WithColumnWidth(v Value) Option {
	return func(g *Grid) {
		g.SetColumnWidth(v)
	}
}

// --- Flow Options ---

// WithOrientation sets the order in which children flow into the grid.
func WithOrientation(o Orientation) Option {
	return func(g *Grid) {
		g.orientation = o
	}
}

// WithAutoIndexing turns automatic index assignment on or off.
func WithAutoIndexing(enabled bool) Option {
	return func(g *Grid) {
		g.autoIndexing = enabled
	}
}

// --- Child Preset Options ---

// WithChildHorizontalAlignment sets the horizontal alignment given to
// children that have not set their own.
func WithChildHorizontalAlignment(a Align) Option {
	return func(g *Grid) {
		g.childHorizontalAlignment = &a
	}
}

// WithChildVerticalAlignment sets the vertical alignment given to children
// that have not set their own.
func WithChildVerticalAlignment(a Align) Option {
	return func(g *Grid) {
		g.childVerticalAlignment = &a
	}
}

// WithChildMargin sets the margin given to children that have not set their own.
func WithChildMargin(m Edges) Option {
	return func(g *Grid) {
		g.childMargin = &m
	}
}

// WithChildren appends children in flow order.
func WithChildren(children ...*Child) Option {
	return func(g *Grid) {
		g.AddChild(children...)
	}
}
