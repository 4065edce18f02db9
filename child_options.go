package autogrid

// ChildOption configures a Child.
type ChildOption func(*Child)

// WithName labels the child. The grid does not use the name.
func WithName(name string) ChildOption {
	return func(c *Child) {
		c.name = name
	}
}

// WithRow sets the starting row. Only meaningful with auto-indexing off.
func WithRow(row int) ChildOption {
	return func(c *Child) {
		c.row = row
	}
}

// WithColumn sets the starting column. Only meaningful with auto-indexing off.
func WithColumn(column int) ChildOption {
	return func(c *Child) {
		c.column = column
	}
}

// WithRowSpan sets how many rows the child covers (minimum 1).
func WithRowSpan(span int) ChildOption {
	return func(c *Child) {
		c.rowSpan = max(1, span)
	}
}

// WithColumnSpan sets how many columns the child covers (minimum 1).
func WithColumnSpan(span int) ChildOption {
	return func(c *Child) {
		c.columnSpan = max(1, span)
	}
}

// WithSize sets the natural size of the child excluding margin.
func WithSize(width, height int) ChildOption {
	return func(c *Child) {
		c.SetDesiredSize(width, height)
	}
}

// WithHorizontalAlignment sets an explicit horizontal alignment.
func WithHorizontalAlignment(a Align) ChildOption {
	return func(c *Child) {
		c.horizontalAlignment = &a
	}
}

// WithVerticalAlignment sets an explicit vertical alignment.
func WithVerticalAlignment(a Align) ChildOption {
	return func(c *Child) {
		c.verticalAlignment = &a
	}
}

// WithMargin sets an explicit margin.
func WithMargin(m Edges) ChildOption {
	return func(c *Child) {
		c.margin = &m
	}
}
