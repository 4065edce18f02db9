package autogrid

// ChildHorizontalAlignment returns the horizontal alignment preset and
// whether one is set.
func (g *Grid) ChildHorizontalAlignment() (Align, bool) {
	if g.childHorizontalAlignment == nil {
		return AlignStretch, false
	}
	return *g.childHorizontalAlignment, true
}

// SetChildHorizontalAlignment sets the horizontal alignment given to every
// child that has not set its own. Applied immediately.
func (g *Grid) SetChildHorizontalAlignment(a Align) {
	g.childHorizontalAlignment = &a
	g.applyChildPresets()
}

// ChildVerticalAlignment returns the vertical alignment preset and whether
// one is set.
func (g *Grid) ChildVerticalAlignment() (Align, bool) {
	if g.childVerticalAlignment == nil {
		return AlignStretch, false
	}
	return *g.childVerticalAlignment, true
}

// SetChildVerticalAlignment sets the vertical alignment given to every child
// that has not set its own. Applied immediately.
func (g *Grid) SetChildVerticalAlignment(a Align) {
	g.childVerticalAlignment = &a
	g.applyChildPresets()
}

// ChildMargin returns the margin preset and whether one is set.
func (g *Grid) ChildMargin() (Edges, bool) {
	if g.childMargin == nil {
		return Edges{}, false
	}
	return *g.childMargin, true
}

// SetChildMargin sets the margin given to every child that has not set its
// own. Applied immediately.
func (g *Grid) SetChildMargin(m Edges) {
	g.childMargin = &m
	g.applyChildPresets()
}

// ClearChildPresets removes all three child presets. Children fall back to
// their own values or the defaults.
func (g *Grid) ClearChildPresets() {
	g.childHorizontalAlignment = nil
	g.childVerticalAlignment = nil
	g.childMargin = nil
	g.applyChildPresets()
}

func (g *Grid) applyChildPresets() {
	for _, child := range g.children {
		g.applyPresets(child)
	}
}

// applyPresets hands the grid presets to child for every attribute the child
// has not set itself. Explicit child values are never touched.
func (g *Grid) applyPresets(child *Child) {
	if child.horizontalAlignment == nil {
		child.presetHorizontalAlignment = g.childHorizontalAlignment
	}
	if child.verticalAlignment == nil {
		child.presetVerticalAlignment = g.childVerticalAlignment
	}
	if child.margin == nil {
		child.presetMargin = g.childMargin
	}
}
