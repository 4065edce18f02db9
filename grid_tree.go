package autogrid

import "slices"

// AddChild appends children in flow order. A child that belongs to another
// grid is moved. Nil children are ignored.
func (g *Grid) AddChild(children ...*Child) {
	for _, child := range children {
		if child == nil {
			continue
		}
		g.adopt(child)
		g.children = append(g.children, child)
	}
	g.MarkDirty()
}

// InsertChild inserts child at index in flow order. The index is clamped to
// the valid range. A nil child is ignored.
func (g *Grid) InsertChild(index int, child *Child) {
	if child == nil {
		return
	}
	g.adopt(child)
	index = min(max(0, index), len(g.children))
	g.children = slices.Insert(g.children, index, child)
	g.MarkDirty()
}

// RemoveChild removes a child while keeping the order of the others.
// Returns true if the child was found and removed.
func (g *Grid) RemoveChild(child *Child) bool {
	i := slices.Index(g.children, child)
	if i < 0 || child == nil {
		return false
	}
	g.children = slices.Delete(g.children, i, i+1)
	child.detach()
	g.MarkDirty()
	return true
}

// RemoveAllChildren removes all children from the grid.
func (g *Grid) RemoveAllChildren() {
	for _, child := range g.children {
		child.detach()
	}
	g.children = nil
	g.MarkDirty()
}

// Children returns a copy of the children in flow order. Use the grid's
// methods to change the set.
func (g *Grid) Children() []*Child {
	return slices.Clone(g.children)
}

// adopt detaches child from its current grid and points it at g.
func (g *Grid) adopt(child *Child) {
	if child.grid != nil && child.grid != g {
		child.grid.RemoveChild(child)
	}
	if child.grid == g {
		// Re-adding moves the child to its new position
		if i := slices.Index(g.children, child); i >= 0 {
			g.children = slices.Delete(g.children, i, i+1)
		}
	}
	child.grid = g
}
