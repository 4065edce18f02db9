// Package autogrid provides a grid panel that places its children
// automatically.
//
// A Grid keeps a list of row and column definitions and a list of children.
// Instead of every child carrying an explicit row and column, the grid fixes
// the slot count on one axis and flows children through it in order, growing
// the other axis as needed. Children may span several slots and may override
// the alignment and margin presets set on the grid.
//
// Users import this single package for the complete public API: grid and
// child construction, slot size parsing, layout types and the measurement
// pass.
package autogrid
