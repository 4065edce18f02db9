// Package layout implements the slot and cell geometry behind the auto grid.
//
// It provides size policies for row and column definitions (fixed, star and
// auto), edges and rectangles, alignment, slot size resolution and the
// arrangement of cells into resolved slots. Types are re-exported through the
// root autogrid package for public consumption.
//
// The main entry point is [Arrange], which takes the row and column
// definitions plus a set of [Cell] values and computes a [Rect] for each.
package layout
