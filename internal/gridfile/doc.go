// Package gridfile loads auto grid descriptions written in HCL.
//
// A file holds exactly one grid block with the panel properties and one
// child block per child in flow order:
//
//	grid {
//	  orientation  = "horizontal"
//	  column_count = 3
//	  column_width = "*"
//	  child_margin = [0, 1]
//	  width        = 80
//	  height       = 24
//
//	  child "title" {
//	    column_span = 3
//	    height      = 1
//	  }
//	}
//
// Slot properties are applied in a fixed order: count, then size list, then
// uniform size.
package gridfile
