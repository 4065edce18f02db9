package main

import (
	"fmt"

	"github.com/grindlemire/go-autogrid"
	"github.com/spf13/cobra"
)

func parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <sizes>",
		Short: "Show how a size list is read",
		Long: `Parse a comma separated size list and print one slot per line.

Entries are numbers (fixed size), numbers followed by '*' (star weight,
'*' alone is weight 1) or anything else (Auto).`,
		Example: `  autogrid parse "100,*,2*,Auto"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sizes := autogrid.ParseSizes(args[0])
			if len(sizes) == 0 {
				return fmt.Errorf("empty size list")
			}

			out := cmd.OutOrStdout()
			for i, size := range sizes {
				fmt.Fprintf(out, "%d\t%s\t%s\n", i, unitName(size.Unit), size)
			}
			return nil
		},
	}
}

func unitName(u autogrid.Unit) string {
	switch u {
	case autogrid.UnitFixed:
		return "fixed"
	case autogrid.UnitStar:
		return "star"
	default:
		return "auto"
	}
}
