package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/grindlemire/go-autogrid"
	"github.com/grindlemire/go-autogrid/internal/debug"
	"github.com/grindlemire/go-autogrid/internal/gridfile"
	"github.com/spf13/cobra"
)

func planCmd() *cobra.Command {
	var (
		width    int
		height   int
		debugLog string
	)

	cmd := &cobra.Command{
		Use:   "plan <file.hcl>",
		Short: "Lay out a grid description and print the result",
		Long: `Load a grid description, run the measurement pass and print the
resolved slot sizes and the position of every child.

The measurement area comes from the file's width and height attributes
unless --width or --height is given.`,
		Example: `  autogrid plan dashboard.hcl
  autogrid plan dashboard.hcl --width 120 --height 40`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if debugLog != "" {
				if err := debug.Init(debugLog); err != nil {
					return err
				}
				defer debug.Close()
				autogrid.SetLogger(debug.Logger())
				defer autogrid.SetLogger(nil)
			}

			desc, err := gridfile.Load(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				desc.Width = width
			}
			if cmd.Flags().Changed("height") {
				desc.Height = height
			}

			desc.Grid.Calculate(desc.Width, desc.Height)
			return printPlan(cmd.OutOrStdout(), desc)
		},
	}

	cmd.Flags().IntVar(&width, "width", gridfile.DefaultWidth, "measurement width in cells")
	cmd.Flags().IntVar(&height, "height", gridfile.DefaultHeight, "measurement height in cells")
	cmd.Flags().StringVar(&debugLog, "debug-log", os.Getenv(debug.EnvVar), "append debug records to this file")

	return cmd
}

// printPlan writes the slot summary and a child table.
func printPlan(w io.Writer, desc *gridfile.Description) error {
	g := desc.Grid

	indexing := "on"
	if !g.AutoIndexing() {
		indexing = "off"
	}
	fmt.Fprintf(w, "grid: %s, auto-indexing %s, %dx%d\n", g.Orientation(), indexing, desc.Width, desc.Height)
	fmt.Fprintf(w, "rows:    %s -> %v\n", formatDefinitions(g.RowDefinitions()), g.RowSizes())
	fmt.Fprintf(w, "columns: %s -> %v\n", formatDefinitions(g.ColumnDefinitions()), g.ColumnSizes())
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tROW\tCOL\tROWSPAN\tCOLSPAN\tRECT")
	for i, c := range g.Children() {
		name := c.Name()
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		r := c.Rect()
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d,%d %dx%d\n",
			name, c.Row(), c.Column(), c.RowSpan(), c.ColumnSpan(),
			r.X, r.Y, r.Width, r.Height)
	}
	return tw.Flush()
}

func formatDefinitions(defs []autogrid.Definition) string {
	if len(defs) == 0 {
		return "(none)"
	}
	sizes := make([]autogrid.Value, len(defs))
	for i, def := range defs {
		sizes[i] = def.Size
	}
	return autogrid.FormatSizes(sizes)
}
