package gridfile

import (
	"fmt"
	"strings"

	"github.com/grindlemire/go-autogrid"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Default measurement area used when the file does not set one.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Description is a configured grid and the area to measure it in.
type Description struct {
	Grid   *autogrid.Grid
	Width  int
	Height int
}

// hclFile represents the top-level structure of a grid file for decoding.
type hclFile struct {
	Grids []*hclGrid `hcl:"grid,block"`
}

type hclGrid struct {
	Orientation  *string `hcl:"orientation,optional"`
	AutoIndexing *bool   `hcl:"auto_indexing,optional"`

	Rows        *string `hcl:"rows,optional"`
	RowCount    *int    `hcl:"row_count,optional"`
	RowHeight   *string `hcl:"row_height,optional"`
	Columns     *string `hcl:"columns,optional"`
	ColumnCount *int    `hcl:"column_count,optional"`
	ColumnWidth *string `hcl:"column_width,optional"`

	ChildHorizontalAlignment *string `hcl:"child_horizontal_alignment,optional"`
	ChildVerticalAlignment   *string `hcl:"child_vertical_alignment,optional"`
	ChildMargin              []int   `hcl:"child_margin,optional"`

	Width  *int `hcl:"width,optional"`
	Height *int `hcl:"height,optional"`

	Children []*hclChild `hcl:"child,block"`
}

type hclChild struct {
	Name string `hcl:"name,label"`

	Row        *int `hcl:"row,optional"`
	Column     *int `hcl:"column,optional"`
	RowSpan    *int `hcl:"row_span,optional"`
	ColumnSpan *int `hcl:"column_span,optional"`

	Width  *int `hcl:"width,optional"`
	Height *int `hcl:"height,optional"`

	HorizontalAlignment *string `hcl:"horizontal_alignment,optional"`
	VerticalAlignment   *string `hcl:"vertical_alignment,optional"`
	Margin              []int   `hcl:"margin,optional"`
}

// Load parses the grid file at path.
func Load(path string) (*Description, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	return decode(file.Body, path)
}

// Parse parses grid file contents. filename is only used in messages.
func Parse(src []byte, filename string) (*Description, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(file.Body, filename)
}

func decode(body hcl.Body, filename string) (*Description, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filename, diags)
	}
	if len(parsed.Grids) != 1 {
		return nil, fmt.Errorf("%s: expected exactly one grid block, found %d", filename, len(parsed.Grids))
	}

	desc, err := parsed.Grids[0].build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return desc, nil
}

// build turns the decoded block into a configured grid.
func (b *hclGrid) build() (*Description, error) {
	var opts []autogrid.Option

	if b.Orientation != nil {
		o, err := ParseOrientation(*b.Orientation)
		if err != nil {
			return nil, err
		}
		opts = append(opts, autogrid.WithOrientation(o))
	}
	if b.AutoIndexing != nil {
		opts = append(opts, autogrid.WithAutoIndexing(*b.AutoIndexing))
	}

	// count, then size list, then uniform size
	if b.RowCount != nil {
		opts = append(opts, autogrid.WithRowCount(*b.RowCount))
	}
	if b.Rows != nil {
		opts = append(opts, autogrid.WithRows(*b.Rows))
	}
	if b.RowHeight != nil {
		opts = append(opts, autogrid.WithRowHeight(autogrid.ParseSize(*b.RowHeight)))
	}
	if b.ColumnCount != nil {
		opts = append(opts, autogrid.WithColumnCount(*b.ColumnCount))
	}
	if b.Columns != nil {
		opts = append(opts, autogrid.WithColumns(*b.Columns))
	}
	if b.ColumnWidth != nil {
		opts = append(opts, autogrid.WithColumnWidth(autogrid.ParseSize(*b.ColumnWidth)))
	}

	if b.ChildHorizontalAlignment != nil {
		a, err := ParseAlign(*b.ChildHorizontalAlignment)
		if err != nil {
			return nil, fmt.Errorf("child_horizontal_alignment: %w", err)
		}
		opts = append(opts, autogrid.WithChildHorizontalAlignment(a))
	}
	if b.ChildVerticalAlignment != nil {
		a, err := ParseAlign(*b.ChildVerticalAlignment)
		if err != nil {
			return nil, fmt.Errorf("child_vertical_alignment: %w", err)
		}
		opts = append(opts, autogrid.WithChildVerticalAlignment(a))
	}
	if b.ChildMargin != nil {
		m, err := ParseEdges(b.ChildMargin)
		if err != nil {
			return nil, fmt.Errorf("child_margin: %w", err)
		}
		opts = append(opts, autogrid.WithChildMargin(m))
	}

	children := make([]*autogrid.Child, 0, len(b.Children))
	for _, c := range b.Children {
		child, err := c.build()
		if err != nil {
			return nil, fmt.Errorf("child %q: %w", c.Name, err)
		}
		children = append(children, child)
	}
	opts = append(opts, autogrid.WithChildren(children...))

	desc := &Description{
		Grid:   autogrid.New(opts...),
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
	if b.Width != nil {
		desc.Width = *b.Width
	}
	if b.Height != nil {
		desc.Height = *b.Height
	}
	return desc, nil
}

func (b *hclChild) build() (*autogrid.Child, error) {
	opts := []autogrid.ChildOption{autogrid.WithName(b.Name)}

	if b.Row != nil {
		opts = append(opts, autogrid.WithRow(*b.Row))
	}
	if b.Column != nil {
		opts = append(opts, autogrid.WithColumn(*b.Column))
	}
	if b.RowSpan != nil {
		opts = append(opts, autogrid.WithRowSpan(*b.RowSpan))
	}
	if b.ColumnSpan != nil {
		opts = append(opts, autogrid.WithColumnSpan(*b.ColumnSpan))
	}

	var width, height int
	if b.Width != nil {
		width = *b.Width
	}
	if b.Height != nil {
		height = *b.Height
	}
	opts = append(opts, autogrid.WithSize(width, height))

	if b.HorizontalAlignment != nil {
		a, err := ParseAlign(*b.HorizontalAlignment)
		if err != nil {
			return nil, fmt.Errorf("horizontal_alignment: %w", err)
		}
		opts = append(opts, autogrid.WithHorizontalAlignment(a))
	}
	if b.VerticalAlignment != nil {
		a, err := ParseAlign(*b.VerticalAlignment)
		if err != nil {
			return nil, fmt.Errorf("vertical_alignment: %w", err)
		}
		opts = append(opts, autogrid.WithVerticalAlignment(a))
	}
	if b.Margin != nil {
		m, err := ParseEdges(b.Margin)
		if err != nil {
			return nil, fmt.Errorf("margin: %w", err)
		}
		opts = append(opts, autogrid.WithMargin(m))
	}

	return autogrid.NewChild(opts...), nil
}

// ParseOrientation parses "horizontal" or "vertical" (case-insensitive).
func ParseOrientation(s string) (autogrid.Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "row":
		return autogrid.Horizontal, nil
	case "vertical", "column":
		return autogrid.Vertical, nil
	default:
		return autogrid.Horizontal, fmt.Errorf("unknown orientation %q", s)
	}
}

// ParseAlign parses an alignment name. left and top mean start, right and
// bottom mean end.
func ParseAlign(s string) (autogrid.Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stretch":
		return autogrid.AlignStretch, nil
	case "start", "left", "top":
		return autogrid.AlignStart, nil
	case "end", "right", "bottom":
		return autogrid.AlignEnd, nil
	case "center":
		return autogrid.AlignCenter, nil
	default:
		return autogrid.AlignStretch, fmt.Errorf("unknown alignment %q", s)
	}
}

// ParseEdges reads one value (all sides), two (vertical, horizontal) or four
// (top, right, bottom, left).
func ParseEdges(v []int) (autogrid.Edges, error) {
	switch len(v) {
	case 1:
		return autogrid.EdgeAll(v[0]), nil
	case 2:
		return autogrid.EdgeSymmetric(v[0], v[1]), nil
	case 4:
		return autogrid.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	default:
		return autogrid.Edges{}, fmt.Errorf("expected 1, 2 or 4 values, got %d", len(v))
	}
}
