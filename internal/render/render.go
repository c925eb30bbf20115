// Package render prints relations as aligned text tables.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/leengari/mini-relalg/internal/domain/data"
	"github.com/leengari/mini-relalg/internal/domain/schema"
)

// Relation writes rel to w: a header of "name (TYPE)" cells, with the primary
// key attribute marked by '*', a separator line, then one line per row in
// storage order. Keyless relations get a leading "#" column with the surrogate id.
func Relation(w io.Writer, rel *schema.Relation) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	s := rel.Schema()
	pk, hasPK := rel.PrimaryKey()

	// Header
	if !hasPK {
		fmt.Fprint(tw, "#\t")
	}
	for i, attr := range s.Attributes {
		mark := ""
		if hasPK && i == pk {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s%s (%s)", mark, attr.Name, attr.Type)
		if i < len(s.Attributes)-1 {
			fmt.Fprint(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	// Separator
	if !hasPK {
		fmt.Fprint(tw, "---\t")
	}
	for i := range s.Attributes {
		fmt.Fprint(tw, "---")
		if i < len(s.Attributes)-1 {
			fmt.Fprint(tw, "\t")
		}
	}
	fmt.Fprintln(tw)

	// Rows
	rel.Ascend(func(key data.Value, row data.Row) bool {
		if !hasPK {
			fmt.Fprintf(tw, "%s\t", key)
		}
		for i, v := range row {
			fmt.Fprint(tw, v.String())
			if i < len(row)-1 {
				fmt.Fprint(tw, "\t")
			}
		}
		fmt.Fprintln(tw)
		return true
	})

	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "(%d rows)\n", rel.Len())
	return err
}
