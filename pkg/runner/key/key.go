// Package key provides CLI helpers to display the item type legend.
package key

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/tabi/pkg/trip"
)

// Key prints a legend describing the itinerary item types.
type Key struct {
	Out io.Writer
}

// Do renders the legend.
func (k *Key) Do(ctx context.Context) error {
	out := k.Out
	if out == nil {
		out = color.Output
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Type"), bold.Sprint("Name"), bold.Sprint("Meaning"), bold.Sprint("Aliases"))
	for _, t := range trip.ItemTypes() {
		g := t.Glyph()
		tbl.AddRow(g.Symbol, g.Noun, g.Meaning, faint.Sprint(strings.Join(g.Aliases, ", ")))
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(out, "")
	_, _ = fmt.Fprintln(out, tbl)
	_, _ = fmt.Fprintln(out, "")
	return nil
}
