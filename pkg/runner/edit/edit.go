// Package edit provides the runner for changing an itinerary item.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/itinerary"
	"tableflip.dev/tabi/pkg/printers"
	"tableflip.dev/tabi/pkg/view"
)

// Edit applies Patch to the item ID of DateKey.
type Edit struct {
	DateKey string
	ID      int
	Patch   itinerary.Patch

	Store *app.Store
	Out   io.Writer
}

// Do executes the update and prints the day.
func (n *Edit) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not edit, no trip store")
	}
	it, err := n.Store.UpdateItem(n.DateKey, n.ID, n.Patch)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.NewLine()
	pp.Title(n.DateKey)
	pp.Itinerary(view.CurrentItinerary(n.Store.Snapshot(), n.DateKey)...)

	out := n.Out
	if out == nil {
		out = color.Output
	}
	if err := n.Store.LastPersist(); err != nil {
		_, _ = color.New(color.FgYellow).Fprintf(out, "updated item %d (unsaved: %v)\n", it.ID, err)
		return nil
	}
	_, _ = fmt.Fprintf(out, "updated item %d\n", it.ID)
	return nil
}
