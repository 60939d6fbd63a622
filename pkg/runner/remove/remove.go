// Package remove provides the runner for deleting an itinerary item.
package remove

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/printers"
	"tableflip.dev/tabi/pkg/view"
)

type Remove struct {
	DateKey string
	ID      int

	Store *app.Store
	Out   io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}

	if n.Store == nil {
		return errors.New("can not delete, no trip store")
	}
	if err := n.Store.DeleteItem(n.DateKey, n.ID); err != nil {
		return err
	}

	pp.NewLine()
	pp.Title(n.DateKey)
	pp.Itinerary(view.CurrentItinerary(n.Store.Snapshot(), n.DateKey)...)
	return nil
}
