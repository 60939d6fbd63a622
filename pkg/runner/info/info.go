package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/store"
	"tableflip.dev/tabi/pkg/view"
)

type Info struct {
	Config store.Config
	Store  *app.Store
	Out    io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("TABI_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "TABI_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "TABI_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.key:  ", n.Config.Key())

	if n.Store == nil {
		return fmt.Errorf("failed to open the trip store")
	}
	_, _ = fmt.Fprintln(out, "Record:      ", n.Store.Path())

	d := n.Store.Snapshot()
	_, _ = fmt.Fprintf(out, "Trip:\n  %s\n", d.Title)
	opts := view.DateOptions(d)
	if len(opts) == 0 {
		_, _ = fmt.Fprintf(out, "  %s\n", "no days")
		return nil
	}
	items := 0
	for _, day := range d.DailyItineraries {
		items += len(day)
	}
	_, _ = fmt.Fprintf(out, "  %s .. %s, %d days, %d items\n", opts[0].DateKey, opts[len(opts)-1].DateKey, len(opts), items)
	_, _ = fmt.Fprintf(out, "  %d stays, %d shopping items, %d expenses\n", len(d.Accommodations), len(d.ShoppingList), len(d.Expenses))
	return nil
}
