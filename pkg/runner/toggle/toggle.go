// Package toggle provides the runner for checking off shopping items.
package toggle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/printers"
	"tableflip.dev/tabi/pkg/trip"
)

// Toggle flips the acquired flag of the checklist item Item, given either as
// its index or its exact name.
type Toggle struct {
	Item string

	Store *app.Store
	Out   io.Writer
}

// Do executes the toggle and prints the checklist.
func (n *Toggle) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{Out: n.Out}

	if n.Store == nil {
		return errors.New("can not toggle, no trip store")
	}

	target := n.find(n.Store.ShoppingList())
	if target == nil || !n.Store.ToggleAcquired(target) {
		return fmt.Errorf("no shopping item %q", n.Item)
	}

	d := n.Store.Snapshot()
	pp.NewLine()
	pp.Shopping(d.SourceCurrency, d.ShoppingList...)
	return nil
}

func (n *Toggle) find(list []*trip.ShoppingItem) *trip.ShoppingItem {
	key := strings.TrimSpace(n.Item)
	if i, err := strconv.Atoi(key); err == nil {
		if i >= 0 && i < len(list) {
			return list[i]
		}
		return nil
	}
	for _, it := range list {
		if it.Name == key {
			return it
		}
	}
	return nil
}
