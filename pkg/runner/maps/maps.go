// Package maps provides the runner that prints navigation links.
package maps

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/maps"
)

// Map prints a search link for Query, or for the location of item ID on
// DateKey when Query is empty.
type Map struct {
	Query   string
	DateKey string
	ID      int

	Store *app.Store
	Out   io.Writer
}

func (n *Map) Do(ctx context.Context) error {
	query := strings.TrimSpace(n.Query)
	if query == "" {
		if n.Store == nil {
			return errors.New("can not look up item, no trip store")
		}
		var found bool
		for _, it := range n.Store.Itinerary(n.DateKey) {
			if it.ID == n.ID {
				query, found = it.Location, true
				if query == "" {
					query = it.Name
				}
			}
		}
		if !found {
			return fmt.Errorf("no item %d on %s", n.ID, n.DateKey)
		}
	}

	url, err := maps.SearchURL(query)
	if err != nil {
		return err
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.Faint).Fprintln(out, query)
	_, _ = fmt.Fprintln(out, url)
	return nil
}
