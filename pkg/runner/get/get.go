// Package get provides the read-only runners behind the listing commands.
package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/printers"
	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/view"
	"tableflip.dev/tabi/pkg/weather"
)

// What selects the part of the trip to print.
type What string

const (
	Days       What = "days"
	Itinerary  What = "itinerary"
	Lodging    What = "lodging"
	Shopping   What = "shopping"
	Expenses   What = "expenses"
	Weather    What = "weather"
	Rate       What = "rate"
	Categories What = "categories"
)

type Get struct {
	What    What
	DateKey string
	ShowID  bool
	JSON    bool

	Store   *app.Store
	Weather weather.Provider
	Out     io.Writer
}

func (n *Get) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}

func (n *Get) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not get, no trip store")
	}
	d := n.Store.Snapshot()

	if n.What == Itinerary || n.What == Weather {
		if n.DateKey == "" {
			if opts := view.DateOptions(d); len(opts) > 0 {
				n.DateKey = opts[0].DateKey
			}
		}
		if _, ok := d.DailyItineraries[n.DateKey]; !ok {
			return fmt.Errorf("%s is not a day of this trip", n.DateKey)
		}
	}

	var payload any
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.out()}
	if !n.JSON {
		pp.NewLine()
	}

	switch n.What {
	case Days, "":
		opts := view.DateOptions(d)
		payload = opts
		if !n.JSON {
			pp.TitleWithCount(d.Title, len(opts), "day")
			pp.Days(opts)
			pp.Calendar(d)
		}

	case Itinerary:
		items := view.CurrentItinerary(d, n.DateKey)
		w := view.WeatherFor(ctx, n.Weather, n.DateKey, firstLocation(items))
		payload = map[string]any{"date": n.DateKey, "weather": w, "items": items}
		if !n.JSON {
			pp.TitleWithCount(n.DateKey, len(items), "item")
			pp.Weather(w)
			pp.NewLine()
			pp.Itinerary(items...)
		}

	case Weather:
		items := view.CurrentItinerary(d, n.DateKey)
		w := view.WeatherFor(ctx, n.Weather, n.DateKey, firstLocation(items))
		payload = w
		if !n.JSON {
			pp.Title(n.DateKey)
			pp.Weather(w)
		}

	case Lodging:
		payload = d.Accommodations
		if !n.JSON {
			pp.TitleWithCount("住宿", len(d.Accommodations), "stay")
			pp.Lodging(d.Accommodations...)
		}

	case Shopping:
		payload = map[string]any{"items": d.ShoppingList, "summary": view.ShoppingProgress(d)}
		if !n.JSON {
			pp.TitleWithCount("購物清單", len(d.ShoppingList), "item")
			pp.Shopping(d.SourceCurrency, d.ShoppingList...)
		}

	case Expenses:
		list := view.SortedExpenses(d)
		totals := view.TotalExpense(d)
		payload = map[string]any{"expenses": list, "totals": totals, "rate": d.ExchangeRate}
		if !n.JSON {
			pp.TitleWithCount("花費", len(list), "expense")
			pp.Expenses(d.SourceCurrency, d.TargetCurrency, totals, list...)
		}

	case Categories:
		cats := view.ExpensesByCategory(d)
		payload = cats
		if !n.JSON {
			pp.Title("花費分類")
			pp.Categories(d.SourceCurrency, cats)
		}

	case Rate:
		payload = map[string]any{"source": d.SourceCurrency, "target": d.TargetCurrency, "rate": d.ExchangeRate}
		if !n.JSON {
			pp.Rate(d.SourceCurrency, d.TargetCurrency, d.ExchangeRate)
		}

	default:
		return fmt.Errorf("unknown listing %q", n.What)
	}

	if n.JSON {
		enc := json.NewEncoder(n.out())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	}
	return nil
}

func firstLocation(items []*trip.ItineraryItem) string {
	for _, it := range items {
		if it.Location != "" {
			return it.Location
		}
	}
	return ""
}
