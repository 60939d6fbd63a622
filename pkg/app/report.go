package app

import (
	"context"

	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/view"
	"tableflip.dev/tabi/pkg/weather"
)

// ReportDay captures one trip day with its schedule and forecast.
type ReportDay struct {
	Option  view.DateOption
	Weather weather.Info
	Items   []*trip.ItineraryItem
	Spent   []*trip.ExpenseItem
}

// ReportResult is the whole trip between two date-keys, inclusive.
type ReportResult struct {
	Title    string
	Since    string
	Until    string
	Days     []ReportDay
	Lodging  []*trip.Accommodation
	Shopping view.ShoppingSummary
	Totals   view.Totals
	Source   string
	Target   string
	Items    int
}

// Report gathers the days between since and until. Empty bounds are open.
func (s *Store) Report(ctx context.Context, w weather.Provider, since, until string) ReportResult {
	if since != "" && until != "" && since > until {
		since, until = until, since
	}
	d := s.Snapshot()

	res := ReportResult{
		Title:    d.Title,
		Since:    since,
		Until:    until,
		Lodging:  d.Accommodations,
		Shopping: view.ShoppingProgress(d),
		Totals:   view.TotalExpense(d),
		Source:   d.SourceCurrency,
		Target:   d.TargetCurrency,
	}

	spent := make(map[string][]*trip.ExpenseItem)
	for _, e := range view.SortedExpenses(d) {
		spent[e.Date] = append(spent[e.Date], e)
	}

	for _, opt := range view.DateOptions(d) {
		if since != "" && opt.DateKey < since {
			continue
		}
		if until != "" && opt.DateKey > until {
			continue
		}
		items := view.CurrentItinerary(d, opt.DateKey)
		hint := ""
		if len(items) > 0 {
			hint = items[0].Location
		}
		res.Days = append(res.Days, ReportDay{
			Option:  opt,
			Weather: view.WeatherFor(ctx, w, opt.DateKey, hint),
			Items:   items,
			Spent:   spent[opt.DateKey],
		})
		res.Items += len(items)
	}
	return res
}
