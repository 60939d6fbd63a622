// Package view derives the per-tab display data from a trip snapshot. None of
// the functions modify their input.
package view

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/tabi/pkg/currency"
	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/weather"
)

var weekdayLabels = [...]string{"週日", "週一", "週二", "週三", "週四", "週五", "週六"}

// DateOption is one selectable day of the trip.
type DateOption struct {
	DateKey   string `json:"dateKey"`
	DayOfWeek string `json:"dayOfWeek"`
	Display   string `json:"display"`
	Day       int    `json:"day"`
}

// Totals is the expense sum in the source and the target currency.
type Totals struct {
	Source    decimal.Decimal `json:"source"`
	Converted decimal.Decimal `json:"converted"`
}

// DateOptions lists the trip days in ascending date-key order.
func DateOptions(d *trip.Data) []DateOption {
	if d == nil {
		return nil
	}
	keys := make([]string, 0, len(d.DailyItineraries))
	for k := range d.DailyItineraries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]DateOption, 0, len(keys))
	for i, k := range keys {
		opt := DateOption{DateKey: k, Display: k, Day: i + 1}
		if t, err := time.Parse(trip.LayoutDateKey, k); err == nil {
			opt.DayOfWeek = weekdayLabels[t.Weekday()]
			opt.Display = t.Format("01/02")
		}
		out = append(out, opt)
	}
	return out
}

// CurrentItinerary returns a copy of the day's items ordered by time of day.
// Items at the same time keep their list order.
func CurrentItinerary(d *trip.Data, dateKey string) []*trip.ItineraryItem {
	if d == nil {
		return []*trip.ItineraryItem{}
	}
	items := d.DailyItineraries[dateKey].Clone()
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Time < items[j].Time
	})
	return items
}

// WeatherFor asks p for the forecast of dateKey and falls back to
// weather.Unknown.
func WeatherFor(ctx context.Context, p weather.Provider, dateKey, locationHint string) weather.Info {
	if p == nil {
		return weather.Unknown()
	}
	info, ok := p.Forecast(ctx, dateKey, locationHint)
	if !ok {
		return weather.Unknown()
	}
	return info
}

// SortedExpenses returns a copy of the expenses ordered by date.
func SortedExpenses(d *trip.Data) []*trip.ExpenseItem {
	if d == nil {
		return []*trip.ExpenseItem{}
	}
	out := make([]*trip.ExpenseItem, 0, len(d.Expenses))
	for _, e := range d.Expenses {
		if e == nil {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date < out[j].Date
	})
	return out
}

// TotalExpense sums all amounts and converts the sum with the trip's rate.
func TotalExpense(d *trip.Data) Totals {
	if d == nil {
		return Totals{}
	}
	sum := decimal.Zero
	for _, e := range d.Expenses {
		if e == nil {
			continue
		}
		sum = sum.Add(e.Amount)
	}
	return Totals{
		Source:    sum,
		Converted: currency.Convert(sum, d.ExchangeRate),
	}
}

// ShoppingSummary counts acquired items and adds up the known prices.
type ShoppingSummary struct {
	Acquired   int             `json:"acquired"`
	Total      int             `json:"total"`
	KnownPrice decimal.Decimal `json:"knownPrice"`
	Custom     int             `json:"custom"`
}

// ShoppingProgress summarizes the shopping checklist.
func ShoppingProgress(d *trip.Data) ShoppingSummary {
	s := ShoppingSummary{KnownPrice: decimal.Zero}
	if d == nil {
		return s
	}
	for _, it := range d.ShoppingList {
		if it == nil {
			continue
		}
		s.Total++
		if it.Acquired {
			s.Acquired++
		}
		if it.Price == nil {
			s.Custom++
			continue
		}
		s.KnownPrice = s.KnownPrice.Add(*it.Price)
	}
	return s
}

// CategoryTotal is the source-currency sum of one expense category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Count    int             `json:"count"`
}

// ExpensesByCategory groups the ledger by category, ordered by name.
func ExpensesByCategory(d *trip.Data) []CategoryTotal {
	if d == nil {
		return nil
	}
	idx := map[string]int{}
	var out []CategoryTotal
	for _, e := range d.Expenses {
		if e == nil {
			continue
		}
		i, ok := idx[e.Category]
		if !ok {
			i = len(out)
			idx[e.Category] = i
			out = append(out, CategoryTotal{Category: e.Category, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(e.Amount)
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}
