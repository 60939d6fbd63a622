// Package trip holds the trip data model shared by the store, the views and
// every presentation surface.
package trip

import (
	"github.com/shopspring/decimal"
)

const (
	// LayoutDateKey is the layout of the keys of Data.DailyItineraries.
	LayoutDateKey = "2006-01-02"

	DefaultSourceCurrency = "JPY"
	DefaultTargetCurrency = "TWD"
)

// Data is the root aggregate of a trip.
type Data struct {
	Title            string           `json:"title,omitempty" yaml:"title,omitempty"`
	DailyItineraries map[string]Day   `json:"dailyItineraries" yaml:"dailyItineraries"`
	Accommodations   []*Accommodation `json:"accommodations" yaml:"accommodations"`
	ShoppingList     []*ShoppingItem  `json:"shoppingList" yaml:"shoppingList"`
	Expenses         []*ExpenseItem   `json:"expenses" yaml:"expenses"`
	ExchangeRate     decimal.Decimal  `json:"exchangeRate" yaml:"exchangeRate"`
	SourceCurrency   string           `json:"sourceCurrency,omitempty" yaml:"sourceCurrency,omitempty"`
	TargetCurrency   string           `json:"targetCurrency,omitempty" yaml:"targetCurrency,omitempty"`
}

// Day is the ordered list of items planned for one date-key.
type Day []*ItineraryItem

// ItineraryItem is one scheduled stop of a day. ID is unique within its day.
type ItineraryItem struct {
	ID       int      `json:"id" yaml:"id"`
	Type     ItemType `json:"type" yaml:"type"`
	Name     string   `json:"name" yaml:"name"`
	Time     Clock    `json:"time" yaml:"time"`
	Location string   `json:"location,omitempty" yaml:"location,omitempty"`
	Details  Details  `json:"details" yaml:"details"`
}

// Details carries free-form extras for an itinerary item.
type Details struct {
	Note string `json:"note,omitempty" yaml:"note,omitempty"`
}

// Accommodation is informational only. Date is a display string such as
// "2/7 ~ 2/8" and is not a date-key; lodging is never joined to itinerary days.
type Accommodation struct {
	Date    string `json:"date" yaml:"date"`
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
	Tel     string `json:"tel,omitempty" yaml:"tel,omitempty"`
}

// ShoppingItem is a checklist entry. A nil Price means a custom price.
type ShoppingItem struct {
	Name     string           `json:"name" yaml:"name"`
	Location string           `json:"location,omitempty" yaml:"location,omitempty"`
	Price    *decimal.Decimal `json:"price" yaml:"price,omitempty"`
	Acquired bool             `json:"acquired" yaml:"acquired"`
}

// ExpenseItem is one ledger line in the source currency.
type ExpenseItem struct {
	Category string          `json:"category" yaml:"category"`
	Name     string          `json:"name" yaml:"name"`
	Date     string          `json:"date" yaml:"date"`
	Amount   decimal.Decimal `json:"amount" yaml:"amount"`
	Method   string          `json:"method" yaml:"method"`
	Note     string          `json:"note,omitempty" yaml:"note,omitempty"`
}

// Normalize fills in zero collections and default currencies so that a
// freshly decoded record behaves like the seed.
func (d *Data) Normalize() {
	if d.DailyItineraries == nil {
		d.DailyItineraries = make(map[string]Day)
	}
	for key, day := range d.DailyItineraries {
		if day == nil {
			d.DailyItineraries[key] = Day{}
		}
	}
	if d.Accommodations == nil {
		d.Accommodations = []*Accommodation{}
	}
	if d.ShoppingList == nil {
		d.ShoppingList = []*ShoppingItem{}
	}
	if d.Expenses == nil {
		d.Expenses = []*ExpenseItem{}
	}
	if d.SourceCurrency == "" {
		d.SourceCurrency = DefaultSourceCurrency
	}
	if d.TargetCurrency == "" {
		d.TargetCurrency = DefaultTargetCurrency
	}
}

// Clone returns a deep copy of d.
func (d *Data) Clone() *Data {
	if d == nil {
		return nil
	}
	out := &Data{
		Title:            d.Title,
		DailyItineraries: make(map[string]Day, len(d.DailyItineraries)),
		Accommodations:   make([]*Accommodation, 0, len(d.Accommodations)),
		ShoppingList:     make([]*ShoppingItem, 0, len(d.ShoppingList)),
		Expenses:         make([]*ExpenseItem, 0, len(d.Expenses)),
		ExchangeRate:     d.ExchangeRate,
		SourceCurrency:   d.SourceCurrency,
		TargetCurrency:   d.TargetCurrency,
	}
	for key, day := range d.DailyItineraries {
		out.DailyItineraries[key] = day.Clone()
	}
	for _, a := range d.Accommodations {
		if a == nil {
			continue
		}
		cp := *a
		out.Accommodations = append(out.Accommodations, &cp)
	}
	for _, s := range d.ShoppingList {
		if s == nil {
			continue
		}
		cp := *s
		if s.Price != nil {
			price := *s.Price
			cp.Price = &price
		}
		out.ShoppingList = append(out.ShoppingList, &cp)
	}
	for _, e := range d.Expenses {
		if e == nil {
			continue
		}
		cp := *e
		out.Expenses = append(out.Expenses, &cp)
	}
	return out
}

// Clone returns a deep copy of the day.
func (d Day) Clone() Day {
	out := make(Day, 0, len(d))
	for _, it := range d {
		if it == nil {
			continue
		}
		cp := *it
		out = append(out, &cp)
	}
	return out
}

// Find returns the item with the given id and its index, or nil and -1.
func (d Day) Find(id int) (*ItineraryItem, int) {
	for i, it := range d {
		if it != nil && it.ID == id {
			return it, i
		}
	}
	return nil, -1
}
