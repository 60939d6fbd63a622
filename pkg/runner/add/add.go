// Package add provides the runners that append to the trip.
package add

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/shopspring/decimal"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/itinerary"
	"tableflip.dev/tabi/pkg/printers"
	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/view"
)

// Item adds an itinerary item to a day.
type Item struct {
	DateKey string
	Draft   itinerary.Draft

	Store *app.Store
	Out   io.Writer
}

func (n *Item) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no trip store")
	}
	it, err := n.Store.CreateItem(n.DateKey, n.Draft)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.NewLine()
	pp.Title(n.DateKey)
	pp.Itinerary(view.CurrentItinerary(n.Store.Snapshot(), n.DateKey)...)
	return report(n.Store, n.Out, fmt.Sprintf("added item %d", it.ID))
}

// Expense appends a ledger line.
type Expense struct {
	Expense trip.ExpenseItem

	Store *app.Store
	Out   io.Writer
}

func (n *Expense) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no trip store")
	}
	if _, err := n.Store.AddExpense(n.Expense); err != nil {
		return err
	}
	d := n.Store.Snapshot()
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Expenses(d.SourceCurrency, d.TargetCurrency, view.TotalExpense(d), view.SortedExpenses(d)...)
	return report(n.Store, n.Out, "added expense "+n.Expense.Name)
}

// Shopping appends a checklist entry. An empty Price is a custom price.
type Shopping struct {
	Name     string
	Location string
	Price    string

	Store *app.Store
	Out   io.Writer
}

func (n *Shopping) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no trip store")
	}
	item := trip.ShoppingItem{Name: n.Name, Location: n.Location}
	if n.Price != "" {
		p, err := decimal.NewFromString(n.Price)
		if err != nil {
			return fmt.Errorf("invalid price %q: %w", n.Price, err)
		}
		item.Price = &p
	}
	if _, err := n.Store.AddShoppingItem(item); err != nil {
		return err
	}
	d := n.Store.Snapshot()
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Shopping(d.SourceCurrency, d.ShoppingList...)
	return report(n.Store, n.Out, "added "+item.Name)
}

// Lodging appends an accommodation.
type Lodging struct {
	Accommodation trip.Accommodation

	Store *app.Store
	Out   io.Writer
}

func (n *Lodging) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no trip store")
	}
	if _, err := n.Store.AddAccommodation(n.Accommodation); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Lodging(n.Store.Accommodations()...)
	return report(n.Store, n.Out, "added "+n.Accommodation.Name)
}

// Day adds an empty day to the trip.
type Day struct {
	DateKey string

	Store *app.Store
	Out   io.Writer
}

func (n *Day) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add, no trip store")
	}
	if err := n.Store.AddDay(n.DateKey); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.NewLine()
	pp.Days(view.DateOptions(n.Store.Snapshot()))
	return report(n.Store, n.Out, "added day "+n.DateKey)
}

// report prints what happened, flagging a change that was not saved.
func report(s *app.Store, out io.Writer, msg string) error {
	if out == nil {
		out = color.Output
	}
	if err := s.LastPersist(); err != nil {
		_, _ = color.New(color.FgYellow).Fprintf(out, "%s (unsaved: %v)\n", msg, err)
		return nil
	}
	_, _ = color.New(color.Faint).Fprintln(out, msg)
	return nil
}
