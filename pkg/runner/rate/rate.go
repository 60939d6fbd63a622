// Package rate provides the runner for the exchange rate.
package rate

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/printers"
	"tableflip.dev/tabi/pkg/view"
)

// Rate sets the conversion rate and prints the converted total.
type Rate struct {
	Rate string

	Store *app.Store
	Out   io.Writer
}

func (n *Rate) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not set rate, no trip store")
	}
	r, err := decimal.NewFromString(n.Rate)
	if err != nil {
		return fmt.Errorf("invalid rate %q: %w", n.Rate, err)
	}
	if err := n.Store.SetExchangeRate(r); err != nil {
		return err
	}

	d := n.Store.Snapshot()
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Rate(d.SourceCurrency, d.TargetCurrency, d.ExchangeRate)
	pp.Expenses(d.SourceCurrency, d.TargetCurrency, view.TotalExpense(d))
	return nil
}
