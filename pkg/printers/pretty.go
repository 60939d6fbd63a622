package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/shopspring/decimal"

	"tableflip.dev/tabi/pkg/currency"
	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/view"
	"tableflip.dev/tabi/pkg/weather"
)

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

var (
	spacing = strings.Repeat(" ", len("12  "))
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = c.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Fprint(pp.out(), spacing)
	}
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Days lists the selectable trip days.
func (pp *PrettyPrint) Days(opts []view.DateOption) {
	if len(opts) == 0 {
		pp.none()
		return
	}
	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, o := range opts {
		tbl.AddRow(fmt.Sprintf("Day %d", o.Day), o.Display, o.DayOfWeek, faint.Sprint(o.DateKey))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Weather prints the forecast line shown above a day.
func (pp *PrettyPrint) Weather(w weather.Info) {
	c := color.New(color.FgHiCyan)
	f := color.New(color.Faint)
	_, _ = c.Fprintf(pp.out(), "%s %s°C / %s°C", w.Condition, w.TempMax, w.TempMin)
	_, _ = f.Fprintf(pp.out(), "  %s", w.Location)
	if w.Note != "" {
		_, _ = f.Fprintf(pp.out(), "  %s", w.Note)
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Itinerary prints one day's items in the given order.
func (pp *PrettyPrint) Itinerary(items ...*trip.ItineraryItem) {
	if len(items) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	f := color.New(color.Faint)

	for _, it := range items {
		if pp.ShowID {
			id := fmt.Sprint(it.ID)
			_, _ = y.Fprint(pp.out(), id)
			_, _ = y.Fprint(pp.out(), strings.Repeat(" ", max(len(spacing)-len(id), 1)))
		}
		_, _ = t.Fprintf(pp.out(), "%5s %s %s", it.Time, it.Type, it.Name)
		if it.Location != "" {
			_, _ = f.Fprintf(pp.out(), "  @ %s", it.Location)
		}
		_, _ = fmt.Fprintln(pp.out(), "")
		if it.Details.Note != "" {
			if pp.ShowID {
				_, _ = fmt.Fprint(pp.out(), spacing)
			}
			_, _ = f.Fprintf(pp.out(), "        %s\n", it.Details.Note)
		}
	}
	pp.NewLine()
}

// Lodging prints the accommodation list.
func (pp *PrettyPrint) Lodging(list ...*trip.Accommodation) {
	if len(list) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.Wrap = true
	tbl.MaxColWidth = 40
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Hotel"), bold.Sprint("Address"), bold.Sprint("Tel"))
	for _, a := range list {
		tbl.AddRow(a.Date, a.Name, faint.Sprint(a.Address), a.Tel)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Shopping prints the checklist with its index, used to toggle items.
func (pp *PrettyPrint) Shopping(code string, list ...*trip.ShoppingItem) {
	if len(list) == 0 {
		pp.none()
		return
	}
	done := color.New(color.Faint, color.CrossedOut)
	open := color.New()
	faint := color.New(color.Faint)
	tbl := uitable.New()
	tbl.Separator = "  "
	for i, it := range list {
		mark, p := "[ ]", open
		if it.Acquired {
			mark, p = "[x]", done
		}
		price := "自訂"
		if it.Price != nil {
			price = currency.Format(*it.Price, code)
		}
		tbl.AddRow(faint.Sprint(i), mark, p.Sprint(it.Name), faint.Sprint(it.Location), price)
	}
	tbl.RightAlign(4)
	_, _ = fmt.Fprintln(pp.out(), tbl)

	s := view.ShoppingProgress(&trip.Data{ShoppingList: list})
	_, _ = faint.Fprintf(pp.out(), "%d/%d acquired\n", s.Acquired, s.Total)
	pp.NewLine()
}

// Expenses prints the ledger followed by the source and converted totals.
func (pp *PrettyPrint) Expenses(source, target string, totals view.Totals, list ...*trip.ExpenseItem) {
	if len(list) == 0 {
		pp.none()
	} else {
		bold := color.New(color.Bold)
		faint := color.New(color.Faint)
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Category"), bold.Sprint("Item"), bold.Sprint("Method"), bold.Sprint("Amount"))
		for _, e := range list {
			tbl.AddRow(e.Date, e.Category, e.Name, faint.Sprint(e.Method), currency.Format(e.Amount, source))
		}
		tbl.RightAlign(4)
		_, _ = fmt.Fprintln(pp.out(), tbl)
	}

	b := color.New(color.Bold)
	_, _ = b.Fprintf(pp.out(), "Total %s", currency.Format(totals.Source, source))
	_, _ = color.New(color.FgHiGreen).Fprintf(pp.out(), "  ≈ %s\n", currency.Format(totals.Converted, target))
	pp.NewLine()
}

// Categories prints per-category totals.
func (pp *PrettyPrint) Categories(code string, totals []view.CategoryTotal) {
	if len(totals) == 0 {
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, c := range totals {
		tbl.AddRow(c.Category, fmt.Sprintf("x%d", c.Count), currency.Format(c.Amount, code))
	}
	tbl.RightAlign(2)
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Rate prints the conversion rate between the trip currencies.
func (pp *PrettyPrint) Rate(source, target string, rate decimal.Decimal) {
	_, _ = fmt.Fprintf(pp.out(), "1 %s = %s %s\n", source, rate.String(), target)
}
