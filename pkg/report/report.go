// Package report renders a trip report as markdown, optionally styled for the
// terminal with glamour.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/currency"
)

// Options controls terminal rendering.
type Options struct {
	// Style is a glamour standard style: dark, light, notty or ascii. Raw
	// skips glamour and writes the markdown as is.
	Style string
	Raw   bool
	Width int
}

// Markdown lays the report out as a markdown document.
func Markdown(res app.ReportResult) string {
	var b strings.Builder

	title := res.Title
	if title == "" {
		title = "Trip report"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	switch {
	case res.Since != "" && res.Until != "":
		fmt.Fprintf(&b, "_%s → %s_\n\n", res.Since, res.Until)
	case res.Since != "":
		fmt.Fprintf(&b, "_from %s_\n\n", res.Since)
	case res.Until != "":
		fmt.Fprintf(&b, "_until %s_\n\n", res.Until)
	}
	fmt.Fprintf(&b, "%d days, %d items.\n\n", len(res.Days), res.Items)

	for _, day := range res.Days {
		o := day.Option
		fmt.Fprintf(&b, "## Day %d · %s %s\n\n", o.Day, o.DateKey, o.DayOfWeek)
		w := day.Weather
		fmt.Fprintf(&b, "> %s %s, %s° / %s°", w.Location, w.Condition, w.TempMax, w.TempMin)
		if w.Note != "" {
			fmt.Fprintf(&b, " (%s)", w.Note)
		}
		b.WriteString("\n\n")

		if len(day.Items) == 0 {
			b.WriteString("Nothing planned.\n\n")
		} else {
			b.WriteString("| Time | | Name | Location |\n|---|---|---|---|\n")
			for _, it := range day.Items {
				fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", it.Time, it.Type, cell(it.Name), cell(it.Location))
			}
			b.WriteString("\n")
		}

		for _, e := range day.Spent {
			fmt.Fprintf(&b, "- %s %s: %s\n", e.Category, e.Name, currency.Format(e.Amount, res.Source))
		}
		if len(day.Spent) > 0 {
			b.WriteString("\n")
		}
	}

	if len(res.Lodging) > 0 {
		b.WriteString("## Lodging\n\n")
		for _, a := range res.Lodging {
			fmt.Fprintf(&b, "- **%s** %s, %s\n", a.Date, a.Name, a.Address)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Budget\n\n")
	fmt.Fprintf(&b, "- Spent: %s (≈ %s)\n",
		currency.Format(res.Totals.Source, res.Source),
		currency.Format(res.Totals.Converted, res.Target))
	fmt.Fprintf(&b, "- Shopping: %d/%d acquired\n", res.Shopping.Acquired, res.Shopping.Total)
	return b.String()
}

// cell keeps table rows on one line.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

// Render writes the report to w.
func Render(w io.Writer, res app.ReportResult, opts Options) error {
	md := Markdown(res)
	if opts.Raw {
		_, err := io.WriteString(w, md)
		return err
	}

	style := opts.Style
	if style == "" {
		style = "dark"
	}
	width := opts.Width
	if width <= 0 {
		width = 80
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}
	out, err := renderer.Render(md)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}
