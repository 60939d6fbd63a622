// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/tabi/pkg/trip"
)

const (
	layoutLoose = "2006-1-2"
	layoutShort = "1/2"
)

// DateOptions selects a trip day.
type DateOptions struct {
	Date string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		`Specify the day, example: --date="2026-02-05" or --date="2/5". Defaults to the first day.`)
}

// DateKey returns the flag as a date-key, or "" when unset. A short "1/2"
// date takes its year from ref, a date-key of the trip, or the current year
// when ref is empty.
func (o *DateOptions) DateKey(ref string) (string, error) {
	return ParseDateKey(o.Date, ref)
}

func ParseDateKey(v, ref string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", nil
	}
	for _, layout := range []string{trip.LayoutDateKey, layoutLoose} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(trip.LayoutDateKey), nil
		}
	}
	t, err := time.Parse(layoutShort, v)
	if err != nil {
		return "", fmt.Errorf("invalid date %q, want YYYY-MM-DD or M/D", v)
	}
	year := time.Now().Year()
	if r, err := time.Parse(trip.LayoutDateKey, ref); err == nil {
		year = r.Year()
	}
	d := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	if d.Month() != t.Month() || d.Day() != t.Day() {
		return "", fmt.Errorf("invalid date %q, %d has no %s", v, year, t.Format("Jan 2"))
	}
	return d.Format(trip.LayoutDateKey), nil
}
