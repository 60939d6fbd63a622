package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/view"
)

// Calendar prints every month touched by the trip, highlighting trip days.
// Days with scheduled items are bold; empty trip days are underlined.
func (pp *PrettyPrint) Calendar(d *trip.Data) {
	opts := view.DateOptions(d)
	marks := make(map[string]int, len(opts))
	var months []time.Time
	for _, o := range opts {
		t, err := time.Parse(trip.LayoutDateKey, o.DateKey)
		if err != nil {
			continue
		}
		marks[o.DateKey] = 1 + len(d.DailyItineraries[o.DateKey])
		first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
		if len(months) == 0 || !months[len(months)-1].Equal(first) {
			months = append(months, first)
		}
	}
	if len(months) == 0 {
		pp.none()
		return
	}
	for _, m := range months {
		pp.PrintMonth(m, marks)
	}
}

const width = len("11 12 13 14 15 16 17") // an example week

// PrintMonth prints one month grid. marks maps date-keys to 1 plus the number
// of items planned that day; unmarked days are faint.
func (pp *PrettyPrint) PrintMonth(then time.Time, marks map[string]int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Format("2006 01")
	mid := (width - len(m)) / 2
	_, _ = tf.Fprintf(pp.out(), "%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	// Pad out the start of the month.
	_, _ = fmt.Fprint(pp.out(), strings.Repeat("   ", int(d)))

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	l3 := color.New(color.Underline, color.FgHiWhite)

	days := DaysIn(then)
	for i := 0; i < days; i++ {
		key := time.Date(then.Year(), then.Month(), i+1, 0, 0, 0, 0, time.UTC).Format(trip.LayoutDateKey)
		switch n := marks[key]; {
		case n > 1:
			_, _ = l2.Fprintf(pp.out(), "%2d ", i+1)
		case n == 1:
			_, _ = l3.Fprintf(pp.out(), "%2d ", i+1)
		default:
			_, _ = l1.Fprintf(pp.out(), "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(pp.out(), "\n")
		}
	}
	_, _ = fmt.Fprint(pp.out(), "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
