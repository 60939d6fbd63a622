package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/view"
)

func init() {
	color.NoColor = true
}

func TestItineraryShowsIDsAndNotes(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{ShowID: true, Out: &buf}
	d := trip.Seed()
	pp.Itinerary(view.CurrentItinerary(d, "2026-02-05")...)

	out := buf.String()
	for _, want := range []string{"4", " 9:30", "宮川朝市", "@ 岐阜県高山市", "請注意保暖"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "宮川朝市") > strings.Index(out, "雪屋祭") {
		t.Fatalf("expected items in time order:\n%s", out)
	}
}

func TestEmptyListsPrintNone(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Itinerary()
	pp.Lodging()
	if got := strings.Count(buf.String(), "none"); got != 2 {
		t.Fatalf("expected two none markers, got %d:\n%s", got, buf.String())
	}
}

func TestShoppingMarksAcquired(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	d := trip.Seed()
	d.ShoppingList[1].Acquired = true
	pp.Shopping("JPY", d.ShoppingList...)

	out := buf.String()
	if !strings.Contains(out, "[x]") || strings.Count(out, "[ ]") != 2 {
		t.Fatalf("unexpected checklist:\n%s", out)
	}
	if !strings.Contains(out, "自訂") {
		t.Fatalf("expected custom price marker:\n%s", out)
	}
	if !strings.Contains(out, "1/3 acquired") {
		t.Fatalf("expected progress line:\n%s", out)
	}
}

func TestExpensesPrintsTotals(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	d := trip.Seed()
	pp.Expenses(d.SourceCurrency, d.TargetCurrency, view.TotalExpense(d), view.SortedExpenses(d)...)

	out := buf.String()
	if !strings.Contains(out, "37,500") || !strings.Contains(out, "8,250") {
		t.Fatalf("expected totals in output:\n%s", out)
	}
}

func TestCalendarHighlightsTripMonth(t *testing.T) {
	var buf bytes.Buffer
	pp := PrettyPrint{Out: &buf}
	pp.Calendar(trip.Seed())
	if !strings.Contains(buf.String(), "2026 02") {
		t.Fatalf("expected February 2026 grid:\n%s", buf.String())
	}
	if got := DaysIn(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)); got != 28 {
		t.Fatalf("expected 28 days, got %d", got)
	}
	if got := StartDay(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)); got != time.Sunday {
		t.Fatalf("expected Sunday, got %s", got)
	}
}
