package view

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/weather"
)

func TestDateOptions(t *testing.T) {
	d := &trip.Data{DailyItineraries: map[string]trip.Day{
		"2026-02-06": {},
		"2026-02-04": {},
		"2026-02-05": {},
	}}
	got := DateOptions(d)
	want := []DateOption{
		{DateKey: "2026-02-04", DayOfWeek: "週三", Display: "02/04", Day: 1},
		{DateKey: "2026-02-05", DayOfWeek: "週四", Display: "02/05", Day: 2},
		{DateKey: "2026-02-06", DayOfWeek: "週五", Display: "02/06", Day: 3},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected date options (-want +got):\n%s", diff)
	}
}

func TestCurrentItinerarySortsByTime(t *testing.T) {
	d := &trip.Data{DailyItineraries: map[string]trip.Day{
		"2026-02-05": {
			{ID: 1, Name: "evening", Time: trip.MustClock("19:00")},
			{ID: 2, Name: "morning", Time: trip.MustClock("9:30")},
			{ID: 3, Name: "afternoon", Time: trip.MustClock("15:00")},
		},
	}}
	got := CurrentItinerary(d, "2026-02-05")
	var times []string
	for _, it := range got {
		times = append(times, it.Time.String())
	}
	if diff := cmp.Diff([]string{"9:30", "15:00", "19:00"}, times); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	if d.DailyItineraries["2026-02-05"][0].ID != 1 {
		t.Fatal("input day was reordered")
	}
}

func TestCurrentItineraryStableForTies(t *testing.T) {
	d := &trip.Data{DailyItineraries: map[string]trip.Day{
		"k": {
			{ID: 5, Time: trip.MustClock("10:00")},
			{ID: 2, Time: trip.MustClock("10:00")},
			{ID: 9, Time: trip.MustClock("8:00")},
			{ID: 1, Time: trip.MustClock("10:00")},
		},
	}}
	got := CurrentItinerary(d, "k")
	ids := []int{got[0].ID, got[1].ID, got[2].ID, got[3].ID}
	if diff := cmp.Diff([]int{9, 5, 2, 1}, ids); diff != "" {
		t.Fatalf("ties not kept in insertion order (-want +got):\n%s", diff)
	}
	if len(CurrentItinerary(d, "missing")) != 0 {
		t.Fatal("expected empty itinerary for unknown day")
	}
	if _, ok := d.DailyItineraries["missing"]; ok {
		t.Fatal("lookup created a day")
	}
}

func TestWeatherFallback(t *testing.T) {
	ctx := context.Background()
	if got := WeatherFor(ctx, weather.Default(), "2099-01-01", ""); got != weather.Unknown() {
		t.Fatalf("expected unknown sentinel, got %+v", got)
	}
	if got := WeatherFor(ctx, nil, "2026-02-04", ""); got != weather.Unknown() {
		t.Fatalf("expected unknown sentinel for nil provider, got %+v", got)
	}
	if got := WeatherFor(ctx, weather.Default(), "2026-02-05", ""); got.Condition != "大雪" {
		t.Fatalf("unexpected forecast %+v", got)
	}
	want := weather.Info{TempMax: "?", TempMin: "?", Condition: "未知", Location: "未知", Note: ""}
	if weather.Unknown() != want {
		t.Fatalf("unexpected sentinel %+v", weather.Unknown())
	}
}

func TestSortedExpenses(t *testing.T) {
	d := &trip.Data{Expenses: []*trip.ExpenseItem{
		{Name: "c", Date: "2026-02-06"},
		{Name: "a", Date: "2026-02-04"},
		{Name: "b", Date: "2026-02-04"},
	}}
	got := SortedExpenses(d)
	names := []string{got[0].Name, got[1].Name, got[2].Name}
	if diff := cmp.Diff([]string{"a", "b", "c"}, names); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
	if d.Expenses[0].Name != "c" {
		t.Fatal("input expenses were reordered")
	}
}

func TestTotalExpense(t *testing.T) {
	d := &trip.Data{
		Expenses: []*trip.ExpenseItem{
			{Amount: decimal.NewFromInt(5500)},
			{Amount: decimal.NewFromInt(30000)},
			{Amount: decimal.NewFromInt(2000)},
			{},
		},
		ExchangeRate: decimal.RequireFromString("0.22"),
	}
	got := TotalExpense(d)
	if !got.Source.Equal(decimal.NewFromInt(37500)) {
		t.Fatalf("source total = %s, want 37500", got.Source)
	}
	if !got.Converted.Equal(decimal.NewFromInt(8250)) {
		t.Fatalf("converted total = %s, want 8250", got.Converted)
	}

	again := TotalExpense(d)
	if !again.Source.Equal(got.Source) || !again.Converted.Equal(got.Converted) {
		t.Fatal("repeated call produced a different result")
	}
}

func TestShoppingProgressAndCategories(t *testing.T) {
	d := trip.Seed()
	d.ShoppingList[0].Acquired = true

	p := ShoppingProgress(d)
	if p.Total != 3 || p.Acquired != 1 || p.Custom != 2 || !p.KnownPrice.Equal(decimal.NewFromInt(39800)) {
		t.Fatalf("unexpected progress %+v", p)
	}

	cats := ExpensesByCategory(d)
	if len(cats) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(cats))
	}
	for i := 1; i < len(cats); i++ {
		if cats[i-1].Category > cats[i].Category {
			t.Fatalf("categories not sorted: %v", cats)
		}
	}
}
