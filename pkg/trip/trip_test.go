package trip

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    Clock
		wantErr bool
	}{
		{in: "9:30", want: 570},
		{in: "09:30", want: 570},
		{in: "19:00", want: 1140},
		{in: "0:00", want: 0},
		{in: "23:59", want: 1439},
		{in: " 12:05 ", want: 725},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "1200", wantErr: true},
		{in: "", wantErr: true},
		{in: "noon", wantErr: true},
	}
	for _, tc := range tests {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseClock(%q): expected error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseClock(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestClockJSON(t *testing.T) {
	item := ItineraryItem{ID: 1, Type: Meal, Name: "lunch", Time: MustClock("09:05")}
	b, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back ItineraryItem
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back.Time != item.Time || back.Time.String() != "9:05" {
		t.Fatalf("unexpected time after round trip: %s", back.Time)
	}

	if err := json.Unmarshal([]byte(`{"id":2,"name":"x","time":"25:00"}`), &back); err == nil {
		t.Fatal("expected malformed time to be rejected")
	}
}

func TestItemTypeUnknownDecodesAsOther(t *testing.T) {
	var it ItineraryItem
	if err := json.Unmarshal([]byte(`{"id":1,"type":"spaceship","name":"x","time":"1:00"}`), &it); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if it.Type != Other {
		t.Fatalf("expected other, got %q", it.Type)
	}
	if got, err := ParseItemType("train"); err != nil || got != Transport {
		t.Fatalf("alias lookup failed: %v %v", got, err)
	}
	if _, err := ParseItemType("spaceship"); err == nil {
		t.Fatal("expected strict parse to reject unknown type")
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := Seed()
	cp := orig.Clone()

	cp.DailyItineraries["2026-02-04"][0].Name = "changed"
	cp.ShoppingList[0].Acquired = true
	*cp.ShoppingList[0].Price = decimal.NewFromInt(1)
	cp.Expenses[0].Name = "changed"

	if orig.DailyItineraries["2026-02-04"][0].Name == "changed" {
		t.Fatal("itinerary item shared between clone and original")
	}
	if orig.ShoppingList[0].Acquired {
		t.Fatal("shopping item shared between clone and original")
	}
	if !orig.ShoppingList[0].Price.Equal(decimal.NewFromInt(39800)) {
		t.Fatal("price shared between clone and original")
	}
	if orig.Expenses[0].Name == "changed" {
		t.Fatal("expense shared between clone and original")
	}
}

func TestSeedShape(t *testing.T) {
	d := Seed()
	if len(d.DailyItineraries) != 6 {
		t.Fatalf("expected 6 days, got %d", len(d.DailyItineraries))
	}
	if len(d.DailyItineraries["2026-02-07"]) != 0 {
		t.Fatal("expected empty day 4")
	}
	if d.ShoppingList[1].Price != nil {
		t.Fatal("expected custom price for second shopping item")
	}
	if !d.ExchangeRate.Equal(decimal.RequireFromString("0.22")) {
		t.Fatalf("unexpected rate %s", d.ExchangeRate)
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	d := &Data{DailyItineraries: map[string]Day{"2026-01-01": nil}}
	d.Normalize()
	if d.DailyItineraries["2026-01-01"] == nil || d.Expenses == nil || d.ShoppingList == nil || d.Accommodations == nil {
		t.Fatal("expected empty collections after normalize")
	}
	if d.SourceCurrency != DefaultSourceCurrency || d.TargetCurrency != DefaultTargetCurrency {
		t.Fatalf("unexpected currencies %s/%s", d.SourceCurrency, d.TargetCurrency)
	}
}
