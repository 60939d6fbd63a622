package store

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"tableflip.dev/tabi/pkg/trip"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

func openTest(t *testing.T, base string, opts ...Option) Persistence {
	t.Helper()
	opts = append([]Option{WithLogger(discardLogger())}, opts...)
	p, err := Open(StaticConfig{Path: base}, opts...)
	if err != nil {
		t.Fatalf("open persistence: %v", err)
	}
	return p
}

func readRecord(t *testing.T, p Persistence) []byte {
	t.Helper()
	b, err := os.ReadFile(p.Path())
	if err != nil {
		t.Fatalf("read record: %v", err)
	}
	return b
}

func TestLoadWithoutRecordReturnsSeed(t *testing.T) {
	var buf bytes.Buffer
	p := openTest(t, t.TempDir(), WithLogger(log.New(&buf, "", 0)))

	got := p.Load(context.Background())
	if diff := cmp.Diff(trip.Seed(), got, decimalEqual); diff != "" {
		t.Fatalf("expected seed (-want +got):\n%s", diff)
	}
	if !strings.Contains(buf.String(), "no saved trip") {
		t.Fatalf("expected the fallback to be logged, got %q", buf.String())
	}
}

func TestRoundTripIsIdempotent(t *testing.T) {
	ctx := context.Background()
	p := openTest(t, t.TempDir())

	if err := p.Save(p.Load(ctx)); err != nil {
		t.Fatalf("first save: %v", err)
	}
	first := readRecord(t, p)

	if err := p.Save(p.Load(ctx)); err != nil {
		t.Fatalf("second save: %v", err)
	}
	second := readRecord(t, p)

	if !bytes.Equal(first, second) {
		t.Fatalf("record changed on second round trip:\n%s\n---\n%s", first, second)
	}
	if diff := cmp.Diff(trip.Seed(), p.Load(ctx), decimalEqual); diff != "" {
		t.Fatalf("loaded trip differs from seed (-want +got):\n%s", diff)
	}
}

func TestSaveThenLoadKeepsEdits(t *testing.T) {
	ctx := context.Background()
	p := openTest(t, t.TempDir())

	d := trip.Seed()
	d.ShoppingList[2].Acquired = true
	d.DailyItineraries["2026-02-07"] = trip.Day{{ID: 1, Type: trip.Attraction, Name: "名古屋城", Time: trip.MustClock("10:00")}}
	if err := p.Save(d); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := p.Load(ctx)
	if diff := cmp.Diff(d, got, decimalEqual); diff != "" {
		t.Fatalf("loaded trip differs (-want +got):\n%s", diff)
	}
}

func TestLoadCorruptRecordFallsBackToSeed(t *testing.T) {
	p := openTest(t, t.TempDir())
	if err := os.MkdirAll(filepath.Dir(p.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	got := p.Load(context.Background())
	if diff := cmp.Diff(trip.Seed(), got, decimalEqual); diff != "" {
		t.Fatalf("expected seed (-want +got):\n%s", diff)
	}
}

func TestLoadFutureSchemaFallsBackToSeed(t *testing.T) {
	p := openTest(t, t.TempDir())
	if err := os.MkdirAll(filepath.Dir(p.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p.Path(), []byte(`{"schema": 99, "trip": {"title": "later"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := p.Load(context.Background()); got.Title != trip.Seed().Title {
		t.Fatalf("expected seed, got title %q", got.Title)
	}
}

func TestLoadDuplicateIDsFallsBackToSeed(t *testing.T) {
	rec := `{"schema": 1, "trip": {
  "title": "twice",
  "dailyItineraries": {"2026-02-04": [
    {"id": 1, "type": "meal", "name": "a", "time": "9:00", "details": {}},
    {"id": 1, "type": "meal", "name": "b", "time": "10:00", "details": {}}
  ]},
  "exchangeRate": 0.22
}}`
	p := openTest(t, t.TempDir())
	if err := os.MkdirAll(filepath.Dir(p.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p.Path(), []byte(rec), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := p.Load(context.Background()); got.Title != trip.Seed().Title {
		t.Fatalf("expected seed, got title %q", got.Title)
	}
}

func TestLoadLegacyRecord(t *testing.T) {
	legacy := `{
  "dailyItineraries": {"2026-02-04": [{"id": 1, "type": "meal", "name": "ramen", "time": "9:30", "details": {"note": "n"}}]},
  "accommodations": [],
  "shoppingList": [{"name": "sake", "price": null, "acquired": false}],
  "expenses": [{"category": "food", "name": "lunch", "date": "2026-02-04", "amount": 2000, "method": "cash"}],
  "exchangeRate": 0.22
}`
	p := openTest(t, t.TempDir())
	if err := os.MkdirAll(filepath.Dir(p.Path()), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p.Path(), []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}

	got := p.Load(context.Background())
	day := got.DailyItineraries["2026-02-04"]
	if len(day) != 1 || day[0].Name != "ramen" || day[0].Time != trip.MustClock("9:30") {
		t.Fatalf("unexpected day %+v", day)
	}
	if !got.Expenses[0].Amount.Equal(decimal.NewFromInt(2000)) {
		t.Fatalf("unexpected amount %s", got.Expenses[0].Amount)
	}
	if got.SourceCurrency != trip.DefaultSourceCurrency {
		t.Fatalf("expected default currency, got %q", got.SourceCurrency)
	}

	if err := p.Save(got); err != nil {
		t.Fatalf("save: %v", err)
	}
	if !bytes.Contains(readRecord(t, p), []byte(`"schema": 1`)) {
		t.Fatal("expected migrated record to carry the schema version")
	}
}

func TestSaveFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	base := filepath.Join(dir, "blocked")
	if err := os.WriteFile(base, []byte("not a directory"), 0o644); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	p := openTest(t, base, WithLogger(log.New(&buf, "", 0)))

	if err := p.Save(trip.Seed()); err == nil {
		t.Fatal("expected save into a file path to fail")
	}
	if !strings.Contains(buf.String(), "kept in memory only") {
		t.Fatalf("expected write failure to be logged, got %q", buf.String())
	}
}

func TestKeyTransformRoundTrip(t *testing.T) {
	for _, key := range []string{"tabi-trip", "trip", "a-b-c"} {
		if got := pathToKeyTransform(keyToPathTransform(key)); got != key {
			t.Fatalf("key %q became %q", key, got)
		}
	}
}
