package app

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"tableflip.dev/tabi/pkg/itinerary"
	"tableflip.dev/tabi/pkg/store"
	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/weather"
)

type memoryPersistence struct {
	mu      sync.Mutex
	data    *trip.Data
	saves   int
	failing error
}

func newMemoryPersistence(d *trip.Data) *memoryPersistence {
	if d == nil {
		d = trip.Seed()
	}
	return &memoryPersistence{data: d.Clone()}
}

func (m *memoryPersistence) Load(context.Context) *trip.Data {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.Clone()
}

func (m *memoryPersistence) Save(d *trip.Data) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.failing != nil {
		return m.failing
	}
	m.data = d.Clone()
	return nil
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func (m *memoryPersistence) Path() string { return "memory" }

func (m *memoryPersistence) saved() *trip.Data {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data.Clone()
}

func newTestStore(t *testing.T) (*Store, *memoryPersistence) {
	t.Helper()
	mp := newMemoryPersistence(nil)
	s, err := New(context.Background(), mp)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return s, mp
}

func TestNewRequiresPersistence(t *testing.T) {
	if _, err := New(context.Background(), nil); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}

func TestItineraryDoesNotCreateDay(t *testing.T) {
	s, _ := newTestStore(t)
	if got := s.Itinerary("2030-01-01"); len(got) != 0 {
		t.Fatalf("expected empty itinerary, got %d items", len(got))
	}
	if s.HasDay("2030-01-01") {
		t.Fatal("reading a missing day must not create it")
	}
}

func TestToggleAcquiredIsSymmetric(t *testing.T) {
	s, mp := newTestStore(t)
	item := s.ShoppingList()[1]
	before := item.Acquired

	if !s.ToggleAcquired(item) {
		t.Fatal("expected toggle to find the item")
	}
	if item.Acquired == before {
		t.Fatal("expected acquired to flip")
	}
	if mp.saved().ShoppingList[1].Acquired == before {
		t.Fatal("expected toggle to be persisted")
	}
	if !s.ToggleAcquired(item) {
		t.Fatal("expected second toggle to find the item")
	}
	if item.Acquired != before {
		t.Fatal("expected two toggles to restore the flag")
	}
}

func TestToggleAcquiredUnknownItemIsNoop(t *testing.T) {
	s, mp := newTestStore(t)
	stranger := &trip.ShoppingItem{Name: s.ShoppingList()[0].Name}
	if s.ToggleAcquired(stranger) {
		t.Fatal("expected unknown item to be ignored")
	}
	if mp.saves != 0 {
		t.Fatalf("expected no save, got %d", mp.saves)
	}
	if s.ToggleAcquired(nil) {
		t.Fatal("expected nil item to be ignored")
	}
}

func TestToggleAcquiredAt(t *testing.T) {
	s, _ := newTestStore(t)
	it, err := s.ToggleAcquiredAt(0)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !it.Acquired {
		t.Fatal("expected item to be acquired")
	}
	if _, err := s.ToggleAcquiredAt(99); err == nil {
		t.Fatal("expected out of range error")
	}
}

func TestCreateItemPersistsAndCreatesDay(t *testing.T) {
	s, mp := newTestStore(t)
	it, err := s.CreateItem("2026-02-10", itinerary.Draft{Type: trip.Flight, Name: "NGO 起飛", Time: "17:20"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if it.ID != 1 {
		t.Fatalf("expected id 1 on a new day, got %d", it.ID)
	}
	day := mp.saved().DailyItineraries["2026-02-10"]
	if len(day) != 1 || day[0].Name != "NGO 起飛" {
		t.Fatalf("unexpected saved day %+v", day)
	}

	it, err = s.CreateItem("2026-02-05", itinerary.Draft{Name: "足湯", Time: "21:00"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if it.ID != 7 {
		t.Fatalf("expected id 7 after seed ids 4..6, got %d", it.ID)
	}
}

func TestCreateItemRejectsBadInputWithoutChange(t *testing.T) {
	s, mp := newTestStore(t)
	if _, err := s.CreateItem("Feb 4", itinerary.Draft{Name: "x", Time: "9:00"}); err == nil {
		t.Fatal("expected bad date-key to fail")
	}
	_, err := s.CreateItem("2026-02-04", itinerary.Draft{Name: "", Time: "9:00"})
	var verr *itinerary.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if got := len(s.Itinerary("2026-02-04")); got != 3 {
		t.Fatalf("expected 3 items, got %d", got)
	}
	if mp.saves != 0 {
		t.Fatalf("expected no save, got %d", mp.saves)
	}
}

func TestUpdateAndDeleteItem(t *testing.T) {
	s, mp := newTestStore(t)
	name := "宮川朝市 (早)"
	at := "8:45"
	it, err := s.UpdateItem("2026-02-05", 4, itinerary.Patch{Name: &name, Time: &at})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if it.ID != 4 || it.Name != name || it.Time != trip.MustClock("8:45") {
		t.Fatalf("unexpected item %+v", it)
	}

	if err := s.DeleteItem("2026-02-05", 4); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var nf *itinerary.NotFoundError
	if err := s.DeleteItem("2026-02-05", 4); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError on second delete, got %v", err)
	}
	if err := s.DeleteItem("2030-01-01", 1); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for missing day, got %v", err)
	}
	if _, err := s.UpdateItem("2030-01-01", 1, itinerary.Patch{}); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError for missing day, got %v", err)
	}
	if got := len(mp.saved().DailyItineraries["2026-02-05"]); got != 2 {
		t.Fatalf("expected 2 saved items, got %d", got)
	}
}

func TestSetExchangeRate(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.SetExchangeRate(decimal.Zero); err == nil {
		t.Fatal("expected zero rate to be rejected")
	}
	if err := s.SetExchangeRate(decimal.RequireFromString("0.21")); err != nil {
		t.Fatalf("set rate: %v", err)
	}
	if !s.ExchangeRate().Equal(decimal.RequireFromString("0.21")) {
		t.Fatalf("unexpected rate %s", s.ExchangeRate())
	}
}

func TestAddersValidateShape(t *testing.T) {
	s, _ := newTestStore(t)
	if _, err := s.AddExpense(trip.ExpenseItem{Name: "咖啡", Date: "2026-02-05", Amount: decimal.NewFromInt(-1)}); err == nil {
		t.Fatal("expected negative amount to fail")
	}
	if _, err := s.AddExpense(trip.ExpenseItem{Name: "咖啡", Date: "2026-02-05", Amount: decimal.Zero}); err == nil {
		t.Fatal("expected zero amount to fail")
	}
	if _, err := s.AddExpense(trip.ExpenseItem{Name: "咖啡", Date: "2026-02-05", Amount: decimal.NewFromInt(450)}); err != nil {
		t.Fatalf("add expense: %v", err)
	}
	if got := len(s.Expenses()); got != 4 {
		t.Fatalf("expected 4 expenses, got %d", got)
	}
	if _, err := s.AddShoppingItem(trip.ShoppingItem{Name: "  "}); err == nil {
		t.Fatal("expected empty name to fail")
	}
	free := decimal.Zero
	if _, err := s.AddShoppingItem(trip.ShoppingItem{Name: "試吃", Price: &free}); err == nil {
		t.Fatal("expected zero price to fail")
	}
	if _, err := s.AddShoppingItem(trip.ShoppingItem{Name: "抹茶"}); err != nil {
		t.Fatalf("expected a custom price to be accepted: %v", err)
	}
	if _, err := s.AddAccommodation(trip.Accommodation{Date: "2/9", Name: "中部國際機場"}); err != nil {
		t.Fatalf("add accommodation: %v", err)
	}
	if err := s.AddDay("2026-02-10"); err != nil {
		t.Fatalf("add day: %v", err)
	}
	if !s.HasDay("2026-02-10") {
		t.Fatal("expected new day")
	}
}

func TestPersistFailureIsRecorded(t *testing.T) {
	s, mp := newTestStore(t)
	mp.failing = errors.New("disk full")

	if _, err := s.ToggleAcquiredAt(0); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if s.LastPersist() == nil {
		t.Fatal("expected LastPersist to report the failure")
	}
	if !s.ShoppingList()[0].Acquired {
		t.Fatal("expected in-memory change to stand")
	}

	mp.failing = nil
	if _, err := s.ToggleAcquiredAt(0); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if err := s.LastPersist(); err != nil {
		t.Fatalf("expected clean state after a good save, got %v", err)
	}
}

func TestReloadClearsPersistFailure(t *testing.T) {
	s, mp := newTestStore(t)
	mp.failing = errors.New("disk full")
	if _, err := s.ToggleAcquiredAt(0); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if s.LastPersist() == nil {
		t.Fatal("expected LastPersist to report the failure")
	}

	s.Reload(context.Background())
	if s.ShoppingList()[0].Acquired {
		t.Fatal("expected reload to restore the saved trip")
	}
	if err := s.LastPersist(); err != nil {
		t.Fatalf("expected reload to clear the failure, got %v", err)
	}
}

func TestReplaceRejectsDuplicateIDs(t *testing.T) {
	s, mp := newTestStore(t)
	d := trip.Seed()
	day := d.DailyItineraries["2026-02-04"]
	day[1].ID = day[0].ID
	d.Title = "twice"

	err := s.Replace(d)
	var ve *itinerary.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if s.Snapshot().Title == "twice" || mp.saves != 0 {
		t.Fatal("expected a rejected import to leave the trip unchanged")
	}

	if err := s.DeleteItem("2026-02-04", 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var nf *itinerary.NotFoundError
	if err := s.DeleteItem("2026-02-04", 1); !errors.As(err, &nf) {
		t.Fatalf("expected second delete to fail with NotFoundError, got %v", err)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	s, _ := newTestStore(t)
	snap := s.Snapshot()
	snap.ShoppingList[0].Acquired = true
	snap.DailyItineraries["2026-02-04"][0].Name = "changed"
	if s.ShoppingList()[0].Acquired {
		t.Fatal("snapshot edits leaked into the store")
	}
	if s.Itinerary("2026-02-04")[0].Name == "changed" {
		t.Fatal("snapshot edits leaked into the store")
	}
}

func TestReplaceAndReload(t *testing.T) {
	s, mp := newTestStore(t)
	d := trip.Seed()
	d.Title = "名古屋"
	if err := s.Replace(d); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if mp.saved().Title != "名古屋" {
		t.Fatal("expected replace to persist")
	}

	bad := trip.Seed()
	bad.DailyItineraries["tomorrow"] = trip.Day{}
	if err := s.Replace(bad); err == nil {
		t.Fatal("expected bad date-key to be rejected")
	}

	mp.data.Title = "outside edit"
	s.Reload(context.Background())
	if s.Snapshot().Title != "outside edit" {
		t.Fatal("expected reload to pick up the persisted trip")
	}
}

func TestReportWindow(t *testing.T) {
	s, _ := newTestStore(t)
	res := s.Report(context.Background(), weather.Default(), "2026-02-06", "2026-02-05")
	if len(res.Days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(res.Days))
	}
	if res.Days[0].Option.DateKey != "2026-02-05" || res.Items != 6 {
		t.Fatalf("unexpected report %+v", res)
	}
	if res.Days[1].Weather.Condition != "晴朗" {
		t.Fatalf("unexpected weather %+v", res.Days[1].Weather)
	}

	all := s.Report(context.Background(), nil, "", "")
	if len(all.Days) != 6 || len(all.Days[0].Spent) != 3 {
		t.Fatalf("unexpected full report: %d days", len(all.Days))
	}
	if all.Days[0].Weather != weather.Unknown() {
		t.Fatal("expected unknown weather without provider")
	}
	if !all.Totals.Converted.Equal(decimal.NewFromInt(8250)) {
		t.Fatalf("unexpected converted total %s", all.Totals.Converted)
	}
}
