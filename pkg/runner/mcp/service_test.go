package mcp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/itinerary"
	"tableflip.dev/tabi/pkg/store"
	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/weather"
)

type memoryStore struct {
	data  *trip.Data
	saves int
}

func (m *memoryStore) Load(context.Context) *trip.Data { return m.data.Clone() }

func (m *memoryStore) Save(d *trip.Data) error {
	m.saves++
	m.data = d.Clone()
	return nil
}

func (m *memoryStore) Watch(context.Context) (<-chan store.Event, error) { return nil, nil }

func (m *memoryStore) Path() string { return "memory" }

func newService(t *testing.T) (*Service, *memoryStore) {
	t.Helper()
	mem := &memoryStore{data: trip.Seed()}
	s, err := app.New(context.Background(), mem)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return NewService(s, weather.Default()), mem
}

func strp(s string) *string { return &s }

func TestServiceListDays(t *testing.T) {
	svc, _ := newService(t)
	days, err := svc.ListDays(context.Background())
	if err != nil {
		t.Fatalf("ListDays failed: %v", err)
	}
	if len(days) != 6 {
		t.Fatalf("expected 6 days, got %d", len(days))
	}
	if days[0].DateKey != "2026-02-04" || days[0].DayOfWeek != "週三" || days[0].ItemCount != 3 {
		t.Fatalf("unexpected first day %+v", days[0])
	}
}

func TestServiceDayIsSortedWithWeather(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()
	if _, err := svc.CreateItem(ctx, ItemOptions{Date: "2026-02-05", Name: strp("早餐"), Time: strp("7:15"), Type: strp("meal")}); err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	day, err := svc.Day(ctx, "2026-02-05")
	if err != nil {
		t.Fatalf("Day failed: %v", err)
	}
	var times []string
	for _, it := range day.Items {
		times = append(times, it.Time)
	}
	if got := strings.Join(times, ","); got != "7:15,9:30,11:40,19:00" {
		t.Fatalf("unexpected order %s", got)
	}
	if day.Weather.Condition != "大雪" {
		t.Fatalf("unexpected weather %+v", day.Weather)
	}
	if day.Items[1].MapURL == "" {
		t.Fatal("expected a map link for an item with a location")
	}

	if _, err := svc.Day(ctx, "2030-01-01"); !errors.Is(err, ErrDayNotFound) {
		t.Fatalf("expected ErrDayNotFound, got %v", err)
	}
}

func TestServiceCreateItemDefaultsToOther(t *testing.T) {
	svc, mem := newService(t)
	dto, err := svc.CreateItem(context.Background(), ItemOptions{Date: "2026-02-07", Name: strp("名古屋城"), Time: strp("10:00")})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}
	if dto.ID != 1 || dto.Type != string(trip.Other) {
		t.Fatalf("unexpected item %+v", dto)
	}
	if mem.saves != 1 {
		t.Fatalf("expected one save, got %d", mem.saves)
	}
	if _, err := svc.CreateItem(context.Background(), ItemOptions{Date: "2026-02-07", Name: strp("x"), Time: strp("10:00"), Type: strp("boat")}); err == nil {
		t.Fatal("expected unknown type to fail")
	}
}

func TestServiceUpdateAndDelete(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	dto, err := svc.UpdateItem(ctx, 8, ItemOptions{Date: "2026-02-06", Time: strp("14:30")})
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if dto.ID != 8 || dto.Time != "14:30" || dto.Name != "高山清酒廠巡禮" {
		t.Fatalf("unexpected item %+v", dto)
	}

	if _, err := svc.UpdateItem(ctx, 8, ItemOptions{Date: "2026-02-06", Time: strp("25:00")}); err == nil {
		t.Fatal("expected malformed time to fail")
	}

	if err := svc.DeleteItem(ctx, "2026-02-06", 8); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}
	var nf *itinerary.NotFoundError
	if err := svc.DeleteItem(ctx, "2026-02-06", 8); !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestServiceToggleShopping(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	dto, err := svc.ToggleShopping(ctx, "清酒")
	if err != nil {
		t.Fatalf("ToggleShopping failed: %v", err)
	}
	if !dto.Acquired || dto.Index != 1 || dto.Price != "custom" {
		t.Fatalf("unexpected item %+v", dto)
	}
	dto, err = svc.ToggleShopping(ctx, "1")
	if err != nil {
		t.Fatalf("ToggleShopping failed: %v", err)
	}
	if dto.Acquired {
		t.Fatal("expected second toggle to clear the flag")
	}
	if _, err := svc.ToggleShopping(ctx, "9"); err == nil {
		t.Fatal("expected out of range index to fail")
	}
}

func TestServiceExpenses(t *testing.T) {
	svc, _ := newService(t)
	dto, err := svc.Expenses(context.Background())
	if err != nil {
		t.Fatalf("Expenses failed: %v", err)
	}
	if !strings.Contains(dto.Source, "37,500") || !strings.Contains(dto.Converted, "8,250") {
		t.Fatalf("unexpected totals %s / %s", dto.Source, dto.Converted)
	}
	if len(dto.Categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(dto.Categories))
	}
}

func TestServiceSearchItems(t *testing.T) {
	svc, _ := newService(t)
	results, err := svc.SearchItems(context.Background(), "高山", 0)
	if err != nil {
		t.Fatalf("SearchItems failed: %v", err)
	}
	if len(results) < 2 {
		t.Fatalf("expected several matches, got %d", len(results))
	}
	limited, err := svc.SearchItems(context.Background(), "高山", 1)
	if err != nil {
		t.Fatalf("SearchItems failed: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected limit to apply, got %d", len(limited))
	}
	if _, err := svc.SearchItems(context.Background(), " ", 1); err == nil {
		t.Fatal("expected empty query to fail")
	}
}

func TestTemplateArg(t *testing.T) {
	if got := templateArg([]string{"2026-02-04"}); got != "2026-02-04" {
		t.Fatalf("unexpected %q", got)
	}
	if got := templateArg("2026-02-05"); got != "2026-02-05" {
		t.Fatalf("unexpected %q", got)
	}
	if got := templateArg(nil); got != "" {
		t.Fatalf("unexpected %q", got)
	}
}
