// Package mcp provides the Model Context Protocol server integration for tabi.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/currency"
	"tableflip.dev/tabi/pkg/itinerary"
	"tableflip.dev/tabi/pkg/maps"
	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/view"
	"tableflip.dev/tabi/pkg/weather"
)

// Service coordinates store-backed operations that are shared by the MCP server.
type Service struct {
	Store   *app.Store
	Weather weather.Provider
}

// ErrDayNotFound is returned when a date-key is not part of the trip.
var ErrDayNotFound = errors.New("day not found")

// DaySummary describes one trip day.
type DaySummary struct {
	view.DateOption
	ItemCount int `json:"itemCount"`
}

// ItemDTO is a transport-friendly projection of an itinerary item.
type ItemDTO struct {
	ID         int    `json:"id"`
	Date       string `json:"date"`
	Type       string `json:"type"`
	TypeSymbol string `json:"typeSymbol"`
	Name       string `json:"name"`
	Time       string `json:"time"`
	Location   string `json:"location,omitempty"`
	Note       string `json:"note,omitempty"`
	MapURL     string `json:"mapUrl,omitempty"`
}

// DayDTO is a day's schedule with its forecast.
type DayDTO struct {
	Date    string       `json:"date"`
	Weather weather.Info `json:"weather"`
	Items   []ItemDTO    `json:"items"`
	Count   int          `json:"count"`
}

// ShoppingDTO is a checklist entry addressed by its index.
type ShoppingDTO struct {
	Index    int    `json:"index"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	Price    string `json:"price"`
	Acquired bool   `json:"acquired"`
}

// ExpensesDTO is the ledger sorted by date with totals.
type ExpensesDTO struct {
	Expenses   []*trip.ExpenseItem  `json:"expenses"`
	Categories []view.CategoryTotal `json:"categories"`
	Source     string               `json:"source"`
	Converted  string               `json:"converted"`
	Rate       decimal.Decimal      `json:"rate"`
}

// ItemOptions captures the fields used to create or update an item. Empty
// pointers leave fields untouched on update.
type ItemOptions struct {
	Date     string
	Type     *string
	Name     *string
	Time     *string
	Location *string
	Note     *string
}

// NewService builds a service wrapper using the provided trip store.
func NewService(s *app.Store, w weather.Provider) *Service {
	return &Service{Store: s, Weather: w}
}

func (s *Service) check() error {
	if s.Store == nil {
		return errors.New("trip store is not configured")
	}
	return nil
}

// ListDays returns every trip day in order.
func (s *Service) ListDays(ctx context.Context) ([]DaySummary, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	d := s.Store.Snapshot()
	opts := view.DateOptions(d)
	out := make([]DaySummary, 0, len(opts))
	for _, o := range opts {
		out = append(out, DaySummary{DateOption: o, ItemCount: len(d.DailyItineraries[o.DateKey])})
	}
	return out, nil
}

// Day returns the schedule of date ordered by time.
func (s *Service) Day(ctx context.Context, date string) (*DayDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	d := s.Store.Snapshot()
	if _, ok := d.DailyItineraries[date]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrDayNotFound, date)
	}
	items := view.CurrentItinerary(d, date)
	hint := ""
	if len(items) > 0 {
		hint = items[0].Location
	}
	return &DayDTO{
		Date:    date,
		Weather: view.WeatherFor(ctx, s.Weather, date, hint),
		Items:   toDTOs(date, items),
		Count:   len(items),
	}, nil
}

// Forecast returns the weather for date.
func (s *Service) Forecast(ctx context.Context, date string) (weather.Info, error) {
	day, err := s.Day(ctx, date)
	if err != nil {
		return weather.Info{}, err
	}
	return day.Weather, nil
}

// CreateItem adds an item to opts.Date.
func (s *Service) CreateItem(ctx context.Context, opts ItemOptions) (*ItemDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	draft := itinerary.Draft{
		Name:     deref(opts.Name),
		Time:     deref(opts.Time),
		Location: deref(opts.Location),
		Note:     deref(opts.Note),
	}
	if opts.Type != nil {
		t, err := trip.ParseItemType(*opts.Type)
		if err != nil {
			return nil, err
		}
		draft.Type = t
	}
	it, err := s.Store.CreateItem(opts.Date, draft)
	if err != nil {
		return nil, err
	}
	dto := toDTO(opts.Date, it)
	return &dto, nil
}

// UpdateItem changes the item id of opts.Date.
func (s *Service) UpdateItem(ctx context.Context, id int, opts ItemOptions) (*ItemDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	patch := itinerary.Patch{
		Name:     opts.Name,
		Time:     opts.Time,
		Location: opts.Location,
		Note:     opts.Note,
	}
	if opts.Type != nil {
		t, err := trip.ParseItemType(*opts.Type)
		if err != nil {
			return nil, err
		}
		patch.Type = &t
	}
	it, err := s.Store.UpdateItem(opts.Date, id, patch)
	if err != nil {
		return nil, err
	}
	dto := toDTO(opts.Date, it)
	return &dto, nil
}

// DeleteItem removes the item id of date.
func (s *Service) DeleteItem(ctx context.Context, date string, id int) error {
	if err := s.check(); err != nil {
		return err
	}
	return s.Store.DeleteItem(date, id)
}

// Shopping lists the checklist.
func (s *Service) Shopping(ctx context.Context) ([]ShoppingDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	d := s.Store.Snapshot()
	out := make([]ShoppingDTO, 0, len(d.ShoppingList))
	for i, it := range d.ShoppingList {
		out = append(out, toShoppingDTO(i, it, d.SourceCurrency))
	}
	return out, nil
}

// ToggleShopping flips the item addressed by index or exact name.
func (s *Service) ToggleShopping(ctx context.Context, item string) (*ShoppingDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	key := strings.TrimSpace(item)
	list := s.Store.ShoppingList()
	idx := -1
	if i, err := strconv.Atoi(key); err == nil {
		idx = i
	} else {
		for i, it := range list {
			if it.Name == key {
				idx = i
				break
			}
		}
	}
	if idx < 0 || idx >= len(list) {
		return nil, fmt.Errorf("no shopping item %q", item)
	}
	if !s.Store.ToggleAcquired(list[idx]) {
		return nil, fmt.Errorf("no shopping item %q", item)
	}
	d := s.Store.Snapshot()
	dto := toShoppingDTO(idx, d.ShoppingList[idx], d.SourceCurrency)
	return &dto, nil
}

// Expenses returns the ledger and its totals.
func (s *Service) Expenses(ctx context.Context) (*ExpensesDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	d := s.Store.Snapshot()
	totals := view.TotalExpense(d)
	return &ExpensesDTO{
		Expenses:   view.SortedExpenses(d),
		Categories: view.ExpensesByCategory(d),
		Source:     currency.Format(totals.Source, d.SourceCurrency),
		Converted:  currency.Format(totals.Converted, d.TargetCurrency),
		Rate:       d.ExchangeRate,
	}, nil
}

// SearchItems finds items whose name, location or note contains query.
func (s *Service) SearchItems(ctx context.Context, query string, limit int) ([]ItemDTO, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, errors.New("query is required")
	}
	d := s.Store.Snapshot()
	var results []ItemDTO
	for _, o := range view.DateOptions(d) {
		for _, it := range view.CurrentItinerary(d, o.DateKey) {
			hay := strings.ToLower(it.Name + "\n" + it.Location + "\n" + it.Details.Note)
			if !strings.Contains(hay, q) {
				continue
			}
			results = append(results, toDTO(o.DateKey, it))
			if limit > 0 && len(results) >= limit {
				return results, nil
			}
		}
	}
	return results, nil
}

// Trip returns the whole trip.
func (s *Service) Trip(ctx context.Context) (*trip.Data, error) {
	if err := s.check(); err != nil {
		return nil, err
	}
	return s.Store.Snapshot(), nil
}

func toDTOs(date string, items []*trip.ItineraryItem) []ItemDTO {
	out := make([]ItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toDTO(date, it))
	}
	return out
}

func toDTO(date string, it *trip.ItineraryItem) ItemDTO {
	dto := ItemDTO{
		ID:         it.ID,
		Date:       date,
		Type:       string(it.Type),
		TypeSymbol: it.Type.Glyph().Symbol,
		Name:       it.Name,
		Time:       it.Time.String(),
		Location:   it.Location,
		Note:       it.Details.Note,
	}
	if it.Location != "" {
		if u, err := maps.SearchURL(it.Location); err == nil {
			dto.MapURL = u
		}
	}
	return dto
}

func toShoppingDTO(i int, it *trip.ShoppingItem, code string) ShoppingDTO {
	price := "custom"
	if it.Price != nil {
		price = currency.Format(*it.Price, code)
	}
	return ShoppingDTO{Index: i, Name: it.Name, Location: it.Location, Price: price, Acquired: it.Acquired}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
