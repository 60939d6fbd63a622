package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"tableflip.dev/tabi/pkg/itinerary"
	"tableflip.dev/tabi/pkg/store"
	"tableflip.dev/tabi/pkg/trip"
)

// Store owns the canonical trip. UIs and CLIs share it so every intent goes
// through the same validation and is persisted the same way.
type Store struct {
	mu          sync.Mutex
	persistence store.Persistence
	data        *trip.Data
	lastPersist error
}

var ErrNoPersistence = errors.New("app: no persistence configured")

// New loads the trip once from p.
func New(ctx context.Context, p store.Persistence) (*Store, error) {
	if p == nil {
		return nil, ErrNoPersistence
	}
	return &Store{persistence: p, data: p.Load(ctx)}, nil
}

// Itinerary returns a copy of the day's items in list order. A missing day
// yields an empty list and is not created.
func (s *Store) Itinerary(dateKey string) []*trip.ItineraryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.DailyItineraries[dateKey].Clone()
}

// HasDay reports whether dateKey is one of the trip days.
func (s *Store) HasDay(dateKey string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.data.DailyItineraries[dateKey]
	return ok
}

// Accommodations returns the lodging list held by the store.
func (s *Store) Accommodations() []*trip.Accommodation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Accommodations
}

// ShoppingList returns the checklist held by the store. The items are the
// ones ToggleAcquired accepts.
func (s *Store) ShoppingList() []*trip.ShoppingItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.ShoppingList
}

// Expenses returns the ledger in entry order.
func (s *Store) Expenses() []*trip.ExpenseItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Expenses
}

func (s *Store) ExchangeRate() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.ExchangeRate
}

// SetExchangeRate replaces the conversion rate. The rate must be positive.
func (s *Store) SetExchangeRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return &itinerary.ValidationError{Field: "exchange rate", Reason: "must be positive"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.ExchangeRate = rate
	s.persistLocked()
	return nil
}

// ToggleAcquired flips the acquired flag of item, which must be one of the
// items returned by ShoppingList. Unknown items are ignored and false is
// returned.
func (s *Store) ToggleAcquired(item *trip.ShoppingItem) bool {
	if item == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.data.ShoppingList {
		if it == item {
			it.Acquired = !it.Acquired
			s.persistLocked()
			return true
		}
	}
	return false
}

// ToggleAcquiredAt flips the item at index i of the checklist.
func (s *Store) ToggleAcquiredAt(i int) (*trip.ShoppingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.data.ShoppingList) {
		return nil, fmt.Errorf("app: shopping item %d out of range [0,%d)", i, len(s.data.ShoppingList))
	}
	it := s.data.ShoppingList[i]
	it.Acquired = !it.Acquired
	s.persistLocked()
	cp := *it
	return &cp, nil
}

// CreateItem adds a new item to the day, creating the day if it is a valid
// date-key that is not yet part of the trip.
func (s *Store) CreateItem(dateKey string, d itinerary.Draft) (*trip.ItineraryItem, error) {
	if err := checkDateKey(dateKey); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	day := s.data.DailyItineraries[dateKey]
	it, err := itinerary.Create(&day, d)
	if err != nil {
		return nil, err
	}
	s.data.DailyItineraries[dateKey] = day
	s.persistLocked()
	cp := *it
	return &cp, nil
}

// UpdateItem applies p to the item id of the day.
func (s *Store) UpdateItem(dateKey string, id int, p itinerary.Patch) (*trip.ItineraryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.data.DailyItineraries[dateKey]
	if !ok {
		return nil, &itinerary.NotFoundError{ID: id}
	}
	it, err := itinerary.Update(&day, id, p)
	if err != nil {
		return nil, err
	}
	s.persistLocked()
	cp := *it
	return &cp, nil
}

// DeleteItem removes the item id from the day.
func (s *Store) DeleteItem(dateKey string, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	day, ok := s.data.DailyItineraries[dateKey]
	if !ok {
		return &itinerary.NotFoundError{ID: id}
	}
	if err := itinerary.Delete(&day, id); err != nil {
		return err
	}
	s.data.DailyItineraries[dateKey] = day
	s.persistLocked()
	return nil
}

// AddDay adds an empty day. Adding an existing day is a no-op.
func (s *Store) AddDay(dateKey string) error {
	if err := checkDateKey(dateKey); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.DailyItineraries[dateKey]; ok {
		return nil
	}
	s.data.DailyItineraries[dateKey] = trip.Day{}
	s.persistLocked()
	return nil
}

// AddExpense appends a ledger line.
func (s *Store) AddExpense(e trip.ExpenseItem) (*trip.ExpenseItem, error) {
	e.Name = strings.TrimSpace(e.Name)
	e.Category = strings.TrimSpace(e.Category)
	if e.Name == "" {
		return nil, &itinerary.ValidationError{Field: "name", Reason: "required"}
	}
	if err := checkDateKey(e.Date); err != nil {
		return nil, err
	}
	if !e.Amount.IsPositive() {
		return nil, &itinerary.ValidationError{Field: "amount", Reason: "must be positive"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	it := &e
	s.data.Expenses = append(s.data.Expenses, it)
	s.persistLocked()
	cp := *it
	return &cp, nil
}

// AddShoppingItem appends a checklist entry. A nil price is a custom price.
func (s *Store) AddShoppingItem(item trip.ShoppingItem) (*trip.ShoppingItem, error) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Name == "" {
		return nil, &itinerary.ValidationError{Field: "name", Reason: "required"}
	}
	if item.Price != nil && !item.Price.IsPositive() {
		return nil, &itinerary.ValidationError{Field: "price", Reason: "must be positive"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	it := &item
	s.data.ShoppingList = append(s.data.ShoppingList, it)
	s.persistLocked()
	return it, nil
}

// AddAccommodation appends a lodging entry. Date is free text.
func (s *Store) AddAccommodation(a trip.Accommodation) (*trip.Accommodation, error) {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return nil, &itinerary.ValidationError{Field: "name", Reason: "required"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	it := &a
	s.data.Accommodations = append(s.data.Accommodations, it)
	s.persistLocked()
	cp := *it
	return &cp, nil
}

// Snapshot returns a deep copy of the trip for view computation.
func (s *Store) Snapshot() *trip.Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Reload replaces the in-memory trip with what persistence holds now.
func (s *Store) Reload(ctx context.Context) {
	d := s.persistence.Load(ctx)
	s.mu.Lock()
	s.data = d
	s.lastPersist = nil
	s.mu.Unlock()
}

// Replace swaps in a whole trip, as an import does, and persists it.
func (s *Store) Replace(d *trip.Data) error {
	if d == nil {
		return errors.New("app: nothing to import")
	}
	d = d.Clone()
	d.Normalize()
	for key, day := range d.DailyItineraries {
		if err := checkDateKey(key); err != nil {
			return err
		}
		if err := itinerary.CheckIDs(day); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	if !d.ExchangeRate.IsPositive() {
		return &itinerary.ValidationError{Field: "exchange rate", Reason: "must be positive"}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = d
	s.persistLocked()
	return nil
}

// LastPersist is the error of the most recent save, or nil when the trip on
// disk matches memory.
func (s *Store) LastPersist() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastPersist
}

// Path is where the trip is persisted.
func (s *Store) Path() string {
	return s.persistence.Path()
}

// Watch subscribes to persistence change events.
func (s *Store) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.persistence.Watch(ctx)
}

// persistLocked saves the trip. The in-memory change stands either way.
func (s *Store) persistLocked() {
	s.lastPersist = s.persistence.Save(s.data)
}

func checkDateKey(key string) error {
	if _, err := time.Parse(trip.LayoutDateKey, key); err != nil {
		return &itinerary.ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not YYYY-MM-DD", key)}
	}
	return nil
}
