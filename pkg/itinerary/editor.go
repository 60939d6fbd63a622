// Package itinerary applies create, update and delete operations to a single
// day's list of itinerary items.
package itinerary

import (
	"fmt"
	"strings"

	"tableflip.dev/tabi/pkg/trip"
)

// Draft is the field set of an item that has not been saved yet.
type Draft struct {
	Type     trip.ItemType
	Name     string
	Time     string
	Location string
	Note     string
}

// Patch lists the fields to change on an existing item. Nil fields are kept.
type Patch struct {
	Type     *trip.ItemType
	Name     *string
	Time     *string
	Location *string
	Note     *string
}

// Create validates the draft, assigns the next id of the day and appends the
// new item. The id is one past the highest id still in the day.
func Create(day *trip.Day, d Draft) (*trip.ItineraryItem, error) {
	typ, err := checkType(d.Type)
	if err != nil {
		return nil, err
	}
	name, err := checkName(d.Name)
	if err != nil {
		return nil, err
	}
	clock, err := checkTime(d.Time)
	if err != nil {
		return nil, err
	}

	it := &trip.ItineraryItem{
		ID:       NextID(*day),
		Type:     typ,
		Name:     name,
		Time:     clock,
		Location: strings.TrimSpace(d.Location),
		Details:  trip.Details{Note: strings.TrimSpace(d.Note)},
	}
	*day = append(*day, it)
	return it, nil
}

// Update applies the patch in place. Every field is checked before any is
// written so a rejected patch leaves the item untouched.
func Update(day *trip.Day, id int, p Patch) (*trip.ItineraryItem, error) {
	it, _ := day.Find(id)
	if it == nil {
		return nil, &NotFoundError{ID: id}
	}

	next := *it
	if p.Type != nil {
		typ, err := checkType(*p.Type)
		if err != nil {
			return nil, err
		}
		next.Type = typ
	}
	if p.Name != nil {
		name, err := checkName(*p.Name)
		if err != nil {
			return nil, err
		}
		next.Name = name
	}
	if p.Time != nil {
		clock, err := checkTime(*p.Time)
		if err != nil {
			return nil, err
		}
		next.Time = clock
	}
	if p.Location != nil {
		next.Location = strings.TrimSpace(*p.Location)
	}
	if p.Note != nil {
		next.Details.Note = strings.TrimSpace(*p.Note)
	}

	next.ID = it.ID
	*it = next
	return it, nil
}

// Delete removes the item with the given id. Deleting a missing id is an
// error, so a second delete of the same id fails.
func Delete(day *trip.Day, id int) error {
	_, idx := day.Find(id)
	if idx < 0 {
		return &NotFoundError{ID: id}
	}
	d := *day
	copy(d[idx:], d[idx+1:])
	d[len(d)-1] = nil
	*day = d[:len(d)-1]
	return nil
}

// NextID is one past the largest id in the day, or 1 for an empty day.
func NextID(day trip.Day) int {
	highest := 0
	for _, it := range day {
		if it != nil && it.ID > highest {
			highest = it.ID
		}
	}
	return highest + 1
}

// CheckIDs reports a day whose items are missing or share an id.
func CheckIDs(day trip.Day) error {
	seen := make(map[int]bool, len(day))
	for _, it := range day {
		if it == nil {
			return &ValidationError{Field: "id", Reason: "empty item"}
		}
		if it.ID < 1 {
			return &ValidationError{Field: "id", Reason: fmt.Sprintf("id %d must be positive", it.ID)}
		}
		if seen[it.ID] {
			return &ValidationError{Field: "id", Reason: fmt.Sprintf("id %d used twice", it.ID)}
		}
		seen[it.ID] = true
	}
	return nil
}

func checkType(t trip.ItemType) (trip.ItemType, error) {
	if t == "" {
		return trip.Other, nil
	}
	if !t.Valid() {
		return "", &ValidationError{Field: "type", Reason: "unknown item type " + string(t)}
	}
	return t, nil
}

func checkName(v string) (string, error) {
	name := strings.TrimSpace(v)
	if name == "" {
		return "", &ValidationError{Field: "name", Reason: "required"}
	}
	return name, nil
}

func checkTime(v string) (trip.Clock, error) {
	c, err := trip.ParseClock(v)
	if err != nil {
		return 0, &ValidationError{Field: "time", Reason: err.Error()}
	}
	return c, nil
}
