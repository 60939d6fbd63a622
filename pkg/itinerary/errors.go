package itinerary

import "fmt"

// ValidationError reports a draft or patch field that cannot be applied.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("itinerary: invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an item id missing from the day's list.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("itinerary: item %d not found", e.ID)
}
