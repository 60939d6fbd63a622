package store

import (
	"bytes"
	"encoding/json"
	"fmt"

	"tableflip.dev/tabi/pkg/itinerary"
	"tableflip.dev/tabi/pkg/trip"
)

// CurrentSchema is the schema version written with every record.
// Version 0 is the bare trip object without an envelope.
const CurrentSchema = 1

type record struct {
	Schema int        `json:"schema"`
	Trip   *trip.Data `json:"trip"`
}

func encodeRecord(d *trip.Data) ([]byte, error) {
	return json.MarshalIndent(record{Schema: CurrentSchema, Trip: d}, "", "  ")
}

// decodeRecord accepts the current envelope and the bare schema 0 layout.
func decodeRecord(b []byte) (*trip.Data, int, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, 0, fmt.Errorf("empty record")
	}

	var probe struct {
		Schema *int            `json:"schema"`
		Trip   json.RawMessage `json:"trip"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil, 0, err
	}

	if probe.Schema == nil && len(probe.Trip) == 0 {
		d := &trip.Data{}
		if err := json.Unmarshal(b, d); err != nil {
			return nil, 0, err
		}
		d.Normalize()
		if err := checkDays(d); err != nil {
			return nil, 0, err
		}
		return d, 0, nil
	}

	schema := 0
	if probe.Schema != nil {
		schema = *probe.Schema
	}
	if schema > CurrentSchema {
		return nil, schema, fmt.Errorf("record schema %d is newer than supported %d", schema, CurrentSchema)
	}
	if len(probe.Trip) == 0 || string(probe.Trip) == "null" {
		return nil, schema, fmt.Errorf("record has no trip")
	}
	d := &trip.Data{}
	if err := json.Unmarshal(probe.Trip, d); err != nil {
		return nil, schema, err
	}
	d.Normalize()
	if err := checkDays(d); err != nil {
		return nil, schema, err
	}
	return d, schema, nil
}

// checkDays rejects a record where two items of one day share an id.
func checkDays(d *trip.Data) error {
	for key, day := range d.DailyItineraries {
		if err := itinerary.CheckIDs(day); err != nil {
			return fmt.Errorf("day %s: %w", key, err)
		}
	}
	return nil
}
