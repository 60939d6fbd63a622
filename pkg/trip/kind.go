package trip

import (
	"fmt"
	"strings"
)

// ItemType classifies an itinerary item.
type ItemType string

const (
	Flight     ItemType = "flight"
	Transport  ItemType = "transport"
	Attraction ItemType = "attraction"
	Meal       ItemType = "meal"
	Other      ItemType = "other"
)

// Glyph describes how an item type is shown on a terminal.
type Glyph struct {
	Symbol  string
	Noun    string
	Meaning string
	Aliases []string
}

var glyphs = map[ItemType]Glyph{
	Flight:     {Symbol: "✈", Noun: "flight", Meaning: "flight", Aliases: []string{"plane", "fly"}},
	Transport:  {Symbol: "⇢", Noun: "transport", Meaning: "train, bus or transfer", Aliases: []string{"train", "bus", "move"}},
	Attraction: {Symbol: "★", Noun: "attraction", Meaning: "sight or activity", Aliases: []string{"sight", "see", "visit"}},
	Meal:       {Symbol: "◍", Noun: "meal", Meaning: "meal or drinks", Aliases: []string{"food", "eat", "dinner", "lunch"}},
	Other:      {Symbol: "·", Noun: "other", Meaning: "anything else", Aliases: []string{}},
}

// ItemTypes lists every item type in display order.
func ItemTypes() []ItemType {
	return []ItemType{Flight, Transport, Attraction, Meal, Other}
}

// ParseItemType resolves a noun or alias. The empty string is Other.
func ParseItemType(v string) (ItemType, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return Other, nil
	}
	for _, t := range ItemTypes() {
		g := glyphs[t]
		if v == g.Noun {
			return t, nil
		}
		for _, a := range g.Aliases {
			if v == a {
				return t, nil
			}
		}
	}
	return "", fmt.Errorf("unknown item type %q", v)
}

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	_, ok := glyphs[t]
	return ok
}

func (t ItemType) Glyph() Glyph {
	if g, ok := glyphs[t]; ok {
		return g
	}
	return glyphs[Other]
}

func (t ItemType) String() string {
	return t.Glyph().Symbol
}

// UnmarshalText maps unknown values to Other so older records still load.
func (t *ItemType) UnmarshalText(b []byte) error {
	parsed, err := ParseItemType(string(b))
	if err != nil {
		parsed = Other
	}
	*t = parsed
	return nil
}
