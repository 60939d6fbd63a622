// Package prompt walks the user through itinerary drafts on the terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/tabi/pkg/itinerary"
	"tableflip.dev/tabi/pkg/trip"
)

// Prompter asks for draft fields on In and echoes to Out.
type Prompter struct {
	In  io.ReadCloser
	Out io.WriteCloser
}

// New builds a Prompter over plain streams, usually a command's stdin and
// stdout. promptui closes what it is given, so both are wrapped.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{In: io.NopCloser(in), Out: NopCloser(out)}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// NopCloser returns a WriteCloser whose Close does nothing.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{Writer: w}
}

// Draft asks for every field of a new item. Values already set on seed are
// offered as defaults.
func (p *Prompter) Draft(seed itinerary.Draft) (itinerary.Draft, error) {
	typ, err := p.ItemType(seed.Type)
	if err != nil {
		return seed, err
	}
	seed.Type = typ

	if seed.Name, err = p.String("Name", seed.Name, required); err != nil {
		return seed, err
	}
	if seed.Time, err = p.String("Time (H:MM)", seed.Time, validClock); err != nil {
		return seed, err
	}
	if seed.Location, err = p.String("Location", seed.Location, nil); err != nil {
		return seed, err
	}
	if seed.Note, err = p.String("Note", seed.Note, nil); err != nil {
		return seed, err
	}
	return seed, nil
}

// Patch asks for new values of an existing item. Answers equal to the current
// value leave the field out of the patch.
func (p *Prompter) Patch(it *trip.ItineraryItem) (itinerary.Patch, error) {
	var patch itinerary.Patch
	if it == nil {
		return patch, errors.New("prompt: no item to edit")
	}

	typ, err := p.ItemType(it.Type)
	if err != nil {
		return patch, err
	}
	if typ != it.Type {
		patch.Type = &typ
	}

	fields := []struct {
		label    string
		current  string
		validate promptui.ValidateFunc
		dst      **string
	}{
		{"Name", it.Name, required, &patch.Name},
		{"Time (H:MM)", it.Time.String(), validClock, &patch.Time},
		{"Location", it.Location, nil, &patch.Location},
		{"Note", it.Details.Note, nil, &patch.Note},
	}
	for _, f := range fields {
		v, err := p.String(f.label, f.current, f.validate)
		if err != nil {
			return patch, err
		}
		if v != f.current {
			v := v
			*f.dst = &v
		}
	}
	return patch, nil
}

// ItemType offers the item types with their glyphs, starting on current.
func (p *Prompter) ItemType(current trip.ItemType) (trip.ItemType, error) {
	types := trip.ItemTypes()
	pos := 0
	for i, t := range types {
		if t == current {
			pos = i
		}
	}

	items := make([]trip.Glyph, len(types))
	for i, t := range types {
		items[i] = t.Glyph()
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Symbol }} {{ .Noun | bold }} {{ .Meaning | green }}",
		Inactive: "   {{ .Symbol }} {{ .Noun }} {{ .Meaning | cyan }}",
		Selected: "{{ .Symbol }} {{ .Noun | bold }}",
	}

	searcher := func(input string, index int) bool {
		g := items[index]
		input = strings.ToLower(strings.TrimSpace(input))
		if strings.Contains(g.Noun, input) {
			return true
		}
		for _, a := range g.Aliases {
			if strings.Contains(a, input) {
				return true
			}
		}
		return false
	}

	sel := promptui.Select{
		HideHelp:  true,
		Label:     "Type",
		Items:     items,
		Templates: templates,
		Size:      len(items),
		CursorPos: pos,
		Searcher:  searcher,
		Stdin:     p.In,
		Stdout:    p.Out,
	}
	i, _, err := sel.Run()
	if err != nil {
		return current, fmt.Errorf("prompt: %w", err)
	}
	return types[i], nil
}

// String asks for one value. An empty answer keeps def.
func (p *Prompter) String(label, def string, validate promptui.ValidateFunc) (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }}: ",
		Valid:   "{{ . | green }}: ",
		Invalid: "{{ . | red }}: ",
		Success: "{{ . | bold }}: ",
	}

	check := validate
	if check != nil {
		check = func(input string) error {
			if input == "" && def != "" {
				return nil
			}
			return validate(input)
		}
	}

	pr := promptui.Prompt{
		Label:     label,
		Default:   def,
		AllowEdit: true,
		Templates: templates,
		Validate:  check,
		Stdin:     p.In,
		Stdout:    p.Out,
	}
	result, err := pr.Run()
	if err != nil {
		return def, fmt.Errorf("prompt: %w", err)
	}
	result = strings.TrimSpace(result)
	if result == "" {
		result = def
	}
	return result, nil
}

func required(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("required")
	}
	return nil
}

func validClock(input string) error {
	_, err := trip.ParseClock(input)
	return err
}
