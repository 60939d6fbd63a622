package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tabi/pkg/itinerary"
	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/tui/theme"
)

// modalState is the create/edit form lifecycle. A closed form holds no draft.
type modalState int

const (
	modalClosed modalState = iota
	modalCreate
	modalEdit
)

const (
	fieldType = iota
	fieldName
	fieldTime
	fieldLocation
	fieldNote
	fieldCount
)

var fieldLabels = [fieldCount]string{"Type", "Name", "Time", "Location", "Note"}

type form struct {
	state   modalState
	dateKey string
	id      int

	types   []trip.ItemType
	typeIdx int

	// inputs[i] backs field i+1; the type field is a selector.
	inputs [fieldCount - 1]textinput.Model
	focus  int
	err    string
}

func newForm() form {
	f := form{types: trip.ItemTypes()}
	placeholders := [fieldCount - 1]string{"宮川朝市", "9:30", "岐阜県高山市", "請注意保暖"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		ti.Prompt = ""
		ti.Styles.Cursor.Color = lipgloss.Color("218")
		ti.Styles.Cursor.Shape = tea.CursorUnderline
		f.inputs[i] = ti
	}
	f.typeIdx = f.indexOf(trip.Other)
	return f
}

func (f *form) open() bool { return f.state != modalClosed }

func (f *form) openCreate(dateKey string) tea.Cmd {
	f.reset()
	f.state = modalCreate
	f.dateKey = dateKey
	return f.setFocus(fieldName)
}

func (f *form) openEdit(dateKey string, it *trip.ItineraryItem) tea.Cmd {
	f.reset()
	f.state = modalEdit
	f.dateKey = dateKey
	f.id = it.ID
	f.typeIdx = f.indexOf(it.Type)
	f.inputs[fieldName-1].SetValue(it.Name)
	f.inputs[fieldTime-1].SetValue(it.Time.String())
	f.inputs[fieldLocation-1].SetValue(it.Location)
	f.inputs[fieldNote-1].SetValue(it.Details.Note)
	return f.setFocus(fieldName)
}

// close discards the draft.
func (f *form) close() {
	f.reset()
}

func (f *form) reset() {
	f.state = modalClosed
	f.dateKey = ""
	f.id = 0
	f.err = ""
	f.typeIdx = f.indexOf(trip.Other)
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.focus = fieldType
}

func (f *form) indexOf(t trip.ItemType) int {
	for i, c := range f.types {
		if c == t {
			return i
		}
	}
	return 0
}

func (f *form) setFocus(field int) tea.Cmd {
	f.focus = (field + fieldCount) % fieldCount
	var cmd tea.Cmd
	for i := range f.inputs {
		if i+1 == f.focus {
			cmd = f.inputs[i].Focus()
			f.inputs[i].CursorEnd()
		} else {
			f.inputs[i].Blur()
		}
	}
	return cmd
}

func (f *form) itemType() trip.ItemType {
	return f.types[f.typeIdx]
}

func (f *form) value(field int) string {
	return strings.TrimSpace(f.inputs[field-1].Value())
}

func (f *form) draft() itinerary.Draft {
	return itinerary.Draft{
		Type:     f.itemType(),
		Name:     f.value(fieldName),
		Time:     f.value(fieldTime),
		Location: f.value(fieldLocation),
		Note:     f.value(fieldNote),
	}
}

func (f *form) patch() itinerary.Patch {
	d := f.draft()
	return itinerary.Patch{
		Type:     &d.Type,
		Name:     &d.Name,
		Time:     &d.Time,
		Location: &d.Location,
		Note:     &d.Note,
	}
}

// update routes a key to the focused field. Save and cancel are handled by
// the model because they reach the store.
func (f *form) update(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		return f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return f.setFocus(f.focus - 1)
	}

	if f.focus == fieldType {
		switch msg.String() {
		case "left", "h":
			f.typeIdx = (f.typeIdx + len(f.types) - 1) % len(f.types)
		case "right", "l", "space", " ":
			f.typeIdx = (f.typeIdx + 1) % len(f.types)
		}
		return nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus-1], cmd = f.inputs[f.focus-1].Update(msg)
	return cmd
}

func (f *form) view(th theme.Theme, width int) string {
	title := "New item"
	if f.state == modalEdit {
		title = fmt.Sprintf("Edit item #%d", f.id)
	}

	var b strings.Builder
	b.WriteString(th.Modal.Title.Render(fmt.Sprintf("%s · %s", title, f.dateKey)))
	b.WriteString("\n\n")
	for field := 0; field < fieldCount; field++ {
		label := th.Modal.Label
		if field == f.focus {
			label = th.Modal.Focus
		}
		b.WriteString(label.Render(fieldLabels[field]))
		if field == fieldType {
			g := f.itemType().Glyph()
			fmt.Fprintf(&b, "‹ %s %s ›", g.Symbol, g.Noun)
		} else {
			b.WriteString(f.inputs[field-1].View())
		}
		b.WriteString("\n")
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(th.Modal.Error.Render(f.err))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(th.Footer.Help.Render("tab next · ←/→ type · enter save · esc cancel"))

	frame := th.Modal.Frame
	if width > 8 {
		frame = frame.Width(min(width-4, 64))
	}
	return frame.Render(b.String())
}
