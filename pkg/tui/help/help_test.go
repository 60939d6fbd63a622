package help

import (
	"strings"
	"testing"
)

func TestHelpRendersKeys(t *testing.T) {
	m := New(100, 120)
	view := m.View()
	for _, want := range []string{"Itinerary", "Shopping", "Form"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in help view:\n%s", want, view)
		}
	}
}

func TestHelpMinimumSize(t *testing.T) {
	m := New(0, 0)
	if m.width != 32 || m.height != 8 {
		t.Fatalf("expected minimum size, got %dx%d", m.width, m.height)
	}
}
