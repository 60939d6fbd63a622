// Package tui is the Bubble Tea front end of tabi: one tab per trip section,
// a date strip for the itinerary and a modal form for creating and editing
// items.
package tui

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tabi/pkg/app"
	"tableflip.dev/tabi/pkg/maps"
	"tableflip.dev/tabi/pkg/store"
	"tableflip.dev/tabi/pkg/trip"
	"tableflip.dev/tabi/pkg/tui/help"
	"tableflip.dev/tabi/pkg/tui/theme"
	"tableflip.dev/tabi/pkg/view"
	"tableflip.dev/tabi/pkg/weather"
)

type tab int

const (
	tabItinerary tab = iota
	tabLodging
	tabShopping
	tabExpenses
	tabCount
)

var tabNames = [tabCount]string{"Itinerary", "Lodging", "Shopping", "Expenses"}

func (t tab) String() string { return tabNames[t] }

// messages
type errMsg struct{ err error }
type watchStartedMsg struct{ events <-chan store.Event }
type storeChangedMsg struct{}
type watchClosedMsg struct{}

// Model contains UI state.
type Model struct {
	ctx     context.Context
	store   *app.Store
	weather weather.Provider
	theme   theme.Theme

	tab     tab
	dates   []view.DateOption
	dateIdx int
	cursor  int

	snapshot *trip.Data
	forecast weather.Info

	form       form
	help       *help.Model
	awaitingDD bool
	status     string
	events     <-chan store.Event

	termWidth  int
	termHeight int
}

// New creates a UI model backed by the trip store.
func New(ctx context.Context, s *app.Store, w weather.Provider) Model {
	if w == nil {
		w = weather.Default()
	}
	m := Model{
		ctx:     ctx,
		store:   s,
		weather: w,
		theme:   theme.Default(),
		form:    newForm(),
		status:  "tab switch · ←/→ day · n new · e edit · dd delete · x toggle · ? help · q quit",
	}
	m.refresh()
	return m
}

// Init starts watching the saved trip for outside changes.
func (m Model) Init() tea.Cmd {
	return m.startWatch()
}

func (m Model) startWatch() tea.Cmd {
	return func() tea.Msg {
		ch, err := m.store.Watch(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		if ch == nil {
			return nil
		}
		return watchStartedMsg{events: ch}
	}
}

func waitForEvent(ch <-chan store.Event) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return watchClosedMsg{}
		}
		return storeChangedMsg{}
	}
}

// refresh re-reads the store after an intent or a reload and keeps the
// selected date and the cursor in range.
func (m *Model) refresh() {
	selected := m.dateKey()
	m.snapshot = m.store.Snapshot()
	m.dates = view.DateOptions(m.snapshot)

	m.dateIdx = 0
	for i, o := range m.dates {
		if o.DateKey == selected {
			m.dateIdx = i
			break
		}
	}
	m.clampCursor()

	m.forecast = weather.Unknown()
	if key := m.dateKey(); key != "" {
		hint := ""
		if items := view.CurrentItinerary(m.snapshot, key); len(items) > 0 {
			hint = items[0].Location
		}
		m.forecast = view.WeatherFor(m.ctx, m.weather, key, hint)
	}
}

func (m *Model) dateKey() string {
	if m.dateIdx < 0 || m.dateIdx >= len(m.dates) {
		return ""
	}
	return m.dates[m.dateIdx].DateKey
}

func (m *Model) rows() int {
	switch m.tab {
	case tabItinerary:
		return len(m.snapshot.DailyItineraries[m.dateKey()])
	case tabLodging:
		return len(m.snapshot.Accommodations)
	case tabShopping:
		return len(m.snapshot.ShoppingList)
	case tabExpenses:
		return len(m.snapshot.Expenses)
	}
	return 0
}

func (m *Model) clampCursor() {
	if n := m.rows(); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// currentItem is the itinerary item under the cursor in display order.
func (m *Model) currentItem() *trip.ItineraryItem {
	if m.tab != tabItinerary {
		return nil
	}
	items := view.CurrentItinerary(m.snapshot, m.dateKey())
	if m.cursor < 0 || m.cursor >= len(items) {
		return nil
	}
	return items[m.cursor]
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		if m.help != nil {
			m.help.SetSize(m.helpSize())
		}
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case watchStartedMsg:
		m.events = msg.events
		return m, waitForEvent(m.events)
	case storeChangedMsg:
		m.store.Reload(m.ctx)
		m.refresh()
		m.status = "Reloaded " + m.store.Path()
		return m, waitForEvent(m.events)
	case watchClosedMsg:
		m.events = nil
	case tea.KeyPressMsg:
		if m.help != nil {
			switch msg.String() {
			case "?", "esc", "q":
				m.help = nil
				return m, nil
			}
			return m, m.help.Update(msg)
		}
		if m.form.open() {
			return m.updateForm(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if m.form.state == modalEdit {
			m.status = "Edit cancelled"
		} else {
			m.status = "Add cancelled"
		}
		m.form.close()
		return m, nil
	case "enter", "ctrl+s":
		m.saveForm()
		return m, nil
	}
	return m, m.form.update(msg)
}

// saveForm commits the draft. A rejected draft keeps the form open with the
// reason shown.
func (m *Model) saveForm() {
	var (
		it  *trip.ItineraryItem
		err error
	)
	switch m.form.state {
	case modalCreate:
		it, err = m.store.CreateItem(m.form.dateKey, m.form.draft())
	case modalEdit:
		it, err = m.store.UpdateItem(m.form.dateKey, m.form.id, m.form.patch())
	default:
		return
	}
	if err != nil {
		m.form.err = err.Error()
		return
	}

	verb := "Added"
	if m.form.state == modalEdit {
		verb = "Edited"
	}
	m.status = fmt.Sprintf("%s #%d %s", verb, it.ID, it.Name)
	m.form.close()
	m.refresh()
	for i, x := range view.CurrentItinerary(m.snapshot, m.dateKey()) {
		if x.ID == it.ID {
			m.cursor = i
		}
	}
}

func (m Model) updateNormal(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key != "d" {
		m.awaitingDD = false
	}

	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		m.selectTab((m.tab + 1) % tabCount)
	case "shift+tab":
		m.selectTab((m.tab + tabCount - 1) % tabCount)
	case "1", "2", "3", "4":
		n, _ := strconv.Atoi(key)
		m.selectTab(tab(n - 1))

	case "h", "left":
		m.selectDate(m.dateIdx - 1)
	case "l", "right":
		m.selectDate(m.dateIdx + 1)

	case "j", "down":
		m.cursor++
		m.clampCursor()
	case "k", "up":
		m.cursor--
		m.clampCursor()
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = m.rows() - 1
		m.clampCursor()

	case "n", "o":
		if m.tab != tabItinerary || m.dateKey() == "" {
			m.status = "Switch to a day of the itinerary to add items"
			break
		}
		return m, m.form.openCreate(m.dateKey())
	case "e", "i", "enter":
		if it := m.currentItem(); it != nil {
			return m, m.form.openEdit(m.dateKey(), it)
		}
		if m.tab == tabShopping {
			m.toggleShopping()
		}

	case "d":
		it := m.currentItem()
		if it == nil {
			break
		}
		if !m.awaitingDD {
			m.awaitingDD = true
			m.status = fmt.Sprintf("Press d again to delete #%d %s", it.ID, it.Name)
			break
		}
		m.awaitingDD = false
		if err := m.store.DeleteItem(m.dateKey(), it.ID); err != nil {
			m.status = "ERR: " + err.Error()
			break
		}
		m.status = fmt.Sprintf("Deleted #%d %s", it.ID, it.Name)
		m.refresh()

	case "x", "space", " ":
		if m.tab == tabShopping {
			m.toggleShopping()
		}

	case "m":
		m.showMap()

	case "?":
		m.help = help.New(m.helpSize())

	case "r":
		m.store.Reload(m.ctx)
		m.refresh()
		m.status = "Reloaded " + m.store.Path()
	}
	return m, nil
}

func (m *Model) helpSize() (int, int) {
	w, h := m.termWidth, m.termHeight-4
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

func (m *Model) selectTab(t tab) {
	if t < 0 || t >= tabCount || t == m.tab {
		return
	}
	m.tab = t
	m.cursor = 0
	m.status = t.String()
}

func (m *Model) selectDate(i int) {
	if m.tab != tabItinerary || i < 0 || i >= len(m.dates) {
		return
	}
	m.dateIdx = i
	m.cursor = 0
	m.refresh()
}

func (m *Model) toggleShopping() {
	it, err := m.store.ToggleAcquiredAt(m.cursor)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	mark := "Unchecked"
	if it.Acquired {
		mark = "Checked"
	}
	m.status = fmt.Sprintf("%s %s", mark, it.Name)
	m.refresh()
}

// showMap puts the search link of the place under the cursor in the status bar.
func (m *Model) showMap() {
	var place string
	switch m.tab {
	case tabItinerary:
		if it := m.currentItem(); it != nil {
			place = it.Location
		}
	case tabLodging:
		if m.cursor < len(m.snapshot.Accommodations) {
			place = m.snapshot.Accommodations[m.cursor].Address
		}
	case tabShopping:
		if m.cursor < len(m.snapshot.ShoppingList) {
			place = m.snapshot.ShoppingList[m.cursor].Location
		}
	}
	if place == "" {
		m.status = "No location here"
		return
	}
	u, err := maps.SearchURL(place)
	if err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.status = "Map: " + u
}

// Run launches the Bubble Tea program on the alternate screen.
func Run(ctx context.Context, s *app.Store, w weather.Provider) error {
	p := tea.NewProgram(New(ctx, s, w), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
