package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/tabi/pkg/currency"
	"tableflip.dev/tabi/pkg/view"
)

const defaultWidth = 80

// View renders the tab strip, the active tab and the status bar. An open
// form replaces the tab body.
func (m Model) View() string {
	th := m.theme
	width := m.termWidth
	if width <= 0 {
		width = defaultWidth
	}

	title := m.snapshot.Title
	if title == "" {
		title = "tabi"
	}
	sections := []string{th.Panel.Title.Render(title), m.viewTabs()}

	if m.help != nil {
		sections = append(sections, m.help.View())
	} else if m.form.open() {
		sections = append(sections, m.form.view(th, width))
	} else {
		var lines []string
		switch m.tab {
		case tabItinerary:
			sections = append(sections, m.viewDates(width), m.viewWeather())
			lines = m.itineraryLines()
		case tabLodging:
			lines = m.lodgingLines()
		case tabShopping:
			lines = m.shoppingLines()
		case tabExpenses:
			lines = m.expenseLines()
		}
		for i, l := range lines {
			lines[i] = truncate.StringWithTail(l, uint(max(width-6, 10)), "…")
		}
		if len(lines) == 0 {
			lines = []string{th.Panel.Muted.Render("(none)")}
		}
		sections = append(sections, th.Panel.Frame.Render(strings.Join(lines, "\n")))
	}

	sections = append(sections, m.viewStatus())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewTabs() string {
	parts := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		label := fmt.Sprintf("%d %s", t+1, t)
		if t == m.tab {
			parts = append(parts, m.theme.Tabs.Active.Render(label))
		} else {
			parts = append(parts, m.theme.Tabs.Inactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// viewDates keeps the selected day visible when the strip is wider than
// the terminal.
func (m Model) viewDates(width int) string {
	if len(m.dates) == 0 {
		return m.theme.Panel.Muted.Render("No days planned")
	}
	parts := make([]string, 0, len(m.dates))
	for i, o := range m.dates {
		label := fmt.Sprintf("%s %s", o.Display, o.DayOfWeek)
		if i == m.dateIdx {
			parts = append(parts, m.theme.Tabs.Selected.Render(label))
		} else {
			parts = append(parts, m.theme.Tabs.Date.Render(label))
		}
	}
	start := 0
	for start < m.dateIdx && lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, parts[start:m.dateIdx+1]...)) > width {
		start++
	}
	return truncate.String(lipgloss.JoinHorizontal(lipgloss.Top, parts[start:]...), uint(width))
}

func (m Model) viewWeather() string {
	w := m.forecast
	line := fmt.Sprintf("%s %s  %s°/%s°", w.Location, w.Condition, w.TempMax, w.TempMin)
	if w.Note != "" {
		line += "  " + w.Note
	}
	return m.theme.Panel.Weather.Render(line)
}

func (m Model) marker(i int) string {
	if i == m.cursor {
		return m.theme.Panel.Cursor.Render("→ ")
	}
	return "  "
}

func (m Model) itineraryLines() []string {
	items := view.CurrentItinerary(m.snapshot, m.dateKey())
	lines := make([]string, 0, len(items)*2)
	for i, it := range items {
		lines = append(lines, fmt.Sprintf("%s%5s  %s %s", m.marker(i), it.Time, it.Type, it.Name))
		detail := it.Location
		if it.Details.Note != "" {
			if detail != "" {
				detail += " · "
			}
			detail += it.Details.Note
		}
		if detail != "" {
			lines = append(lines, "         "+m.theme.Panel.Muted.Render(detail))
		}
	}
	return lines
}

func (m Model) lodgingLines() []string {
	lines := make([]string, 0, len(m.snapshot.Accommodations)*2)
	for i, a := range m.snapshot.Accommodations {
		lines = append(lines, fmt.Sprintf("%s%-10s %s", m.marker(i), a.Date, a.Name))
		detail := a.Address
		if a.Tel != "" {
			detail += " · " + a.Tel
		}
		lines = append(lines, "             "+m.theme.Panel.Muted.Render(detail))
	}
	return lines
}

func (m Model) shoppingLines() []string {
	d := m.snapshot
	lines := make([]string, 0, len(d.ShoppingList)+2)
	for i, it := range d.ShoppingList {
		box := "[ ]"
		if it.Acquired {
			box = "[x]"
		}
		price := "自訂"
		if it.Price != nil {
			price = currency.Format(*it.Price, d.SourceCurrency)
		}
		line := fmt.Sprintf("%s%s %s  %s", m.marker(i), box, it.Name, price)
		if it.Location != "" {
			line += "  " + m.theme.Panel.Muted.Render(it.Location)
		}
		lines = append(lines, line)
	}
	if len(d.ShoppingList) > 0 {
		p := view.ShoppingProgress(d)
		lines = append(lines, "", m.theme.Panel.Muted.Render(fmt.Sprintf("%d/%d acquired", p.Acquired, p.Total)))
	}
	return lines
}

func (m Model) expenseLines() []string {
	d := m.snapshot
	list := view.SortedExpenses(d)
	lines := make([]string, 0, len(list)+3)
	for i, e := range list {
		lines = append(lines, fmt.Sprintf("%s%s  %-4s %s  %s  %s",
			m.marker(i), e.Date, e.Category, e.Name, currency.Format(e.Amount, d.SourceCurrency), e.Method))
	}
	totals := view.TotalExpense(d)
	lines = append(lines, "",
		m.theme.Panel.Title.Render(fmt.Sprintf("Total %s  ≈ %s",
			currency.Format(totals.Source, d.SourceCurrency),
			currency.Format(totals.Converted, d.TargetCurrency))),
		m.theme.Panel.Muted.Render(fmt.Sprintf("1 %s = %s %s", d.SourceCurrency, d.ExchangeRate, d.TargetCurrency)),
	)
	return lines
}

func (m Model) viewStatus() string {
	status := m.theme.Footer.Status.Render(m.status)
	if err := m.store.LastPersist(); err != nil {
		status = m.theme.Footer.Unsaved.Render("● unsaved") + " " + status
	}
	return status
}
