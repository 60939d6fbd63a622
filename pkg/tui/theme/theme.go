package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Tabs   TabsTheme
	Footer FooterTheme
	Panel  PanelTheme
	Modal  ModalTheme
}

// TabsTheme styles the tab strip and the date selector.
type TabsTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
	Date     lipgloss.Style
	Selected lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help    lipgloss.Style
	Status  lipgloss.Style
	Unsaved lipgloss.Style
}

// PanelTheme styles framed panels and their rows.
type PanelTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Body    lipgloss.Style
	Cursor  lipgloss.Style
	Muted   lipgloss.Style
	Weather lipgloss.Style
}

// ModalTheme styles the centered create/edit form.
type ModalTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Label lipgloss.Style
	Focus lipgloss.Style
	Error lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	active := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true).
		Padding(0, 1)
	inactive := lipgloss.NewStyle().
		Foreground(lipgloss.Color("244")).
		Padding(0, 1)

	return Theme{
		Tabs: TabsTheme{
			Active:   active.Underline(true),
			Inactive: inactive,
			Date:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
			Selected: lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Reverse(true).Padding(0, 1),
		},
		Footer: FooterTheme{
			Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Unsaved: lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:   lipgloss.NewStyle().Bold(true),
			Body:    lipgloss.NewStyle(),
			Cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
			Weather: lipgloss.NewStyle().Foreground(lipgloss.Color("111")),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(1, 2),
			Title: lipgloss.NewStyle().Bold(true),
			Label: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(10),
			Focus: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Width(10),
			Error: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}
