package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorWood      = lipgloss.Color("#CBAE89")
	colorCharcoal  = lipgloss.Color("#3C4043")
	colorHighlight = lipgloss.Color("#D3A28C")
	colorMuted     = lipgloss.Color("#9E9E9E")
	colorDanger    = lipgloss.Color("#FF3B30")
	colorSuccess   = lipgloss.Color("#34C759")
)

// Styles собирает стили оформления всех экранов.
type Styles struct {
	App       lipgloss.Style
	Header    lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	ListTitle lipgloss.Style
	Box       lipgloss.Style
	Title     lipgloss.Style
	Price     lipgloss.Style
	Subtle    lipgloss.Style
	Selected  lipgloss.Style
	Error     lipgloss.Style
	Success   lipgloss.Style
	HelpBar   lipgloss.Style
	Confirm   lipgloss.Style
}

// DefaultStyles возвращает стили в палитре магазина.
func DefaultStyles() Styles {
	return Styles{
		App:       lipgloss.NewStyle().Padding(1, 2),
		Header:    lipgloss.NewStyle().Bold(true).Foreground(colorWood).MarginBottom(1),
		Tab:       lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().Foreground(colorHighlight).Bold(true).Padding(0, 1),
		ListTitle: lipgloss.NewStyle().Bold(true).Foreground(colorCharcoal),
		Box:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorWood).Padding(1, 2),
		Title:     lipgloss.NewStyle().Bold(true),
		Price:     lipgloss.NewStyle().Bold(true).Foreground(colorWood),
		Subtle:    lipgloss.NewStyle().Foreground(colorMuted),
		Selected:  lipgloss.NewStyle().Foreground(colorHighlight).Bold(true),
		Error:     lipgloss.NewStyle().Foreground(colorDanger),
		Success:   lipgloss.NewStyle().Foreground(colorSuccess),
		HelpBar:   lipgloss.NewStyle().Foreground(colorMuted).MarginTop(1),
		Confirm:   lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
	}
}
