package ui

import "github.com/charmbracelet/lipgloss"

// TableStyles groups the lipgloss styles of the details comparison table.
type TableStyles struct {
	Title     lipgloss.Style
	Header    lipgloss.Style
	Name      lipgloss.Style
	Value     lipgloss.Style
	Success   lipgloss.Style
	Failure   lipgloss.Style
	Dim       lipgloss.Style
	Separator string
}

// GetTableStyles returns the table styles for the active theme. With colors
// disabled every style renders plain text.
func GetTableStyles() TableStyles {
	var accent, text, success, failure, dim lipgloss.TerminalColor
	if ColorsEnabled() {
		accent = lipgloss.Color("#FF8C00")
		text = lipgloss.Color("#E0E0E0")
		success = lipgloss.Color("#9ece6a")
		failure = lipgloss.Color("#FF4444")
		dim = lipgloss.Color("#666666")
	} else {
		accent, text, success, failure, dim = lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{}, lipgloss.NoColor{}
	}

	bold := ColorsEnabled()
	return TableStyles{
		Title:     lipgloss.NewStyle().Foreground(accent).Bold(bold),
		Header:    lipgloss.NewStyle().Foreground(accent).Underline(bold),
		Name:      lipgloss.NewStyle().Foreground(text),
		Value:     lipgloss.NewStyle().Foreground(text),
		Success:   lipgloss.NewStyle().Foreground(success),
		Failure:   lipgloss.NewStyle().Foreground(failure).Bold(bold),
		Dim:       lipgloss.NewStyle().Foreground(dim),
		Separator: "   ",
	}
}
