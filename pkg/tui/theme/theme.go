package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the picker UI.
type Theme struct {
	Strip  StripTheme
	Picker PickerTheme
	Editor EditorTheme
}

// StripTheme styles the one-line horizontal document strip.
type StripTheme struct {
	Item      lipgloss.Style
	Current   lipgloss.Style
	Modified  lipgloss.Style
	Label     lipgloss.Style
	Indicator lipgloss.Style
}

// PickerTheme styles the floating picker panel.
type PickerTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Label   lipgloss.Style
	Name    lipgloss.Style
	Current lipgloss.Style
	Footer  lipgloss.Style
	NoLabel lipgloss.Style
}

// EditorTheme styles the demo editor surface behind the picker.
type EditorTheme struct {
	Body   lipgloss.Style
	Status lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("212")).
		Bold(true)

	return Theme{
		Strip: StripTheme{
			Item:      lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Current:   lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Reverse(true),
			Modified:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Label:     labelStyle,
			Indicator: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Bold(true),
		},
		Picker: PickerTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
			Label:   labelStyle,
			Name:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Current: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true),
			Footer:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			NoLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
		Editor: EditorTheme{
			Body:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		},
	}
}
