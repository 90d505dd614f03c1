package form

import "github.com/charmbracelet/lipgloss"

const (
	labelWidth = 22
	// previewPadding is the border plus padding of the report frame.
	previewPadding = 4
)

// Theme centralizes Lip Gloss styles for the form.
type Theme struct {
	Field  FieldTheme
	Footer FooterTheme
	Report ReportTheme
}

// FieldTheme styles the form rows.
type FieldTheme struct {
	Label   lipgloss.Style
	Focused lipgloss.Style
	Option  lipgloss.Style
}

// FooterTheme groups styles used by the status line and key help.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Busy   lipgloss.Style
}

// ReportTheme styles the preview of the last generated report.
type ReportTheme struct {
	Frame lipgloss.Style
}

// DefaultTheme returns the built-in theme.
func DefaultTheme() Theme {
	label := lipgloss.NewStyle().
		Width(labelWidth).
		Foreground(lipgloss.Color("244"))

	return Theme{
		Field: FieldTheme{
			Label: label,
			Focused: label.
				Foreground(lipgloss.Color("212")).
				Bold(true),
			Option: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			Busy:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		Report: ReportTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
		},
	}
}
