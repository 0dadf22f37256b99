package theme

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles used by terminal output.
type Styles struct {
	Title   lipgloss.Style
	Heading lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Box     lipgloss.Style
}

// NewStyles builds styles from a resolved token set.
func NewStyles(tokens map[string]string) Styles {
	color := func(key string) lipgloss.Color {
		return lipgloss.Color(tokens[key])
	}
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(color(TokenPrimary)),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(color(TokenForeground)),
		Label:   lipgloss.NewStyle().Foreground(color(TokenMuted)),
		Value:   lipgloss.NewStyle().Foreground(color(TokenForeground)),
		Muted:   lipgloss.NewStyle().Faint(true).Foreground(color(TokenMuted)),
		Error:   lipgloss.NewStyle().Foreground(color(TokenDestructive)),
		Success: lipgloss.NewStyle().Bold(true).Foreground(color(TokenSuccess)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(color(TokenBorder)).
			Padding(0, 1),
	}
}
