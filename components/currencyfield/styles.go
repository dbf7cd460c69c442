package currencyfield

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles the widget renders with. Zero-value
// styles render unstyled text; DefaultStyles is the stock palette.
type Styles struct {
	Label    lipgloss.Style
	Box      lipgloss.Style
	BoxFocus lipgloss.Style
	Invalid  lipgloss.Style
	Currency lipgloss.Style
	Caret    lipgloss.Style
	Error    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the stock palette: a rounded box, an accent border
// on focus, and red feedback for invalid state.
func DefaultStyles() Styles {
	return Styles{
		Label: lipgloss.NewStyle().Bold(true),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		BoxFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1),
		Invalid: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("160")).
			Padding(0, 1),
		Currency: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Caret:    lipgloss.NewStyle().Reverse(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
