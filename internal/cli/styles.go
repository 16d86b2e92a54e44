package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mushin-app/create-mushin/internal/ui"
)

// styles holds the lipgloss styles for command output.
type styles struct {
	success lipgloss.Style
	errText lipgloss.Style
	muted   lipgloss.Style
	primary lipgloss.Style
	card    lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{
			success: plain,
			errText: plain,
			muted:   plain,
			primary: plain,
			card:    plain.Border(lipgloss.RoundedBorder()).Padding(0, 1),
		}
	}
	return styles{
		success: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: ui.ColorSuccess}),
		errText: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ui.ColorError}),
		muted:   lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ui.ColorMuted}),
		primary: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ui.ColorPrimary}),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ui.ColorBorder}).
			Padding(0, 1),
	}
}

func (s styles) symSuccess() string { return s.success.Render("✓") }
func (s styles) symError() string   { return s.errText.Render("✗") }
