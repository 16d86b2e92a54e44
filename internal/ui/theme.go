// Package ui provides the terminal prompts and progress display used by
// create-mushin. Every component has an interactive implementation built on
// huh and bubbletea and a headless fallback for non-TTY environments.
package ui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Brand colors (dark background variants).
const (
	ColorPrimary   = "#DA7756"
	ColorSecondary = "#7C3AED"
	ColorSuccess   = "#10B981"
	ColorError     = "#EF4444"
	ColorText      = "#E5E7EB"
	ColorMuted     = "#6B7280"
	ColorBorder    = "#4B5563"
)

// Palette holds the hex colors used by interactive components.
type Palette struct {
	Primary   string
	Secondary string
}

// Theme carries presentation settings shared by all UI components.
type Theme struct {
	NoColor bool
	Colors  Palette
}

// NewTheme returns the default theme. noColor disables all styling.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: Palette{
			Primary:   ColorPrimary,
			Secondary: ColorSecondary,
		},
	}
}

// huhTheme maps the brand colors onto a huh form theme.
func (t *Theme) huhTheme() *huh.Theme {
	if t.NoColor {
		return huh.ThemeBase()
	}

	ht := huh.ThemeBase()

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	text := lipgloss.AdaptiveColor{Light: "#111827", Dark: ColorText}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	ht.Focused.Base = ht.Focused.Base.BorderForeground(border)
	ht.Focused.Card = ht.Focused.Base
	ht.Focused.Title = ht.Focused.Title.Foreground(primary).Bold(true)
	ht.Focused.Description = ht.Focused.Description.Foreground(muted)
	ht.Focused.ErrorIndicator = ht.Focused.ErrorIndicator.Foreground(red)
	ht.Focused.ErrorMessage = ht.Focused.ErrorMessage.Foreground(red)
	ht.Focused.TextInput.Cursor = ht.Focused.TextInput.Cursor.Foreground(primary)
	ht.Focused.TextInput.Placeholder = ht.Focused.TextInput.Placeholder.Foreground(muted)
	ht.Focused.TextInput.Prompt = ht.Focused.TextInput.Prompt.Foreground(secondary)
	ht.Focused.FocusedButton = ht.Focused.FocusedButton.
		Foreground(lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"}).
		Background(primary)
	ht.Focused.BlurredButton = ht.Focused.BlurredButton.
		Foreground(text).
		Background(lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"})

	ht.Blurred = ht.Focused
	ht.Blurred.Base = ht.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	ht.Blurred.Card = ht.Blurred.Base

	return ht
}
