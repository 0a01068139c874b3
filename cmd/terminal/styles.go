package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sevigo/review-analyzer/internal/core"
	"github.com/sevigo/review-analyzer/internal/prefs"
)

type styles struct {
	app      lipgloss.Style
	header   lipgloss.Style
	subtitle lipgloss.Style
	heading  lipgloss.Style
	label    lipgloss.Style
	panel    lipgloss.Style
	focused  lipgloss.Style
	button   lipgloss.Style
	inactive lipgloss.Style
	error    lipgloss.Style
	success  lipgloss.Style
	prompt   lipgloss.Style
	record   lipgloss.Style
}

type ThemePalette struct {
	Primary lipgloss.Color
	Text    lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
}

var palettes = map[prefs.Theme]ThemePalette{
	prefs.ThemeLight: {
		Primary: lipgloss.Color("#4f46e5"),
		Text:    lipgloss.Color("#111827"),
		Muted:   lipgloss.Color("#6b7280"),
		Border:  lipgloss.Color("#d1d5db"),
		Success: lipgloss.Color("#059669"),
		Error:   lipgloss.Color("#dc2626"),
	},
	prefs.ThemeDark: {
		Primary: lipgloss.Color("#818cf8"),
		Text:    lipgloss.Color("#f3f4f6"),
		Muted:   lipgloss.Color("#9ca3af"),
		Border:  lipgloss.Color("#374151"),
		Success: lipgloss.Color("#34d399"),
		Error:   lipgloss.Color("#f87171"),
	},
}

// Sentiment colours are shared by both themes.
var sentimentColors = map[core.Sentiment]lipgloss.Color{
	core.SentimentPositive: lipgloss.Color("#10b981"),
	core.SentimentNegative: lipgloss.Color("#ef4444"),
	core.SentimentNeutral:  lipgloss.Color("#6b7280"),
}

var sentimentEmoji = map[core.Sentiment]string{
	core.SentimentPositive: "😊",
	core.SentimentNegative: "😞",
	core.SentimentNeutral:  "😐",
}

// displaySentiment maps unknown labels to neutral for rendering.
func displaySentiment(s core.Sentiment) core.Sentiment {
	if _, ok := sentimentColors[s]; ok {
		return s
	}
	return core.SentimentNeutral
}

func sentimentStyle(s core.Sentiment) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(sentimentColors[displaySentiment(s)]).Bold(true)
}

func GetTheme(theme prefs.Theme) styles {
	if palette, ok := palettes[theme]; ok {
		return newStylesFromPalette(palette)
	}
	return newStylesFromPalette(palettes[prefs.DefaultTheme])
}

func newStylesFromPalette(p ThemePalette) styles {
	return styles{
		app: lipgloss.NewStyle().Margin(0, 1).Foreground(p.Text),
		header: lipgloss.NewStyle().
			Foreground(p.Primary).
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(p.Primary).
			Padding(0, 2),
		subtitle: lipgloss.NewStyle().Foreground(p.Muted).Italic(true),
		heading:  lipgloss.NewStyle().Foreground(p.Primary).Bold(true).MarginTop(1),
		label:    lipgloss.NewStyle().Foreground(p.Text).Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Padding(0, 1),
		focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Primary).
			Padding(0, 1),
		button:   lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		inactive: lipgloss.NewStyle().Foreground(p.Muted),
		error:    lipgloss.NewStyle().Foreground(p.Error).Bold(true),
		success:  lipgloss.NewStyle().Foreground(p.Success).Bold(true),
		prompt:   lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		record: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(p.Border).
			PaddingLeft(1).
			MarginBottom(1),
	}
}
