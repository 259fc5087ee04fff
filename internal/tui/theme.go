package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Border    lipgloss.Color
	Title     lipgloss.Style
	Timer     lipgloss.Style
	Phase     lipgloss.Style
	Countdown lipgloss.Style
	Prompt    lipgloss.Style
	Complete  lipgloss.Style
	Button    lipgloss.Style
	Preset    lipgloss.Style
	Input     lipgloss.Style
	Banner    lipgloss.Style
	Focused   lipgloss.Style
	Dim       lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("63"),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Phase:     lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 4),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Complete:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("63")).Padding(0, 2),
		Preset:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("160")).Bold(true).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:      "Dracula",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Border:    lipgloss.Color("62"),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Timer:     lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Phase:     lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Countdown: lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 4),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")).Italic(true),
		Complete:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Button:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("62")).Padding(0, 2),
		Preset:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("60")).Padding(0, 1),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1),
		Banner:    lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("203")).Bold(true).Padding(0, 1),
		Focused:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}

// ThemeNames lists the registered themes in a stable order.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// nextThemeName returns the theme after current, wrapping around.
func nextThemeName(current string) string {
	names := ThemeNames()
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}
