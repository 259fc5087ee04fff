package tui

import (
	"fmt"

	"github.com/akyairhashvil/breathe/internal/config"
	"github.com/charmbracelet/x/ansi"
)

const (
	iconPlay  = "▶"
	iconPause = "⏸"
	iconSound = "🔊"
	iconMute  = "🔇"
	iconReset = "↺"
	iconClock = "◷"
)

func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func soundLabel(enabled bool) string {
	if enabled {
		return iconSound + " Sound On"
	}
	return iconMute + " Sound Off"
}

func presetLabel(minutes int) string {
	return fmt.Sprintf("%s %d min", iconClock, minutes)
}

// formatLimit describes the stored time limit.
func formatLimit(limit string) string {
	if limit == "" {
		return "No time limit"
	}
	if limit == "1" {
		return "1 minute"
	}
	return limit + " minutes"
}
