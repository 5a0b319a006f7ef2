package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"bleranger/internal/config"
)

// RenderMenuBar renders the top menu bar.
func RenderMenuBar(width int, model string) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"up/dn", " rssi"},
		{"+/-", " txpwr"},
		{"Tab", " profile"},
		{"M", "odel"},
		{"Q", "uit"},
	}

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	right := StyleMenuLabel.Render(fmt.Sprintf("Profile: %s", model)) + " "

	left := StyleMenuKey.Render(title) + menu

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleMenuBar.Width(width).Render(left + padding + right)
}
