package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, calculator string, rssi float64, txPower int, maxRange float64) string {
	model := StyleStatusModel.Render("[" + calculator + "]")

	info := fmt.Sprintf(" RSSI: %.1fdBm  TxPower: %ddBm  Ruler: 0-%.0fm",
		rssi, txPower, maxRange)

	content := model + StyleStatusBar.Foreground(ColorGreen).Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}

	return StyleStatusBar.Width(width).Render(content + padding)
}
