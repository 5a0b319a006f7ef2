package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bleranger/internal/distance"
)

// RenderEstimatorPanel renders the main panel: inputs, the intermediate
// values of the curve-fit computation, the branch taken, the resulting
// distance on a range ruler, and the recent distance history.
// The breakdown section only applies to the curve-fit model; the path loss
// model reports its distance without intermediates.
func RenderEstimatorPanel(width, height int, calculator string, txPower int, rssi float64,
	b distance.Breakdown, determined, curveFit bool, history []float64, maxRange float64) string {

	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	title := StylePanelTitle.Render("ESTIMATOR")
	sep := StyleRuler.Render(strings.Repeat("-", innerW))

	lines := []string{title, sep, ""}

	fields := []struct{ label, value string }{
		{"Model", calculator},
		{"TxPower", fmt.Sprintf("%d dBm", txPower)},
		{"RSSI", fmt.Sprintf("%.1f dBm", rssi)},
	}
	for _, f := range fields {
		lines = append(lines, StyleLabel.Render(fmt.Sprintf("  %-14s", f.label))+StyleValue.Render(f.value))
	}

	lines = append(lines, "")

	if !determined {
		lines = append(lines, "  "+StyleSentinel.Render("RSSI is 0: distance cannot be determined (-1.0)"))
		return finishPanel(lines, width, height)
	}

	if curveFit {
		inter := []struct{ label, value string }{
			{"ConvTxPower", fmt.Sprintf("%.2f dBm", b.ConvertedTxPower)},
			{"Ratio", fmt.Sprintf("%.3f", b.Ratio)},
			{"ConvRatio", fmt.Sprintf("%.3f", b.ConvertedRatio)},
		}
		for _, f := range inter {
			lines = append(lines, StyleLabel.Render(fmt.Sprintf("  %-14s", f.label))+StyleValue.Render(f.value))
		}

		branch := StyleBranchFar.Render("far-field: c1*ratio^c2 + c3")
		if b.NearField {
			branch = StyleBranchNear.Render("near-field: convRatio^8")
		}
		lines = append(lines, StyleLabel.Render(fmt.Sprintf("  %-14s", "Branch"))+branch)
		lines = append(lines, "")
	}
	lines = append(lines, StyleLabel.Render(fmt.Sprintf("  %-14s", "Distance"))+
		StyleValue.Render(fmt.Sprintf("~%.2f m", b.Distance)))

	lines = append(lines, "")

	// Signal bar
	barWidth := innerW - 22
	if barWidth < 10 {
		barWidth = 10
	}
	lines = append(lines, StyleLabel.Render("  Signal ")+renderSignalBar(rssi, barWidth)+
		StyleValue.Render(fmt.Sprintf(" %ddBm", int(rssi))))

	// Range ruler
	rulerW := innerW - 12
	if rulerW < 10 {
		rulerW = 10
	}
	lines = append(lines, "")
	lines = append(lines, StyleLabel.Render("  Range  ")+renderRuler(b.Distance, maxRange, rulerW))

	// Distance sparkline
	if len(history) > 0 {
		sparkW := innerW - 4
		if sparkW < 10 {
			sparkW = 10
		}
		lines = append(lines, "")
		lines = append(lines, StyleLabel.Render("  Distance History:"))
		lines = append(lines, "  "+StyleSparkline.Render(renderSparkline(history, sparkW)))
	}

	return finishPanel(lines, width, height)
}

func finishPanel(lines []string, width, height int) string {
	for len(lines) < height-2 {
		lines = append(lines, "")
	}
	content := strings.Join(lines, "\n")
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}

// renderRuler draws a 0..maxRange horizontal scale with a marker at the
// estimated distance, clamped to the scale edge.
func renderRuler(meters, maxRange float64, width int) string {
	pos := int(math.Round(meters / maxRange * float64(width-1)))
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}

	var sb strings.Builder
	sb.WriteString(StyleHelp.Render("0m "))
	for i := 0; i < width; i++ {
		if i == pos {
			sb.WriteString(StyleValue.Render("@"))
		} else {
			sb.WriteString(StyleRuler.Render("."))
		}
	}
	sb.WriteString(StyleHelp.Render(fmt.Sprintf(" %.0fm", maxRange)))
	return sb.String()
}

func renderSignalBar(rssi float64, width int) string {
	// Map RSSI -100..-30 to 0..width filled bars
	ratio := (rssi + 100.0) / 70.0
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(math.Round(ratio * float64(width)))

	bar := strings.Repeat("|", filled) + strings.Repeat("-", width-filled)
	filledPart := lipgloss.NewStyle().Foreground(ColorGreen).Render(bar[:filled])
	emptyPart := lipgloss.NewStyle().Foreground(ColorDimGreen).Render(bar[filled:])
	return StyleHelp.Render("[") + filledPart + emptyPart + StyleHelp.Render("]")
}

func renderSparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}

	chars := []byte{'_', '.', '-', '~', '^'}

	minV, maxV := values[0], values[0]
	for _, v := range values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	rng := maxV - minV
	if rng < 0.01 {
		rng = 0.01
	}

	// Take last `width` values
	start := 0
	if len(values) > width {
		start = len(values) - width
	}

	var sb strings.Builder
	for i := start; i < len(values); i++ {
		idx := int((values[i] - minV) / rng * float64(len(chars)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(chars) {
			idx = len(chars) - 1
		}
		sb.WriteByte(chars[idx])
	}

	return sb.String()
}
