package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"bleranger/internal/distance"
)

func TestRenderRuler_MarkerPosition(t *testing.T) {
	t.Parallel()

	atZero := renderRuler(0, 30, 20)
	assert.Contains(t, atZero, "0m")
	assert.Contains(t, atZero, "30m")
	assert.Contains(t, atZero, "@")

	// Out-of-scale distances clamp to the far edge instead of overflowing.
	clamped := renderRuler(500, 30, 20)
	assert.Contains(t, clamped, "@")
}

func TestRenderSparkline(t *testing.T) {
	t.Parallel()

	assert.Empty(t, renderSparkline(nil, 10))

	spark := renderSparkline([]float64{1, 1, 1, 5, 5, 5}, 10)
	assert.Equal(t, "___^^^", spark)

	// Only the last `width` samples are shown.
	long := make([]float64, 40)
	assert.Len(t, renderSparkline(long, 10), 10)
}

func TestRenderSignalBar_Clamps(t *testing.T) {
	t.Parallel()

	full := renderSignalBar(-20, 10)
	assert.Equal(t, 10, strings.Count(full, "|"))
	assert.Zero(t, strings.Count(full, "-"))

	empty := renderSignalBar(-110, 10)
	assert.Zero(t, strings.Count(empty, "|"))
	assert.Equal(t, 10, strings.Count(empty, "-"))
}

func TestRenderEstimatorPanel_Sentinel(t *testing.T) {
	t.Parallel()

	out := RenderEstimatorPanel(80, 24, "CurveFitted", -59, 0,
		distance.Breakdown{Distance: -1}, false, true, nil, 30)
	assert.Contains(t, out, "cannot be determined")
	assert.NotContains(t, out, "ConvTxPower")
}

func TestRenderEstimatorPanel_Branches(t *testing.T) {
	t.Parallel()

	far := RenderEstimatorPanel(80, 24, "CurveFitted", -59, -65,
		distance.Breakdown{ConvertedTxPower: -58.9, Ratio: 1.102, ConvertedRatio: 1.103, Distance: 2.01},
		true, true, []float64{2.0, 2.01}, 30)
	assert.Contains(t, far, "far-field")

	near := RenderEstimatorPanel(80, 24, "CurveFitted", -59, -50,
		distance.Breakdown{ConvertedTxPower: -58.9, Ratio: 0.85, ConvertedRatio: 0.849, NearField: true, Distance: 0.27},
		true, true, nil, 30)
	assert.Contains(t, near, "near-field")

	pathLoss := RenderEstimatorPanel(80, 24, "PathLoss", -59, -65,
		distance.Breakdown{Distance: 1.74}, true, false, nil, 30)
	assert.NotContains(t, pathLoss, "ConvRatio")
}
