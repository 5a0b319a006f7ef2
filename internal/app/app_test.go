package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bleranger/internal/config"
)

func newTestModel(t *testing.T) TunerModel {
	t.Helper()
	registry := config.NewRegistry()
	profile, ok := registry.Lookup(config.DefaultModel)
	require.True(t, ok)
	return New(registry, profile, nil)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestTuner_RSSISteps(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	start := m.rssi

	next, _ := m.Update(keyMsg("up"))
	m = next.(TunerModel)
	assert.Equal(t, start+config.RSSIStep, m.rssi)

	next, _ = m.Update(keyMsg("down"))
	m = next.(TunerModel)
	next, _ = m.Update(keyMsg("down"))
	m = next.(TunerModel)
	assert.Equal(t, start-config.RSSIStep, m.rssi)
}

func TestTuner_RSSIClamped(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	m.rssi = config.RSSICeil

	next, _ := m.Update(keyMsg("up"))
	m = next.(TunerModel)
	assert.Equal(t, config.RSSICeil, m.rssi, "never reaches the 0 dBm sentinel input")

	m.rssi = config.RSSIFloor
	next, _ = m.Update(keyMsg("down"))
	m = next.(TunerModel)
	assert.Equal(t, config.RSSIFloor, m.rssi)
}

func TestTuner_TxPowerSteps(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	start := m.txPower

	next, _ := m.Update(keyMsg("+"))
	m = next.(TunerModel)
	assert.Equal(t, start+config.TxStep, m.txPower)

	next, _ = m.Update(keyMsg("-"))
	m = next.(TunerModel)
	next, _ = m.Update(keyMsg("-"))
	m = next.(TunerModel)
	assert.Equal(t, start-config.TxStep, m.txPower)
}

func TestTuner_TabCyclesProfiles(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	models := m.models
	require.Greater(t, len(models), 1)

	next, _ := m.Update(keyMsg("tab"))
	m = next.(TunerModel)
	assert.Equal(t, 1, m.modelIdx)

	c1, _, _ := m.curve.Coefficients()
	want, ok := m.shared.registry.Lookup(models[1])
	require.True(t, ok)
	assert.Equal(t, want.Coefficient1, c1)

	// Cycling through all profiles wraps back to the first.
	for i := 1; i < len(models); i++ {
		next, _ = m.Update(keyMsg("tab"))
		m = next.(TunerModel)
	}
	assert.Equal(t, 0, m.modelIdx)
}

func TestTuner_ModelToggle(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	assert.Equal(t, "CURVE-FIT", m.calculatorLabel())

	next, _ := m.Update(keyMsg("m"))
	m = next.(TunerModel)
	assert.Equal(t, "PATH-LOSS", m.calculatorLabel())
	assert.Equal(t, m.pathLoss.Distance(m.txPower, m.rssi), m.calculator().Distance(m.txPower, m.rssi))

	next, _ = m.Update(keyMsg("m"))
	m = next.(TunerModel)
	assert.Equal(t, "CURVE-FIT", m.calculatorLabel())
}

func TestTuner_TickRecordsHistory(t *testing.T) {
	t.Parallel()

	m := newTestModel(t)
	require.Equal(t, 0, m.shared.history.Len())

	next, cmd := m.Update(TickMsg(time.Now()))
	m = next.(TunerModel)
	assert.NotNil(t, cmd, "tick reschedules itself")
	require.Equal(t, 1, m.shared.history.Len())
	assert.Equal(t, m.curve.Distance(m.txPower, m.rssi), m.shared.history.Last())
}

func TestTuner_QuitKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"q", "ctrl+c"} {
		m := newTestModel(t)
		var msg tea.KeyMsg
		if key == "ctrl+c" {
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		} else {
			msg = keyMsg(key)
		}
		_, cmd := m.Update(msg)
		require.NotNil(t, cmd, "key %s", key)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestRing(t *testing.T) {
	t.Parallel()

	r := NewRing(3)
	assert.Nil(t, r.Values())
	assert.Equal(t, 0.0, r.Last())

	r.Push(1)
	r.Push(2)
	assert.Equal(t, []float64{1, 2}, r.Values())
	assert.Equal(t, 2.0, r.Last())

	r.Push(3)
	r.Push(4) // overwrites 1
	assert.Equal(t, []float64{2, 3, 4}, r.Values())
	assert.Equal(t, 4.0, r.Last())
	assert.Equal(t, 3, r.Len())
}
