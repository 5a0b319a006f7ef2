package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"bleranger/internal/config"
	"bleranger/internal/distance"
	"bleranger/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies. Because
// Bubble Tea uses value receivers, pointer fields ensure all copies see
// the same underlying data.
type shared struct {
	registry *config.Registry
	history  *Ring
	log      logrus.FieldLogger
}

// TunerModel is the root Bubble Tea model for the coefficient tuner. It
// simulates RSSI readings under caller control so the estimator's behavior
// can be inspected across the whole input range.
type TunerModel struct {
	width  int
	height int

	rssi     float64
	txPower  int
	modelIdx int
	models   []string

	pathLossMode bool
	curve        *distance.CurveFitted
	pathLoss     *distance.PathLoss

	shared *shared
}

// New creates a new TunerModel starting on the given profile.
func New(registry *config.Registry, profile config.Profile, log logrus.FieldLogger) TunerModel {
	models := registry.Models()
	idx := 0
	for i, name := range models {
		if name == profile.Model {
			idx = i
			break
		}
	}

	return TunerModel{
		rssi:     -65.0,
		txPower:  profile.TxPower,
		modelIdx: idx,
		models:   models,
		curve: distance.NewCurveFitted(
			profile.Coefficient1, profile.Coefficient2, profile.Coefficient3, log),
		pathLoss: distance.NewPathLoss(config.PathLossExp),
		shared: &shared{
			registry: registry,
			history:  NewRing(config.HistoryLen),
			log:      log,
		},
	}
}

func (m TunerModel) Init() tea.Cmd {
	return tickCmd()
}

func (m TunerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case TickMsg:
		m.shared.history.Push(m.calculator().Distance(m.txPower, m.rssi))
		return m, tickCmd()
	}

	return m, nil
}

func (m TunerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit

	case "up", "k":
		m.rssi += config.RSSIStep
		if m.rssi > config.RSSICeil {
			m.rssi = config.RSSICeil
		}

	case "down", "j":
		m.rssi -= config.RSSIStep
		if m.rssi < config.RSSIFloor {
			m.rssi = config.RSSIFloor
		}

	case "+", "=":
		m.txPower += config.TxStep

	case "-", "_":
		m.txPower -= config.TxStep

	case "tab":
		m.modelIdx = (m.modelIdx + 1) % len(m.models)
		profile, _ := m.shared.registry.Lookup(m.models[m.modelIdx])
		m.curve = distance.NewCurveFitted(
			profile.Coefficient1, profile.Coefficient2, profile.Coefficient3, m.shared.log)
		m.txPower = profile.TxPower

	case "m", "M":
		m.pathLossMode = !m.pathLossMode
	}

	return m, nil
}

func (m TunerModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing tuner..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 5 {
		bodyH = 5
	}

	menuBar := ui.RenderMenuBar(m.width, m.models[m.modelIdx])

	b, determined := m.curve.Explain(m.txPower, m.rssi)
	if m.pathLossMode && determined {
		b.Distance = m.pathLoss.Distance(m.txPower, m.rssi)
	}

	panel := ui.RenderEstimatorPanel(m.width, bodyH, m.calculator().String(),
		m.txPower, m.rssi, b, determined, !m.pathLossMode,
		m.shared.history.Values(), config.MaxRange)

	statusBar := ui.RenderStatusBar(m.width, m.calculatorLabel(), m.rssi, m.txPower, config.MaxRange)

	return ui.ComposeLayout(menuBar, panel, statusBar)
}

type namedCalculator interface {
	distance.Calculator
	String() string
}

func (m TunerModel) calculator() namedCalculator {
	if m.pathLossMode {
		return m.pathLoss
	}
	return m.curve
}

func (m TunerModel) calculatorLabel() string {
	if m.pathLossMode {
		return "PATH-LOSS"
	}
	return "CURVE-FIT"
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(config.TargetFPS), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
