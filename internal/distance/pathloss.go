package distance

import (
	"fmt"
	"math"
)

// PathLoss estimates distance using the log-distance path loss model:
// d = 10^((txPower - rssi) / (10 * n)). It needs no per-device curve fit,
// only a path loss exponent for the environment, which makes it a useful
// fallback when no calibration profile exists for the receiver.
type PathLoss struct {
	exponent float64
}

// NewPathLoss creates a calculator with the given path loss exponent
// (typically 2.0 for free space, up to ~4.0 indoors).
func NewPathLoss(exponent float64) *PathLoss {
	return &PathLoss{exponent: exponent}
}

// Distance returns the estimated distance in meters. Non-negative RSSI
// readings and sub-decimeter results are clamped to 0.1m.
func (p *PathLoss) Distance(txPower int, rssi float64) float64 {
	if rssi >= 0 {
		return 0.1
	}
	d := math.Pow(10, (float64(txPower)-rssi)/(10*p.exponent))
	if d < 0.1 {
		return 0.1
	}
	return d
}

func (p *PathLoss) String() string {
	return fmt.Sprintf("PathLoss with N: %.1f", p.exponent)
}
