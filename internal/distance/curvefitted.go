package distance

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"bleranger/internal/logging"
)

// Calculator estimates the distance in meters between the receiver and a
// beacon, given the beacon's txPower calibration value (the expected RSSI
// at 1 meter) and a measured RSSI sample.
type Calculator interface {
	Distance(txPower int, rssi float64) float64
}

// CurveFitted estimates distance using a best-fit curve equation with
// configurable coefficients. The coefficients are specific to the receiving
// device's signal-vs-distance profile and must be supplied by the caller;
// see the config package for known device profiles.
type CurveFitted struct {
	coefficient1 float64
	coefficient2 float64
	coefficient3 float64
	log          logrus.FieldLogger
}

// NewCurveFitted creates a calculator with coefficients specific to the
// device's signal vs. distance curve. Coefficients are stored verbatim;
// no validation is performed. A nil logger disables diagnostics.
func NewCurveFitted(coefficient1, coefficient2, coefficient3 float64, log logrus.FieldLogger) *CurveFitted {
	if log == nil {
		log = logging.Discard()
	}
	return &CurveFitted{
		coefficient1: coefficient1,
		coefficient2: coefficient2,
		coefficient3: coefficient3,
		log:          log,
	}
}

// Breakdown exposes the intermediate values of a distance computation for
// diagnostic display. Not part of the estimation contract.
type Breakdown struct {
	ConvertedTxPower float64
	Ratio            float64
	ConvertedRatio   float64
	NearField        bool
	Distance         float64
}

// Distance returns the estimated distance in meters based on the reference
// RSSI at 1 meter and the measured RSSI at the current location. Returns
// -1 when the distance cannot be determined (zero RSSI reading).
//
// Degenerate coefficients (c1=0, c2=0, negative (1-c3)/c1) propagate
// NaN/Inf results rather than erroring.
func (c *CurveFitted) Distance(txPower int, rssi float64) float64 {
	if rssi == 0 {
		return -1.0
	}

	c.log.WithFields(logrus.Fields{
		"rssi":    rssi,
		"txPower": txPower,
	}).Debug("calculating distance")

	b := c.compute(txPower, rssi)

	c.log.WithFields(logrus.Fields{
		"rssi":             fmt.Sprintf("%.2f", rssi),
		"txPower":          txPower,
		"coefficients":     fmt.Sprintf("%.3f/%.3f/%.3f", c.coefficient1, c.coefficient2, c.coefficient3),
		"convertedTxPower": fmt.Sprintf("%.2f", b.ConvertedTxPower),
		"ratio":            fmt.Sprintf("%.3f", b.Ratio),
		"convertedRatio":   fmt.Sprintf("%.3f", b.ConvertedRatio),
		"distance":         fmt.Sprintf("%.2f", b.Distance),
	}).Info("distance estimated")

	return b.Distance
}

// Explain computes the same estimate as Distance but returns all
// intermediate values and emits no diagnostics. The boolean is false when
// the distance cannot be determined (zero RSSI reading).
func (c *CurveFitted) Explain(txPower int, rssi float64) (Breakdown, bool) {
	if rssi == 0 {
		return Breakdown{Distance: -1.0}, false
	}
	return c.compute(txPower, rssi), true
}

func (c *CurveFitted) compute(txPower int, rssi float64) Breakdown {
	// converted tx power is where THIS DEVICE sees the beacon at 1m
	convertedTxPower := float64(txPower) * math.Pow((1-c.coefficient3)/c.coefficient1, 1/c.coefficient2)
	convertedRatio := rssi / convertedTxPower
	ratio := rssi / float64(txPower)

	var distance float64
	nearField := convertedRatio < 1.0
	if nearField {
		// below 1 meter we make sure it goes fast to 0
		distance = math.Pow(convertedRatio, 8)
	} else {
		distance = c.coefficient1*math.Pow(ratio, c.coefficient2) + c.coefficient3
	}

	return Breakdown{
		ConvertedTxPower: convertedTxPower,
		Ratio:            ratio,
		ConvertedRatio:   convertedRatio,
		NearField:        nearField,
		Distance:         distance,
	}
}

// Coefficients returns the stored calibration coefficients.
func (c *CurveFitted) Coefficients() (c1, c2, c3 float64) {
	return c.coefficient1, c.coefficient2, c.coefficient3
}

func (c *CurveFitted) String() string {
	return fmt.Sprintf("CurveFitted with C1/C2/C3: %.3f/%.3f/%.3f",
		c.coefficient1, c.coefficient2, c.coefficient3)
}
