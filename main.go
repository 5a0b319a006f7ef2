package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"bleranger/internal/app"
	"bleranger/internal/config"
	"bleranger/internal/distance"
	"bleranger/internal/logging"
)

var (
	flagRSSI         float64
	flagTxPower      int
	flagModel        string
	flagCoefficients string
	flagProfiles     string
	flagPathLoss     bool
	flagVerbose      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bleranger",
		Short: "BLE Ranger - Estimate distance to a beacon from an RSSI sample",
		Long: `BLE Ranger estimates the physical distance (in meters) between a mobile
receiver and a fixed-power radio beacon, from a measured RSSI sample and a
1-meter reference power, using a curve-fitted piecewise distance model with
per-device calibration coefficients.

With --rssi given, the distance is computed once and printed. Without it,
an interactive terminal tuner starts for offline coefficient debugging.`,
		RunE: run,
	}

	rootCmd.Flags().Float64Var(&flagRSSI, "rssi", 0, "Measured RSSI sample in dBm (one-shot mode)")
	rootCmd.Flags().IntVar(&flagTxPower, "tx-power", config.DefaultTxPower, "Beacon reference power at 1 meter in dBm")
	rootCmd.Flags().StringVar(&flagModel, "model", config.DefaultModel, "Device model profile for coefficient lookup")
	rootCmd.Flags().StringVar(&flagCoefficients, "coefficients", "", "Explicit coefficients as c1,c2,c3 (overrides --model)")
	rootCmd.Flags().StringVar(&flagProfiles, "profiles", "", "JSON file with additional device profiles")
	rootCmd.Flags().BoolVar(&flagPathLoss, "path-loss", false, "Use the log-distance path loss model instead of the curve fit")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable per-call diagnostic logging")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	log := logging.New(os.Stderr, flagVerbose)

	registry := config.NewRegistry()
	if flagProfiles != "" {
		if err := registry.LoadFile(flagProfiles); err != nil {
			return err
		}
	}

	profile, found := registry.Lookup(flagModel)
	if !found && flagModel != config.DefaultModel {
		log.WithField("model", flagModel).Warn("unknown device model, using default profile")
	}
	if flagCoefficients != "" {
		c1, c2, c3, err := parseCoefficients(flagCoefficients)
		if err != nil {
			return err
		}
		profile.Coefficient1, profile.Coefficient2, profile.Coefficient3 = c1, c2, c3
	}
	if cmd.Flags().Changed("tx-power") {
		profile.TxPower = flagTxPower
	}

	if cmd.Flags().Changed("rssi") {
		var calc distance.Calculator
		if flagPathLoss {
			calc = distance.NewPathLoss(config.PathLossExp)
		} else {
			calc = distance.NewCurveFitted(
				profile.Coefficient1, profile.Coefficient2, profile.Coefficient3, log)
		}
		fmt.Printf("%.3f\n", calc.Distance(profile.TxPower, flagRSSI))
		return nil
	}

	model := app.New(registry, profile, log)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(config.TargetFPS),
	)

	_, err := p.Run()
	return err
}

func parseCoefficients(s string) (c1, c2, c3 float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("coefficients: expected c1,c2,c3, got %q", s)
	}
	vals := make([]float64, 3)
	for i, part := range parts {
		vals[i], err = strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("coefficients: %w", err)
		}
	}
	return vals[0], vals[1], vals[2], nil
}
