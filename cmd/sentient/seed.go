package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/i-fancy-u/SentientAI/internal/config"
	"github.com/i-fancy-u/SentientAI/internal/scada"
)

var seedDays int

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the telemetry database with demo data",
	Long: `Populate the telemetry database with demo data.

Generates hourly readings for a small fleet of equipment across all tracked
metrics, with occasional error records, so the assistant has something to
query before a real SCADA export is loaded.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedDays, "days", 30, "days of hourly readings to generate")
}

// metricProfiles describe the nominal operating band per metric.
var metricProfiles = []struct {
	metric string
	unit   string
	base   float64
	spread float64
}{
	{scada.MetricPressure, "psi", 120, 15},
	{scada.MetricTemperature, "celsius", 65, 10},
	{scada.MetricVibration, "hz", 45, 8},
	{scada.MetricLoad, "kw", 250, 40},
	{scada.MetricRPM, "rpm", 1800, 120},
}

var equipmentFleet = []string{"pump_p101", "pump_p102", "compressor_c201", "turbine_t301"}

var errorCodes = []string{"503", "504", "505"}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := scada.NewStore(cfg.SCADA.DBPath)
	if err != nil {
		return fmt.Errorf("opening SCADA store: %w", err)
	}
	defer store.Close()

	rng := rand.New(rand.NewSource(42))
	start := time.Now().UTC().AddDate(0, 0, -seedDays).Truncate(time.Hour)

	var readings []scada.Reading
	for hour := 0; hour < seedDays*24; hour++ {
		ts := start.Add(time.Duration(hour) * time.Hour)
		for _, eq := range equipmentFleet {
			for _, p := range metricProfiles {
				r := scada.Reading{
					Timestamp: ts,
					Equipment: eq,
					Metric:    p.metric,
					Value:     p.base + (rng.Float64()*2-1)*p.spread,
					Unit:      p.unit,
				}
				// Roughly one error per equipment every two days.
				if rng.Float64() < 0.0004 {
					r.ErrorCode = errorCodes[rng.Intn(len(errorCodes))]
				}
				readings = append(readings, r)
			}
		}
	}

	if err := store.InsertReadings(cmd.Context(), readings); err != nil {
		return fmt.Errorf("inserting readings: %w", err)
	}

	fmt.Printf("Seeded %d readings into %s\n", len(readings), cfg.SCADA.DBPath)
	return nil
}
