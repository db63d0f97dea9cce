package workflow

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// runsTotal counts completed workflow runs by outcome.
	// Labels: outcome (completed, aborted, inconclusive, plan_failed)
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sentient",
			Subsystem: "workflow",
			Name:      "runs_total",
			Help:      "Total number of diagnostic workflow runs by outcome",
		},
		[]string{"outcome"},
	)

	// iterationsPerRun tracks loop passes per run, including passes granted
	// by human plan edits.
	iterationsPerRun = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sentient",
			Subsystem: "workflow",
			Name:      "iterations_per_run",
			Help:      "Number of execution loop iterations per workflow run",
			Buckets:   []float64{1, 2, 3, 5, 8, 13, 21},
		},
	)
)

const (
	outcomeCompleted    = "completed"
	outcomeAborted      = "aborted"
	outcomeInconclusive = "inconclusive"
	outcomePlanFailed   = "plan_failed"
)
