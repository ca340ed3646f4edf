package mapping

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// candidate pair outcomes
const (
	resultAligned  = "aligned"
	resultRejected = "rejected"
)

var (
	candidatePairsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "beaconmap_candidate_pairs_total",
		Help: "Candidate scanner pairs by alignment result",
	}, []string{"result"})

	alignmentRMSE = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "beaconmap_alignment_rmse",
		Help:    "Root mean square residual of accepted alignments",
		Buckets: []float64{1e-9, 1e-6, 1e-3, 0.01, 0.1, 0.5, 1},
	})

	unplacedScannersTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "beaconmap_unplaced_scanners_total",
		Help: "Scanners left out of a map because they were not connected to the reference",
	})

	buildDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "beaconmap_build_duration_seconds",
		Help:    "Time to build a map",
		Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 30},
	})
)
