// Package report computes summary statistics and renders chart artifacts for
// a generated dataset.
package report

import (
	"gonum.org/v1/gonum/stat"

	"github.com/smartpave-data/smartpave/internal/synth"
)

// Summary holds the headline statistics for one generation run.
type Summary struct {
	SegmentCount       int
	TotalMiles         float64
	ConditionRecords   int
	MaintenanceCount   int
	TrafficRecords     int
	TotalCost          float64
	MeanRepairCost     float64
	MeanConditionScore float64
}

// Summarize computes run statistics across the four generated tables.
func Summarize(net *synth.Network, conditions []synth.ConditionObservation,
	maintenance []synth.MaintenanceEvent, traffic []synth.TrafficObservation) Summary {

	scores := make([]float64, len(conditions))
	for i, obs := range conditions {
		scores[i] = obs.ConditionScore
	}

	costs := make([]float64, len(maintenance))
	var totalCost float64
	for i, ev := range maintenance {
		costs[i] = float64(ev.Cost)
		totalCost += float64(ev.Cost)
	}

	s := Summary{
		SegmentCount:     len(net.Segments),
		TotalMiles:       net.TotalMiles(),
		ConditionRecords: len(conditions),
		MaintenanceCount: len(maintenance),
		TrafficRecords:   len(traffic),
		TotalCost:        totalCost,
	}
	if len(scores) > 0 {
		s.MeanConditionScore = stat.Mean(scores, nil)
	}
	if len(costs) > 0 {
		s.MeanRepairCost = stat.Mean(costs, nil)
	}
	return s
}
