package synth

import (
	"fmt"
	"time"
)

// Repair trigger thresholds.
const (
	poorConditionThreshold = 60  // score below this always triggers
	potholeThreshold       = 5   // more than this many potholes triggers
	rapidDropThreshold     = 15  // score drop since last known condition
	annualRepairDays       = 365 // days since last repair, once one exists
)

// repairImprovement is added to the observed score after a repair when
// resetting the tracked condition, capped at 100.
const repairImprovement = 20

var contractors = []string{
	"ABC_Contractors",
	"XYZ_Construction",
	"Premier_Paving",
	"Metro_Maintenance",
	"Highway_Experts",
}

// repairClass is a repair category with its base cost and the effectiveness
// baseline noise is added to.
type repairClass struct {
	Type          string
	BaseCost      int
	Effectiveness float64
}

// repairState is the running per-segment state tracked while replaying a
// segment's condition history.
type repairState struct {
	lastRepair    time.Time
	hasRepair     bool
	lastCondition float64
}

// newRepairState starts from a notionally perfect segment.
func newRepairState() repairState {
	return repairState{lastCondition: 100}
}

// needsRepair reports whether an observation triggers a repair given the
// running state. Any one of four conditions is enough: poor condition, too
// many potholes, rapid deterioration, or overdue annual maintenance (only
// once a prior repair exists).
func needsRepair(obs ConditionObservation, st repairState) bool {
	if obs.ConditionScore < poorConditionThreshold {
		return true
	}
	if obs.PotholeCount > potholeThreshold {
		return true
	}
	if st.lastCondition-obs.ConditionScore > rapidDropThreshold {
		return true
	}
	if st.hasRepair && obs.Date.Sub(st.lastRepair) > annualRepairDays*24*time.Hour {
		return true
	}
	return false
}

// classifyRepair picks the repair category for a triggered observation.
// The chain is a priority order: the worst finding wins.
func classifyRepair(obs ConditionObservation) repairClass {
	switch {
	case obs.ConditionScore < 40:
		return repairClass{RepairResurfacing, 50000, 0.9}
	case obs.PotholeCount > 3:
		return repairClass{RepairPotholePatch, 5000, 0.7}
	case obs.CrackingPercent > 20:
		return repairClass{RepairCrackSealing, 15000, 0.8}
	default:
		return repairClass{RepairPreventive, 8000, 0.6}
	}
}

// Maintenance replays each segment's condition history in chronological order
// and emits repair events where the trigger rules fire. Maintenance IDs come
// from a single counter across the whole pass, so they are strictly
// increasing and globally unique. Condition rows arrive period-major; they
// are regrouped per segment here, preserving network order across segments
// and date order within each.
func (g *Generator) Maintenance(observations []ConditionObservation) []MaintenanceEvent {
	bySegment := make(map[string][]ConditionObservation)
	var order []string
	for _, obs := range observations {
		if _, seen := bySegment[obs.SegmentID]; !seen {
			order = append(order, obs.SegmentID)
		}
		bySegment[obs.SegmentID] = append(bySegment[obs.SegmentID], obs)
	}

	var events []MaintenanceEvent
	nextID := 1

	for _, segmentID := range order {
		st := newRepairState()

		for _, obs := range bySegment[segmentID] {
			if !needsRepair(obs, st) {
				st.lastCondition = obs.ConditionScore
				continue
			}

			class := classifyRepair(obs)

			laneFactor := float64(obs.Lanes) * 0.2
			trafficFactor := float64(obs.TrafficVolume) / 100000
			cost := int(float64(class.BaseCost) * (1 + laneFactor + trafficFactor))
			if cost < 0 {
				cost = 0
			}

			weatherDelay := 0
			if obs.Precipitation > 1 {
				weatherDelay = g.rnd.Poisson(1)
			}

			events = append(events, MaintenanceEvent{
				ID:                 fmt.Sprintf("M%06d", nextID),
				RoadID:             obs.RoadID,
				SegmentID:          obs.SegmentID,
				Date:               obs.Date,
				RepairType:         class.Type,
				Cost:               cost,
				EffectivenessScore: class.Effectiveness + g.rnd.Normal(0, 0.1),
				Contractor:         contractors[g.rnd.Intn(len(contractors))],
				WeatherDelayDays:   weatherDelay,
				LanesAffected:      obs.Lanes,
				ConditionBefore:    obs.ConditionScore,
				TrafficVolume:      obs.TrafficVolume,
			})
			nextID++

			st.lastRepair = obs.Date
			st.hasRepair = true
			st.lastCondition = min100(obs.ConditionScore + repairImprovement)
		}
	}

	return events
}

func min100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
