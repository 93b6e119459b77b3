package synth

import (
	"math"
	"time"

	"github.com/smartpave-data/smartpave/internal/monitoring"
)

const baseConditionScore = 85

// seasonalAdjustment returns the condition adjustment for a calendar month:
// winter freeze damage pulls scores down, summer lifts them slightly.
func seasonalAdjustment(month time.Month) float64 {
	switch month {
	case time.December, time.January, time.February:
		return -5
	case time.June, time.July, time.August:
		return 2
	default:
		return 0
	}
}

// categoryAdjustment reflects maintenance priority: highways are kept in
// better shape, local roads in worse.
func categoryAdjustment(category string) float64 {
	switch category {
	case CategoryHighway:
		return 5
	case CategoryLocal:
		return -3
	default:
		return 0
	}
}

func isWinter(month time.Month) bool {
	return month == time.December || month == time.January || month == time.February
}

// Conditions produces the pavement-condition history for every segment over
// the configured year range. Reporting is quarterly: the date cursor steps in
// months but jumps a whole quarter from each quarter-start month, so only
// January, April, July and October appear in the output. Rows are ordered
// chronologically, with segments in network order within each period.
func (g *Generator) Conditions(net *Network) []ConditionObservation {
	var out []ConditionObservation

	current := time.Date(g.params.StartYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(g.params.EndYear, time.December, 31, 0, 0, 0, 0, time.UTC)

	for !current.After(end) {
		monitoring.Logf("generating condition data for %s", current.Format("2006-01"))
		month := current.Month()

		for _, seg := range net.Segments {
			road := net.Road(seg.RoadID)

			score := baseConditionScore +
				seasonalAdjustment(month) +
				-float64(road.TrafficVolume)/100000 +
				categoryAdjustment(road.Category) +
				g.rnd.Normal(0, 3)
			score = clamp(score, 0, 100)

			roughness := math.Max(50, 200-score+g.rnd.Normal(0, 10))
			cracking := math.Max(0, (100-score)*0.3+g.rnd.Normal(0, 2))
			potholes := int((100-score)/20) + g.rnd.Poisson(0.5)
			if potholes < 0 {
				potholes = 0
			}

			freezeThaw := 0
			if isWinter(month) {
				freezeThaw = g.rnd.Poisson(2)
			}

			out = append(out, ConditionObservation{
				RoadID:           road.ID,
				SegmentID:        seg.ID,
				Date:             current,
				Lanes:            road.Lanes,
				ConditionScore:   round1(score),
				RoughnessIndex:   round1(roughness),
				CrackingPercent:  round1(cracking),
				PotholeCount:     potholes,
				Precipitation:    round2(g.rnd.Exponential(0.5)),
				FreezeThawCycles: freezeThaw,
				TemperatureAvg:   50 + 30*math.Sin(2*math.Pi*float64(month)/12) + g.rnd.Normal(0, 5),
				TrafficVolume:    road.TrafficVolume,
				RoadType:         road.Category,
				Latitude:         seg.Latitude,
				Longitude:        seg.Longitude,
			})
		}

		switch month {
		case time.January, time.April, time.July, time.October:
			current = current.AddDate(0, 3, 0)
		default:
			current = current.AddDate(0, 1, 0)
		}
	}

	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
