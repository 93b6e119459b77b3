package synth

import "time"

// Yearly traffic growth, applied linearly from the start year.
const trafficGrowthPerYear = 0.02

// trafficSeasonal is the monthly traffic multiplier: summer travel lifts
// volumes, winter suppresses them.
func trafficSeasonal(month time.Month) float64 {
	switch month {
	case time.June, time.July, time.August:
		return 1.1
	case time.December, time.January, time.February:
		return 0.9
	default:
		return 1.0
	}
}

// Traffic produces the monthly traffic series for every segment across the
// configured year range. Volumes scale the road baseline by season, linear
// year-over-year growth, and multiplicative noise; peak-hour factor and truck
// share are independent uniform draws. This stage depends only on the
// network, not on the condition history.
func (g *Generator) Traffic(net *Network) []TrafficObservation {
	var out []TrafficObservation

	for _, seg := range net.Segments {
		road := net.Road(seg.RoadID)

		for year := g.params.StartYear; year <= g.params.EndYear; year++ {
			growth := 1 + float64(year-g.params.StartYear)*trafficGrowthPerYear

			for month := 1; month <= 12; month++ {
				seasonal := trafficSeasonal(time.Month(month))
				volume := int(float64(road.TrafficVolume) * seasonal * growth * g.rnd.Normal(1, 0.1))
				if volume < 0 {
					volume = 0
				}

				out = append(out, TrafficObservation{
					RoadID:          road.ID,
					SegmentID:       seg.ID,
					Year:            year,
					Month:           month,
					AvgDailyTraffic: volume,
					PeakHourFactor:  g.rnd.Uniform(0.8, 1.2),
					TruckPercentage: g.rnd.Uniform(0.05, 0.15),
				})
			}
		}
	}

	return out
}
