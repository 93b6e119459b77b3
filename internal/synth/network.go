package synth

import "fmt"

// Categorical weights for road attributes.
var (
	laneChoices = []int{2, 3, 4, 5, 6}
	laneWeights = []float64{0.10, 0.20, 0.40, 0.25, 0.05}

	categoryChoices = []string{CategoryHighway, CategoryArterial, CategoryCollector, CategoryLocal}
	categoryWeights = []float64{0.20, 0.30, 0.30, 0.20}
)

// Traffic baseline distribution per road category, floored at minTrafficVolume.
var trafficBaseline = map[string]struct{ Mean, Sigma float64 }{
	CategoryHighway:   {75000, 15000},
	CategoryArterial:  {35000, 8000},
	CategoryCollector: {15000, 4000},
	CategoryLocal:     {5000, 2000},
}

const minTrafficVolume = 1000

// Generator runs the four dataset stages off a shared seeded source.
type Generator struct {
	params Params
	rnd    *Rand
}

// NewGenerator returns a Generator for the given parameters.
func NewGenerator(p Params) *Generator {
	return &Generator{params: p, rnd: NewRand(p.Seed)}
}

// Network synthesizes the static road topology. Each road gets a base
// coordinate perturbed around the configured centre and a Poisson-distributed
// segment count; each segment jitters further around its road's base.
func (g *Generator) Network() *Network {
	net := &Network{roadByID: make(map[string]*Road)}

	for i := 1; i <= g.params.RoadCount; i++ {
		category := categoryChoices[g.rnd.Weighted(categoryWeights)]
		base := trafficBaseline[category]
		volume := int(g.rnd.Normal(base.Mean, base.Sigma))
		if volume < minTrafficVolume {
			volume = minTrafficVolume
		}

		road := Road{
			ID:            fmt.Sprintf("R%03d", i),
			Category:      category,
			Lanes:         laneChoices[g.rnd.Weighted(laneWeights)],
			Latitude:      g.params.CenterLatitude + g.rnd.Normal(0, 0.5),
			Longitude:     g.params.CenterLongitude + g.rnd.Normal(0, 0.5),
			TrafficVolume: volume,
		}
		net.Roads = append(net.Roads, road)

		segments := g.rnd.Poisson(g.params.SegmentMean)
		for j := 1; j <= segments; j++ {
			net.Segments = append(net.Segments, Segment{
				ID:          fmt.Sprintf("%s_S%03d", road.ID, j),
				RoadID:      road.ID,
				Latitude:    road.Latitude + g.rnd.Normal(0, 0.01),
				Longitude:   road.Longitude + g.rnd.Normal(0, 0.01),
				LengthMiles: g.rnd.Uniform(0.1, 0.5),
			})
		}
	}

	for i := range net.Roads {
		net.roadByID[net.Roads[i].ID] = &net.Roads[i]
	}
	return net
}
