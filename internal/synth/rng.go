package synth

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Rand bundles the random draws used by the generators behind a single seeded
// source. Every distribution consumes the same stream, so the sequence of
// calls is what determines the output: two runs with the same seed and the
// same call order produce identical values.
type Rand struct {
	src rand.Source
	rng *rand.Rand
}

// NewRand returns a Rand seeded for reproducible generation.
func NewRand(seed uint64) *Rand {
	src := rand.NewSource(seed)
	return &Rand{src: src, rng: rand.New(src)}
}

// Normal draws from N(mu, sigma).
func (r *Rand) Normal(mu, sigma float64) float64 {
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: r.src}.Rand()
}

// Poisson draws a count from Poisson(lambda).
func (r *Rand) Poisson(lambda float64) int {
	return int(distuv.Poisson{Lambda: lambda, Src: r.src}.Rand())
}

// Exponential draws from an exponential distribution with the given mean.
func (r *Rand) Exponential(mean float64) float64 {
	return distuv.Exponential{Rate: 1 / mean, Src: r.src}.Rand()
}

// Uniform draws from U(min, max).
func (r *Rand) Uniform(min, max float64) float64 {
	return distuv.Uniform{Min: min, Max: max, Src: r.src}.Rand()
}

// Intn draws a uniform integer in [0, n).
func (r *Rand) Intn(n int) int {
	return r.rng.Intn(n)
}

// Weighted draws an index with the given weights. The weights must sum to 1;
// gonum's distuv has no categorical distribution, so this is a cumulative
// scan over a single uniform draw.
func (r *Rand) Weighted(weights []float64) int {
	u := r.rng.Float64()
	var cum float64
	for i, w := range weights {
		cum += w
		if u < cum {
			return i
		}
	}
	return len(weights) - 1
}
