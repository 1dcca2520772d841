// Package metrics produces the simulated system load shown on the dashboard.
package metrics

import "math/rand/v2"

// Sample is one reading, each field a percentage in [0,100]
type Sample struct {
	CPU     float64 `yaml:"cpu" json:"cpu"`
	Memory  float64 `yaml:"memory" json:"memory"`
	Disk    float64 `yaml:"disk" json:"disk"`
	Network float64 `yaml:"network" json:"network"`
}

// Source produces the next metrics sample
type Source interface {
	Next() Sample
}

// Initial is the reading the desktop starts with
var Initial = Sample{CPU: 12, Memory: 45, Disk: 30, Network: 2}

// RandomWalk perturbs the previous sample by a bounded random step per field
type RandomWalk struct {
	rng  *rand.Rand
	last Sample
}

// NewRandomWalk creates a walk starting at start. A nil rng uses a randomly seeded one.
func NewRandomWalk(start Sample, rng *rand.Rand) *RandomWalk {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &RandomWalk{rng: rng, last: start}
}

// Next returns the next sample. Disk does not move.
func (w *RandomWalk) Next() Sample {
	w.last = Sample{
		CPU:     clamp(w.last.CPU+w.step(10), 5, 95),
		Memory:  clamp(w.last.Memory+w.step(4), 40, 85),
		Disk:    w.last.Disk,
		Network: clamp(w.last.Network+w.step(20), 0, 100),
	}
	return w.last
}

// step returns a uniform value in [-span/2, span/2)
func (w *RandomWalk) step(span float64) float64 {
	return w.rng.Float64()*span - span/2
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
