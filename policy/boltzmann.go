package policy

import (
	"math"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/floats"

	"github.com/timpalpant/go-qlearn/internal/sampling"
)

// Smallest positive normal float64.
const minNormal = 0x1p-1022

// Boltzmann samples each action with probability proportional to
// exp(estimate / temperature). Low temperatures approach greedy selection,
// high temperatures approach uniform selection.
type Boltzmann struct {
	temperature float64
	rng         Rand
}

// NewBoltzmann returns a Boltzmann policy drawing from rng.
// If rng is nil, a shared process-wide source is used.
func NewBoltzmann(temperature float64, rng Rand) Boltzmann {
	return Boltzmann{
		temperature: temperature,
		rng:         orDefault(rng),
	}
}

func (p Boltzmann) Temperature() float64 {
	return p.temperature
}

// SelectAction implements Policy.
//
// If the weights cannot be normalized (their sum underflows to zero or
// overflows), the action with the highest estimate is selected instead.
func (p Boltzmann) SelectAction(estimates []float64) int {
	w := stackalloc(len(estimates))
	for i, q := range estimates {
		w[i] = math.Exp(q / p.temperature)
	}

	total := floats.Sum(w)
	if !isNormal(total) {
		glog.V(2).Infof("Boltzmann weights sum to %v at temperature %v, selecting greedily",
			total, p.temperature)
		return sampling.Greedy(estimates)
	}

	x := p.rng.Float64()
	return sampling.SampleOne(w, total, x)
}

func isNormal(x float64) bool {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return false
	}

	return math.Abs(x) >= minNormal
}

const maxOnStack = 128

func stackalloc(n int) []float64 {
	if n < maxOnStack {
		v := make([]float64, maxOnStack)
		return v[:n]
	}

	return make([]float64, n)
}
