package policy

import (
	"github.com/timpalpant/go-qlearn/internal/sampling"
)

// EpsilonGreedy explores a uniformly random action with probability
// Epsilon and otherwise exploits the action with the highest estimate.
type EpsilonGreedy struct {
	epsilon float64
	rng     Rand
}

// NewEpsilonGreedy returns an EpsilonGreedy policy drawing from rng.
// If rng is nil, a shared process-wide source is used.
func NewEpsilonGreedy(epsilon float64, rng Rand) EpsilonGreedy {
	return EpsilonGreedy{
		epsilon: epsilon,
		rng:     orDefault(rng),
	}
}

func (p EpsilonGreedy) Epsilon() float64 {
	return p.epsilon
}

// SelectAction implements Policy.
func (p EpsilonGreedy) SelectAction(estimates []float64) int {
	if p.rng.Float64() < p.epsilon {
		return p.rng.Intn(len(estimates))
	}

	return sampling.Greedy(estimates)
}
