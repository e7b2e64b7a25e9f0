package qlearn

import (
	"github.com/pkg/errors"

	"github.com/timpalpant/go-qlearn/policy"
)

// Params are the configuration options for the Q-learning update.
// An empty Params struct is valid and corresponds to an agent that
// never changes its estimates.
type Params struct {
	LearningRate   float64 // α: step size toward the Bellman target.
	DiscountFactor float64 // γ: weight of the next state's best estimate.
	// Source used by RandomizeTable. If nil, a randomly seeded
	// source is allocated for the table.
	Rand policy.Rand
}

// Validate checks that a table of the given dimensions can be allocated.
func Validate(actionSpace, stateSpace int) error {
	if actionSpace <= 0 {
		return errors.Errorf("action space must be greater than 0, got %d", actionSpace)
	}

	if stateSpace <= 0 {
		return errors.Errorf("state space must be greater than 0, got %d", stateSpace)
	}

	return nil
}
