// Package policy implements action-selection strategies for tabular
// value learning. A Policy sees only the estimates for a single state and
// returns the index of the action to take.
package policy

// Policy selects an action given the value estimates of every action
// available in a state.
type Policy interface {
	// SelectAction returns an index in [0, len(estimates)).
	// estimates must not be empty.
	SelectAction(estimates []float64) int
}

var (
	_ Policy = EpsilonGreedy{}
	_ Policy = Boltzmann{}
)
