package qlearn

import (
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-qlearn/internal/sampling"
	"github.com/timpalpant/go-qlearn/policy"
)

// QLearn implements one-step tabular Q-learning. It stores an estimate
// for each (state, action) pair and tracks the current episode: the state
// the agent is in, the action it has chosen to take there, and the rewards
// collected so far.
//
// QLearn is not safe for concurrent use. See ThreadSafeQLearn.
type QLearn struct {
	params Params
	policy policy.Policy
	rng    policy.Rand

	// Row-major, stateSpace x actionSpace.
	table       []float64
	actionSpace int
	stateSpace  int

	currentState   int
	selectedAction int
	fitness        float64
}

// New returns a QLearn with an all-zero table of the given dimensions.
// It panics if either dimension is not positive.
func New(actionSpace, stateSpace int, params Params, p policy.Policy) *QLearn {
	if err := Validate(actionSpace, stateSpace); err != nil {
		panic(errors.Wrap(err, "qlearn"))
	}

	rng := params.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	glog.V(1).Infof("Allocated Q-table with %d states x %d actions", stateSpace, actionSpace)
	return &QLearn{
		params:      params,
		policy:      p,
		rng:         rng,
		table:       make([]float64, stateSpace*actionSpace),
		actionSpace: actionSpace,
		stateSpace:  stateSpace,
	}
}

// RandomizeTable overwrites every estimate with a uniform draw from [-0.5, 0.5).
func (q *QLearn) RandomizeTable() {
	for i := range q.table {
		q.table[i] = q.rng.Float64() - 0.5
	}

	glog.V(1).Infof("Randomized %d Q-values", len(q.table))
}

// Start begins a new episode in the given state. The action to take there
// is selected immediately and the accumulated fitness is reset.
func (q *QLearn) Start(state int) {
	glog.V(2).Infof("Starting episode in state %d (previous fitness: %v)", state, q.fitness)
	q.currentState = state
	q.selectedAction = q.SelectAction(state)
	q.fitness = 0.0
}

// Step applies the reward observed for taking SelectedAction in CurrentState,
// which led to nextState. The estimate for that pair moves toward
//   reward + γ * max_a Q(nextState, a)
// and the agent then moves to nextState and selects its next action.
func (q *QLearn) Step(reward float64, nextState int) {
	bestNext := sampling.Max(q.row(nextState))
	target := reward + q.params.DiscountFactor*bestNext

	i := q.index(q.currentState, q.selectedAction)
	delta := target - q.table[i]
	q.table[i] += q.params.LearningRate * delta

	q.currentState = nextState
	q.selectedAction = q.SelectAction(nextState)
	q.fitness += reward
}

// SelectAction asks the policy for an action in the given state.
// It does not modify the table or the current episode.
func (q *QLearn) SelectAction(state int) int {
	return q.policy.SelectAction(q.row(state))
}

// Fitness returns the sum of rewards collected since the last call to Start.
func (q *QLearn) Fitness() float64 {
	return q.fitness
}

func (q *QLearn) CurrentState() int {
	return q.currentState
}

// SelectedAction returns the action chosen for CurrentState, whose
// outcome the next call to Step will learn from.
func (q *QLearn) SelectedAction() int {
	return q.selectedAction
}

func (q *QLearn) Value(state, action int) float64 {
	return q.row(state)[action]
}

// Row returns a copy of the estimates for every action in the given state.
func (q *QLearn) Row(state int) []float64 {
	result := make([]float64, q.actionSpace)
	copy(result, q.row(state))
	return result
}

func (q *QLearn) ActionSpace() int {
	return q.actionSpace
}

func (q *QLearn) StateSpace() int {
	return q.stateSpace
}

func (q *QLearn) Params() Params {
	return q.params
}

func (q *QLearn) Policy() policy.Policy {
	return q.policy
}

func (q *QLearn) row(state int) []float64 {
	start := state * q.actionSpace
	return q.table[start : start+q.actionSpace]
}

func (q *QLearn) index(state, action int) int {
	return state*q.actionSpace + action
}
