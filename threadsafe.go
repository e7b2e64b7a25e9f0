package qlearn

import (
	"sync"

	"github.com/timpalpant/go-qlearn/policy"
)

// ThreadSafeQLearn wraps QLearn and is safe to use from multiple goroutines.
//
// The policy's random source must also be safe for concurrent use if
// other agents share it; see policy.LockedRand.
type ThreadSafeQLearn struct {
	mu sync.Mutex
	q  *QLearn
}

func NewThreadSafe(actionSpace, stateSpace int, params Params, p policy.Policy) *ThreadSafeQLearn {
	q := New(actionSpace, stateSpace, params, p)
	return &ThreadSafeQLearn{q: q}
}

func (t *ThreadSafeQLearn) RandomizeTable() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.q.RandomizeTable()
}

func (t *ThreadSafeQLearn) Start(state int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.q.Start(state)
}

func (t *ThreadSafeQLearn) Step(reward float64, nextState int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.q.Step(reward, nextState)
}

// StepFrom atomically reads the pending action, computes its reward
// and applies the resulting transition.
func (t *ThreadSafeQLearn) StepFrom(transition func(state, action int) (reward float64, nextState int)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	reward, nextState := transition(t.q.currentState, t.q.selectedAction)
	t.q.Step(reward, nextState)
}

func (t *ThreadSafeQLearn) SelectAction(state int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.q.SelectAction(state)
}

func (t *ThreadSafeQLearn) Fitness() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.q.Fitness()
}

func (t *ThreadSafeQLearn) CurrentState() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.q.CurrentState()
}

func (t *ThreadSafeQLearn) SelectedAction() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.q.SelectedAction()
}

func (t *ThreadSafeQLearn) Row(state int) []float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.q.Row(state)
}
