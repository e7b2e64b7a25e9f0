// Package chain implements a linear chain of states for exercising
// tabular learners. The agent starts at state 0 and advances one state per
// step regardless of its action. Each step pays a reward of 1 if the action
// matches the parity of the current state and 0 otherwise. The episode
// ends on reaching the last state.
package chain

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/go-qlearn"
)

const (
	// NumActions is the number of actions available in every state.
	NumActions = 2

	even = 0
	odd  = 1
)

// Chain is a linear chain environment.
type Chain struct {
	length int
}

// New returns a Chain with the given number of states.
func New(length int) (*Chain, error) {
	if length < 2 {
		return nil, errors.Errorf("chain must have at least 2 states, got %d", length)
	}

	return &Chain{length: length}, nil
}

func (c *Chain) NumStates() int {
	return c.length
}

func (c *Chain) StartState() int {
	return 0
}

func (c *Chain) IsTerminal(state int) bool {
	return state >= c.length-1
}

// OptimalAction returns the action that is rewarded in the given state.
func (c *Chain) OptimalAction(state int) int {
	if state%2 == 0 {
		return even
	}

	return odd
}

// Apply returns the reward for taking action in state, and the next state.
func (c *Chain) Apply(state, action int) (float64, int) {
	var reward float64
	if action == c.OptimalAction(state) {
		reward = 1.0
	}

	return reward, state + 1
}

// Agent is the subset of a Q-learning agent needed to drive an episode.
// It is implemented by both *qlearn.QLearn and *qlearn.ThreadSafeQLearn.
type Agent interface {
	Start(state int)
	Step(reward float64, nextState int)
	SelectedAction() int
	Fitness() float64
}

var (
	_ Agent = (*qlearn.QLearn)(nil)
	_ Agent = (*qlearn.ThreadSafeQLearn)(nil)
)

// RunEpisode runs the agent from the start state until the chain ends
// and returns the fitness it collected.
func (c *Chain) RunEpisode(agent Agent) float64 {
	state := c.StartState()
	agent.Start(state)
	for !c.IsTerminal(state) {
		reward, next := c.Apply(state, agent.SelectedAction())
		agent.Step(reward, next)
		state = next
	}

	return agent.Fitness()
}

// Train runs nEpisodes episodes and returns the fitness of each.
// If callback is non-nil it is invoked after every episode.
func (c *Chain) Train(agent Agent, nEpisodes int, callback func(episode int, fitness float64)) []float64 {
	result := make([]float64, nEpisodes)
	for i := range result {
		result[i] = c.RunEpisode(agent)
		if callback != nil {
			callback(i, result[i])
		}
	}

	glog.V(1).Infof("Trained %d episodes on a chain of %d states", nEpisodes, c.length)
	return result
}

// Accuracy returns the fraction of non-terminal states in which
// selectAction returns OptimalAction.
func (c *Chain) Accuracy(selectAction func(state int) int) float64 {
	n := c.length - 1
	correct := 0
	for s := 0; s < n; s++ {
		if selectAction(s) == c.OptimalAction(s) {
			correct++
		}
	}

	return float64(correct) / float64(n)
}
