// Package qlearn implements online tabular Q-learning.
//
// A QLearn agent keeps one value estimate per (state, action) pair.
// The caller drives each episode: Start places the agent in a state and
// selects an action; the caller applies SelectedAction to its own
// environment and reports the outcome with Step, which updates the
// estimate and selects the action for the next state.
//
//   agent := qlearn.New(nActions, nStates, qlearn.Params{
//   	LearningRate:   0.9,
//   	DiscountFactor: 0.1,
//   }, policy.NewEpsilonGreedy(0.1, nil))
//   agent.Start(s)
//   for !done(s) {
//   	reward, next := env.Apply(s, agent.SelectedAction())
//   	agent.Step(reward, next)
//   	s = next
//   }
//
// Action selection is delegated to a policy.Policy, see package policy.
package qlearn
