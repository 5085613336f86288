// Package environment outlines the interfaces needed to implement
// concrete environments with discrete, opaque state and action spaces
package environment

import "github.com/samuelfneumann/gotabular/timestep"

// Starter implements a distribution of starting states and samples
// starting states for environments
type Starter[S comparable] interface {
	Start() S
}

// Task implements the reward scheme for taking actions in some
// environment
type Task[S comparable, A comparable] interface {
	GetReward(state S, action A, nextState S) float64
	AtGoal(state S) bool
}

// Environment implements a simulated environment, which includes a
// Task to complete.
//
// Environments are the boundary collaborators of tabular agents. The
// state type S and action type A are chosen by the environment and
// opaque to any agent: an agent only ever feeds back states and
// actions the environment handed out. LegalActions reports the actions
// available in a state; it may be state-independent, and an empty
// result is a valid "no move available" signal.
type Environment[S comparable, A comparable] interface {
	Task[S, A]
	Starter[S]
	Reset() timestep.TimeStep[S] // Resets between episodes
	Step(action A) (timestep.TimeStep[S], bool)
	LegalActions(state S) []A
}
