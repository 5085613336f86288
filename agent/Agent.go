// Package agent defines an agent interface
package agent

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which updates value estimates from
// environmental transitions, and a Policy, which chooses actions in
// each state. The Policy chooses which actions are taken, and the
// Learner uses the resulting transitions to improve the Policy.
//
// Agents are generic over the state type S and action type A. Both are
// opaque to the surrounding machinery: an agent never constructs
// states or actions itself, it only receives them from an environment.
type Agent[S comparable, A comparable] interface {
	Learner[S, A]
	Policy[S, A]
}

// Learner implements a learning algorithm that defines how value
// estimates are updated.
type Learner[S comparable, A comparable] interface {
	// Update performs a single update from one environmental
	// transition. The nextActions argument holds the legal actions in
	// nextState and done indicates whether the transition was terminal.
	Update(state S, action A, reward float64, nextState S, nextActions []A,
		done bool)

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. The second return
// value of SelectAction reports whether an action was selected at all:
// an empty legal-action set is a valid input for which no action
// exists, not an error.
type Policy[S comparable, A comparable] interface {
	SelectAction(state S, actions []A) (A, bool)
	Eval()        // Set policy to evaluation mode
	Train()       // Set policy to training mode
	IsEval() bool // Indicates if in evaluation mode
}
