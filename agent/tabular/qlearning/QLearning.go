// Package qlearning implements the tabular Q-Learning algorithm.
//
// Q-Learning is an off-policy temporal difference learning algorithm
// that learns the optimal action-value function Q*(s, a). Estimates
// are updated from single transitions using the Bellman optimality
// equation:
//
//	Q(s, a) ← Q(s, a) + α * [r + γ * max(Q(s', a')) - Q(s, a)]
//
// The tabular agent places no structural constraints on states or
// actions beyond comparability: the value table is keyed directly by
// the (state, action) pairs the environment produces, and unseen pairs
// default to an estimate of 0.0.
//
// A QLearning agent is a strictly sequential computation. It owns its
// value table exclusively and must not be shared between goroutines
// without external serialization of all mutating calls.
package qlearning

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gotabular/table"
	"github.com/samuelfneumann/gotabular/utils/floatutils"
)

// QLearning implements the tabular Q-Learning algorithm. It satisfies
// the agent.Agent interface for any comparable state and action types.
type QLearning[S comparable, A comparable] struct {
	table *table.Table[S, A]

	learningRate   float64
	discountFactor float64
	epsilon        float64
	epsilonDecay   float64
	epsilonMin     float64

	eval    bool
	source  rand.Source
	uniform distuv.Uniform
}

// New creates a new QLearning agent with the argument configuration.
// The agent's value table starts empty. An out-of-domain parameter
// returns a configuration error (see IsConfigError) and no agent.
func New[S comparable, A comparable](c Config,
	seed uint64) (*QLearning[S, A], error) {

	if err := c.Validate(); err != nil {
		return nil, &AgentError{Op: "new", Err: err}
	}

	source := rand.NewSource(seed)

	return &QLearning[S, A]{
		table:          table.New[S, A](),
		learningRate:   c.LearningRate,
		discountFactor: c.DiscountFactor,
		epsilon:        c.Epsilon,
		epsilonDecay:   c.EpsilonDecay,
		epsilonMin:     c.EpsilonMin,
		source:         source,
		uniform:        distuv.Uniform{Min: 0.0, Max: 1.0, Src: source},
	}, nil
}

// QValue returns the value estimate for the (state, action) pair,
// materializing the entry at 0.0 if the pair has not been seen.
func (q *QLearning[S, A]) QValue(state S, action A) float64 {
	return q.table.Get(state, action)
}

// MaxQValue returns the maximum value estimate in state over the legal
// actions, or 0.0 if actions is empty. Every legal action is probed,
// so unseen (state, action) pairs are materialized at 0.0 even when
// they are never selected.
func (q *QLearning[S, A]) MaxQValue(state S, actions []A) float64 {
	return q.table.Max(state, actions)
}

// BestAction returns the action with the highest value estimate in
// state. Ties at the exact maximum are broken uniformly at random, so
// that early all-zero estimates do not deterministically favour the
// action the environment happens to list first. The second return
// value is false when actions is empty, in which case no action
// exists to return.
func (q *QLearning[S, A]) BestAction(state S, actions []A) (A, bool) {
	var none A
	if len(actions) == 0 {
		return none, false
	}

	values := q.table.ActionValues(state, actions)
	_, indices := floatutils.MaxSlice(values)

	if len(indices) == 1 {
		return actions[indices[0]], true
	}
	return actions[indices[q.uniformIndex(len(indices))]], true
}

// SelectAction selects an action from an ε-greedy policy: with
// probability ε a uniformly random legal action is returned, otherwise
// the result of BestAction. In evaluation mode the policy is fully
// greedy regardless of the current ε. The second return value is false
// when actions is empty.
func (q *QLearning[S, A]) SelectAction(state S, actions []A) (A, bool) {
	var none A
	if len(actions) == 0 {
		return none, false
	}

	epsilon := q.epsilon
	if q.eval {
		epsilon = 0.0
	}

	// Exploration: random action
	if q.uniform.Rand() < epsilon {
		return actions[q.uniformIndex(len(actions))], true
	}

	// Exploitation: best action
	return q.BestAction(state, actions)
}

// Update updates the value estimate of the (state, action) pair from a
// single environmental transition using the Q-Learning update rule.
// For terminal transitions (done == true) the target is the reward
// alone: nextState and nextActions contribute nothing, whatever they
// contain. NaN or Inf rewards and estimates propagate uncorrected.
func (q *QLearning[S, A]) Update(state S, action A, reward float64,
	nextState S, nextActions []A, done bool) {

	current := q.table.Get(state, action)

	var target float64
	if done {
		target = reward
	} else {
		maxNext := q.table.Max(nextState, nextActions)
		target = reward + q.discountFactor*maxNext
	}

	q.table.Set(state, action, current+q.learningRate*(target-current))
}

// DecayEpsilon decays the exploration rate once, setting
// ε = max(εmin, ε * εdecay). It should be called at the end of each
// episode to gradually shift from exploration to exploitation.
//
// Only the εmin floor is enforced: a decay factor above 1 grows ε past
// its construction-time upper bound of 1 without re-clamping.
func (q *QLearning[S, A]) DecayEpsilon() {
	q.epsilon = floatutils.Max(q.epsilonMin, q.epsilon*q.epsilonDecay)
}

// EndEpisode performs cleanup at the end of an episode by decaying the
// exploration rate.
func (q *QLearning[S, A]) EndEpisode() {
	q.DecayEpsilon()
}

// Eval sets the agent to evaluation mode, where actions are selected
// fully greedily. The learned exploration rate is left untouched.
func (q *QLearning[S, A]) Eval() {
	q.eval = true
}

// Train sets the agent to training mode, restoring ε-greedy selection
func (q *QLearning[S, A]) Train() {
	q.eval = false
}

// IsEval indicates if the agent is in evaluation mode
func (q *QLearning[S, A]) IsEval() bool {
	return q.eval
}

// Epsilon returns the current exploration rate
func (q *QLearning[S, A]) Epsilon() float64 {
	return q.epsilon
}

// Stats holds statistics about an agent's learning progress
type Stats struct {
	StatesVisited    int
	StateActionPairs int
	CurrentEpsilon   float64
	LearningRate     float64
	DiscountFactor   float64
}

// Stats returns statistics about the agent's learning progress. It is
// a pure read: only entries already stored in the value table are
// counted and nothing is materialized.
func (q *QLearning[S, A]) Stats() Stats {
	return Stats{
		StatesVisited:    q.table.States(),
		StateActionPairs: q.table.Pairs(),
		CurrentEpsilon:   q.epsilon,
		LearningRate:     q.learningRate,
		DiscountFactor:   q.discountFactor,
	}
}

// Table returns the agent's value table. The table is exclusively
// owned by the agent; callers should restrict themselves to the
// non-materializing reads when introspecting a learning agent.
func (q *QLearning[S, A]) Table() *table.Table[S, A] {
	return q.table
}

func (q *QLearning[S, A]) String() string {
	return fmt.Sprintf("QLearning(learning rate=%v, discount factor=%v, "+
		"epsilon=%.3f)", q.learningRate, q.discountFactor, q.epsilon)
}

// uniformIndex samples an index in [0, n) uniformly at random using a
// categorical distribution with equal weights.
func (q *QLearning[S, A]) uniformIndex(n int) int {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1.0 / float64(n)
	}

	dist := distuv.NewCategorical(weights, q.source)
	return int(dist.Rand())
}
