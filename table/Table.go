// Package table implements sparse value tables for tabular
// reinforcement learning algorithms.
//
// A value table stores one action-value estimate per (state, action)
// pair. States and actions are opaque to the table: any comparable
// type can key it, and the table never enumerates an action set on
// its own. Unseen pairs default to 0.0, and reading an unseen pair
// stores that default so that later reads return the stored value.
package table

import (
	"bytes"
	"encoding/gob"
	"fmt"
)

// Table is a sparse mapping from states to action-value estimates.
//
// Reads through Get, Max, and ActionValues materialize any entry they
// touch: after the call, the probed (state, action) pairs exist in the
// table with value 0.0 if they did not exist before. Lookup, States,
// and Pairs never materialize.
//
// If S or A is instantiated with an interface type, a dynamic value
// that is not hashable panics inside the underlying map. The panic is
// a caller contract violation and is not recovered or translated.
//
// A Table is exclusively owned by one agent and is not safe for
// concurrent use.
type Table[S comparable, A comparable] struct {
	values map[S]map[A]float64
}

// New returns a new, empty Table
func New[S comparable, A comparable]() *Table[S, A] {
	return &Table[S, A]{values: make(map[S]map[A]float64)}
}

// Get returns the value estimate for the (state, action) pair,
// inserting and returning 0.0 if the pair has not been seen before.
func (t *Table[S, A]) Get(state S, action A) float64 {
	actions, ok := t.values[state]
	if !ok {
		actions = make(map[A]float64)
		t.values[state] = actions
	}

	value, ok := actions[action]
	if !ok {
		actions[action] = 0.0
	}
	return value
}

// Set stores a value estimate for the (state, action) pair, creating
// the state's sub-map if it does not exist yet.
func (t *Table[S, A]) Set(state S, action A, value float64) {
	actions, ok := t.values[state]
	if !ok {
		actions = make(map[A]float64)
		t.values[state] = actions
	}
	actions[action] = value
}

// Max returns the maximum value estimate in state over the argument
// actions. If actions is empty, Max returns 0.0. Every argument action
// is probed with Get, so unseen pairs are materialized even when they
// do not achieve the maximum.
func (t *Table[S, A]) Max(state S, actions []A) float64 {
	if len(actions) == 0 {
		return 0.0
	}

	max := t.Get(state, actions[0])
	for _, action := range actions[1:] {
		if value := t.Get(state, action); value > max {
			max = value
		}
	}
	return max
}

// ActionValues returns the value estimate of each argument action in
// state, in the same order as the argument actions. Every action is
// probed with Get, materializing unseen pairs.
func (t *Table[S, A]) ActionValues(state S, actions []A) []float64 {
	values := make([]float64, len(actions))
	for i, action := range actions {
		values[i] = t.Get(state, action)
	}
	return values
}

// Lookup returns the stored value estimate for the (state, action)
// pair and whether the pair exists. Lookup never materializes entries.
func (t *Table[S, A]) Lookup(state S, action A) (float64, bool) {
	actions, ok := t.values[state]
	if !ok {
		return 0.0, false
	}
	value, ok := actions[action]
	return value, ok
}

// States returns the number of states with at least one stored entry
func (t *Table[S, A]) States() int {
	return len(t.values)
}

// Pairs returns the total number of stored (state, action) entries
func (t *Table[S, A]) Pairs() int {
	pairs := 0
	for _, actions := range t.values {
		pairs += len(actions)
	}
	return pairs
}

// GobEncode implements the gob.GobEncoder interface so that a Table
// can be serialized exactly, entry for entry.
func (t *Table[S, A]) GobEncode() ([]byte, error) {
	var buffer bytes.Buffer
	enc := gob.NewEncoder(&buffer)
	if err := enc.Encode(t.values); err != nil {
		return nil, fmt.Errorf("gobencode: could not encode entries: %v", err)
	}
	return buffer.Bytes(), nil
}

// GobDecode implements the gob.GobDecoder interface. The decoded
// entries fully replace the Table's current contents.
func (t *Table[S, A]) GobDecode(data []byte) error {
	dec := gob.NewDecoder(bytes.NewReader(data))

	values := make(map[S]map[A]float64)
	if err := dec.Decode(&values); err != nil {
		return fmt.Errorf("gobdecode: could not decode entries: %v", err)
	}

	t.values = values
	return nil
}
