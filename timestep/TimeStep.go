// Package timestep implements timesteps of the agent-environment interaction
package timestep

import "fmt"

// StepType denotes the type of step that a TimeStep can be, either the first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single timestep in an environment. The
// state is opaque: any comparable type an environment chooses to emit.
type TimeStep[S comparable] struct {
	stepType StepType
	Reward   float64
	State    S
	Number   int
}

// New constructs a new TimeStep
func New[S comparable](t StepType, r float64, s S, n int) TimeStep[S] {
	return TimeStep[S]{t, r, s, n}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep[S]) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep[S]) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep[S]) Last() bool {
	return t.stepType == Last
}

func (t TimeStep[S]) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  State: %v  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.stepType, t.Reward, t.State, t.Number)
}
