package trackers

import (
	"fmt"

	"github.com/samuelfneumann/gotabular/timestep"
)

// Return tracks and saves the episodic return in an experiment. When
// an environment returns a TimeStep, this Tracker will extract the
// reward and accumulate the return for each episode in the experiment.
//
// Note: An episode must finish for this Tracker to save its data.
// If the last episode in an experiment does not finish, that episode's
// return will not be saved.
type Return[S comparable] struct {
	lastTimeStep   int
	currentReturn  float64
	episodeReturns []float64
	filename       string
}

// NewReturn creates and returns a new *Return Tracker which will save
// its data at the specified location filename
func NewReturn[S comparable](filename string) *Return[S] {
	return &Return[S]{lastTimeStep: -1, filename: filename}
}

// Track tracks the rewards seen on a timestep. By calling this method
// on every timestep, the Tracker will accumulate each episode's
// return separately, detecting episode boundaries from the timestep
// numbering.
//
// Track panics if it is called for non-sequential timesteps
func (r *Return[S]) Track(step timestep.TimeStep[S]) {
	if step.First() {
		// A cut-off episode never reaches its last timestep; its
		// partial return is discarded
		r.lastTimeStep = 0
		r.currentReturn = 0.0
		return
	}

	// Ensure that Track is called on sequential timesteps
	if r.lastTimeStep+1 != step.Number {
		msg := fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number)
		panic(msg)
	}

	r.currentReturn += step.Reward
	r.lastTimeStep = step.Number

	if step.Last() {
		// Episode has ended, cache the return and begin tracking the
		// return for a new episode
		r.episodeReturns = append(r.episodeReturns, r.currentReturn)
		r.currentReturn = 0.0
		r.lastTimeStep = -1
	}
}

// Returns returns the episodic returns tracked so far
func (r *Return[S]) Returns() []float64 {
	return r.episodeReturns
}

// Save saves the data tracked by the Return Tracker to disk
func (r *Return[S]) Save() {
	saveFloats(r.filename, r.episodeReturns)
}
