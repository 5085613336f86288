// Package experiment implements functionality for running an experiment
package experiment

import "github.com/samuelfneumann/gotabular/experiment/trackers"

// Experiment outlines structs that can run experiments. Experiments
// track environment TimeSteps, sending each TimeStep to registered
// trackers which cache the data they measure. The Save() function
// then takes all cached data and saves it to disk; it is usually
// called after an experiment has been run. The Run() method runs all
// episodes of the experiment, and RunEpisode() runs a single episode.
type Experiment[S comparable, A comparable] interface {
	Run()
	RunEpisode() bool // Returns whether the episode reached a terminal state

	// Save all tracked data to disk
	Save()

	// Register adds a new tracker to the (possibly already running)
	// experiment. Useful if you want to track data only after a
	// specified event.
	Register(t trackers.Tracker[S])
}
