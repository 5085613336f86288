package experiment

import (
	"github.com/samuelfneumann/progressbar"

	"github.com/samuelfneumann/gotabular/agent"
	env "github.com/samuelfneumann/gotabular/environment"
	"github.com/samuelfneumann/gotabular/experiment/checkpointer"
	"github.com/samuelfneumann/gotabular/experiment/trackers"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// ProgressBarWidth is the character width of the progress bar printed
// by Run
const ProgressBarWidth int = 25

// Online is an Experiment that runs an agent online for a fixed number
// of episodes. No offline evaluation is performed.
//
// Episodes longer than the configured step limit are cut off without a
// terminal update.
type Online[S comparable, A comparable] struct {
	environment  env.Environment[S, A]
	agent        agent.Agent[S, A]
	episodes     int
	maxSteps     int
	trackers     []trackers.Tracker[S]
	checkpointer []checkpointer.Checkpointer
	completed    int
	progress     bool
}

// NewOnline creates and returns a new online experiment of an agent a
// on environment e. The experiment runs for the argument number of
// episodes, each capped at maxSteps timesteps. The t and c parameters
// determine what data is saved and when the agent is checkpointed.
func NewOnline[S comparable, A comparable](e env.Environment[S, A],
	a agent.Agent[S, A], episodes, maxSteps int, t []trackers.Tracker[S],
	c []checkpointer.Checkpointer) *Online[S, A] {

	return &Online[S, A]{
		environment:  e,
		agent:        a,
		episodes:     episodes,
		maxSteps:     maxSteps,
		trackers:     t,
		checkpointer: c,
	}
}

// Register registers a tracker with the Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online[S, A]) Register(t trackers.Tracker[S]) {
	o.trackers = append(o.trackers, t)
}

// ShowProgress makes Run display a progress bar over episodes
func (o *Online[S, A]) ShowProgress() {
	o.progress = true
}

// RunEpisode runs a single episode of the experiment, returning
// whether the episode ended in a terminal state (as opposed to being
// cut off at the step limit or running out of legal actions)
func (o *Online[S, A]) RunEpisode() bool {
	step := o.environment.Reset()
	o.track(step)

	terminal := false
	for !step.Last() && step.Number < o.maxSteps {
		state := step.State
		actions := o.environment.LegalActions(state)

		// Select action, step in environment
		action, ok := o.agent.SelectAction(state, actions)
		if !ok {
			// No move available in this state
			break
		}
		next, done := o.environment.Step(action)
		o.track(next)

		// Update the agent with the observed transition
		nextActions := o.environment.LegalActions(next.State)
		o.agent.Update(state, action, next.Reward, next.State, nextActions,
			done)

		step = next
		terminal = done
	}

	o.agent.EndEpisode()
	o.completed++
	o.checkpoint(o.completed)

	return terminal
}

// Run runs the entire experiment for all episodes
func (o *Online[S, A]) Run() {
	var bar *progressbar.ManualProgressBar
	if o.progress {
		bar = progressbar.NewManual(ProgressBarWidth, o.episodes)
	}

	for i := 0; i < o.episodes; i++ {
		o.RunEpisode()
		if bar != nil {
			bar.Increment()
			bar.Display()
		}
	}
}

// Save saves all the data cached by the trackers to disk
func (o *Online[S, A]) Save() {
	for _, tracker := range o.trackers {
		tracker.Save()
	}
}

// track tracks the current timestep by caching its data in each tracker
func (o *Online[S, A]) track(t ts.TimeStep[S]) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}

// checkpoint saves the current state of the agent if any checkpointer
// is due
func (o *Online[S, A]) checkpoint(episode int) {
	for _, c := range o.checkpointer {
		// Checkpointing is best-effort during a run
		_ = c.Checkpoint(episode)
	}
}
