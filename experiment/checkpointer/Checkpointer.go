// Package checkpointer implements periodic saving of learning agents
// during an experiment
package checkpointer

// Serializable is an object that can save itself to a file, such as a
// learning agent
type Serializable interface {
	Save(filename string) error
}

// Checkpointer checkpoints/saves serializable objects based on the
// number of completed episodes
type Checkpointer interface {
	Checkpoint(episode int) error
}
