package qlearning

import "fmt"

// Config represents a configuration for the QLearning agent
type Config struct {
	LearningRate   float64 // α, step size for value updates, in (0, 1]
	DiscountFactor float64 // γ, weighting of future rewards, in [0, 1]
	Epsilon        float64 // initial exploration rate, in [0, 1]
	EpsilonDecay   float64 // multiplicative decay applied per episode, > 0
	EpsilonMin     float64 // floor for the exploration rate, in [0, 1]
}

// DefaultConfig returns a Config with commonly used hyperparameters:
// slow value updates, strong discounting, and exploration annealed
// from fully random down to 1%.
func DefaultConfig() Config {
	return Config{
		LearningRate:   0.1,
		DiscountFactor: 0.95,
		Epsilon:        1.0,
		EpsilonDecay:   0.995,
		EpsilonMin:     0.01,
	}
}

// Validate ensures that the Config is valid. Each parameter must lie
// in its documented domain, and Epsilon may not start below EpsilonMin.
func (c Config) Validate() error {
	if c.LearningRate <= 0 || c.LearningRate > 1 {
		return &AgentError{
			Op: "validate",
			Err: fmt.Errorf("%w: learning rate must be in (0, 1], got %v",
				errInvalidConfig, c.LearningRate),
		}
	}

	if c.DiscountFactor < 0 || c.DiscountFactor > 1 {
		return &AgentError{
			Op: "validate",
			Err: fmt.Errorf("%w: discount factor must be in [0, 1], got %v",
				errInvalidConfig, c.DiscountFactor),
		}
	}

	if c.Epsilon < 0 || c.Epsilon > 1 {
		return &AgentError{
			Op: "validate",
			Err: fmt.Errorf("%w: epsilon must be in [0, 1], got %v",
				errInvalidConfig, c.Epsilon),
		}
	}

	if c.EpsilonMin < 0 || c.EpsilonMin > 1 {
		return &AgentError{
			Op: "validate",
			Err: fmt.Errorf("%w: minimum epsilon must be in [0, 1], got %v",
				errInvalidConfig, c.EpsilonMin),
		}
	}

	if c.EpsilonDecay <= 0 {
		return &AgentError{
			Op: "validate",
			Err: fmt.Errorf("%w: epsilon decay must be positive, got %v",
				errInvalidConfig, c.EpsilonDecay),
		}
	}

	if c.Epsilon < c.EpsilonMin {
		return &AgentError{
			Op: "validate",
			Err: fmt.Errorf("%w: epsilon (%v) must be >= minimum epsilon (%v)",
				errInvalidConfig, c.Epsilon, c.EpsilonMin),
		}
	}

	return nil
}
