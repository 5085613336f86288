package qlearning

import "errors"

// AgentError implements errors unique to a Q-Learning agent.
type AgentError struct {
	Op  string
	Err error
}

// Error satisifes the error interface
func (e *AgentError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *AgentError) Unwrap() error {
	return e.Err
}

var errInvalidConfig error = errors.New("invalid configuration")

var errBadFormat error = errors.New("unrecognized save format")

// IsConfigError returns whether or not an error reports that an agent
// was constructed with a parameter outside its documented domain.
func IsConfigError(err error) bool {
	return errors.Is(err, errInvalidConfig)
}

// IsFormatError returns whether or not an error reports that a saved
// agent file is missing required fields or has a mismatched schema.
func IsFormatError(err error) bool {
	return errors.Is(err, errBadFormat)
}
