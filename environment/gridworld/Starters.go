package gridworld

import "fmt"

// SingleStart is a start-state distribution with all probability mass
// on one cell
type SingleStart struct {
	start Coordinate
}

// NewSingleStart returns a Starter that always starts episodes at
// (x, y) in a gridworld with r rows and c columns
func NewSingleStart(x, y, r, c int) (*SingleStart, error) {
	if x < 0 || x >= c {
		return &SingleStart{}, fmt.Errorf("newsinglestart: x = %d outside "+
			"[0, %d)", x, c)
	}
	if y < 0 || y >= r {
		return &SingleStart{}, fmt.Errorf("newsinglestart: y = %d outside "+
			"[0, %d)", y, r)
	}

	return &SingleStart{Coordinate{x, y}}, nil
}

// Start returns the starting state for the next episode
func (s *SingleStart) Start() Coordinate {
	return s.start
}
