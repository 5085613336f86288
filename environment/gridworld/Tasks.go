package gridworld

import "fmt"

// Goal represents the task of reaching goal states in a GridWorld.
// Transitions into a goal cell earn the goal reward; every other
// transition earns the per-timestep reward.
type Goal struct {
	goals          map[Coordinate]bool
	r, c           int // total rows and columns in environment
	timeStepReward float64
	goalReward     float64
}

// NewGoal creates and returns a new goal task over the argument goal
// cells, given that the gridworld has r rows and c columns. The tr
// and gr parameters are the per-timestep and goal rewards.
func NewGoal(goals []Coordinate, r, c int, tr, gr float64) (*Goal, error) {
	if len(goals) == 0 {
		return &Goal{}, fmt.Errorf("newgoal: no goal cells given")
	}

	cells := make(map[Coordinate]bool, len(goals))
	for i, goal := range goals {
		// Ensure that the goal is within the proper bounds
		if goal.X < 0 || goal.X >= c {
			return &Goal{}, fmt.Errorf("newgoal: goals[%d].X = %d outside "+
				"[0, %d)", i, goal.X, c)
		}
		if goal.Y < 0 || goal.Y >= r {
			return &Goal{}, fmt.Errorf("newgoal: goals[%d].Y = %d outside "+
				"[0, %d)", i, goal.Y, r)
		}
		cells[goal] = true
	}

	return &Goal{
		goals:          cells,
		r:              r,
		c:              c,
		timeStepReward: tr,
		goalReward:     gr,
	}, nil
}

// GetReward returns the reward for transitioning to nextState
func (g *Goal) GetReward(_ Coordinate, _ Action, nextState Coordinate) float64 {
	if g.goals[nextState] {
		return g.goalReward
	}
	return g.timeStepReward
}

// AtGoal returns whether the argument state is a goal state
func (g *Goal) AtGoal(state Coordinate) bool {
	return g.goals[state]
}
