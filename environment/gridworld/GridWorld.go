// Package gridworld implements 2D gridworld environments
package gridworld

import (
	"fmt"
	"strings"

	"github.com/samuelfneumann/gotabular/environment"
	ts "github.com/samuelfneumann/gotabular/timestep"
)

// Coordinate identifies a single cell in a gridworld. X counts columns
// from the left, Y counts rows from the bottom.
type Coordinate struct {
	X, Y int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Action represents one of the four moves available in a gridworld
type Action int

const (
	Left Action = iota
	Right
	Up
	Down
)

// Actions returns the action set of a gridworld. The set is the same
// in every cell; moves that would leave the grid keep the agent in
// place rather than being illegal.
func Actions() []Action {
	return []Action{Left, Right, Up, Down}
}

func (a Action) String() string {
	switch a {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Up:
		return "Up"
	default:
		return "Down"
	}
}

// GridWorld represents a gridworld environment
//
// A gridworld is a bounded rectangle of cells. Only the dimensions and
// the current agent position are tracked; states handed to agents are
// plain Coordinates.
type GridWorld struct {
	environment.Task[Coordinate, Action]
	environment.Starter[Coordinate]
	rows, cols  int
	position    Coordinate
	currentStep ts.TimeStep[Coordinate]
}

// New creates a new gridworld with r rows and c columns, task t, and
// start-state distribution s. The returned gridworld is reset and
// ready to use.
func New(r, c int, t environment.Task[Coordinate, Action],
	s environment.Starter[Coordinate]) (*GridWorld, ts.TimeStep[Coordinate]) {

	g := &GridWorld{
		Task:    t,
		Starter: s,
		rows:    r,
		cols:    c,
	}
	return g, g.Reset()
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.rows, g.cols
}

// Reset resets the gridworld to a starting position between episodes
func (g *GridWorld) Reset() ts.TimeStep[Coordinate] {
	g.position = g.Start()

	startStep := ts.New(ts.First, 0, g.position, 0)
	g.currentStep = startStep
	return startStep
}

// LegalActions returns the actions available in a state. Every cell
// of a gridworld offers all four moves.
func (g *GridWorld) LegalActions(_ Coordinate) []Action {
	return Actions()
}

// Step takes one action in the gridworld, returning the next timestep
// and whether that timestep is the last in the episode. Moves that
// would cross the boundary leave the position unchanged.
func (g *GridWorld) Step(action Action) (ts.TimeStep[Coordinate], bool) {
	next := g.position

	switch action {
	case Left:
		if next.X > 0 {
			next.X--
		}

	case Right:
		if next.X < g.cols-1 {
			next.X++
		}

	case Up:
		if next.Y < g.rows-1 {
			next.Y++
		}

	case Down:
		if next.Y > 0 {
			next.Y--
		}
	}

	reward := g.GetReward(g.position, action, next)
	number := g.currentStep.Number + 1
	stepType := ts.Mid
	if g.AtGoal(next) {
		stepType = ts.Last
	}

	g.position = next
	step := ts.New(stepType, reward, next, number)
	g.currentStep = step

	return step, step.Last()
}

func (g *GridWorld) String() string {
	var builder strings.Builder

	for y := g.rows - 1; y >= 0; y-- {
		for x := 0; x < g.cols; x++ {
			cell := Coordinate{x, y}
			switch {
			case cell == g.position:
				builder.WriteString("A")
			case g.AtGoal(cell):
				builder.WriteString("G")
			default:
				builder.WriteString("•")
			}
			if x < g.cols-1 {
				builder.WriteString(" ")
			}
		}
		builder.WriteString("\n")
	}

	return builder.String()
}
