package gridworld

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/samuelfneumann/gotabular/utils/floatutils"
)

const cellSize float64 = 60.0

// Render draws the gridworld to a PNG file at filename, shading each
// cell by its highest learned action value and drawing an arrow toward
// the highest-valued action. The lookup argument reports the learned
// value of a (state, action) pair and whether one exists; it should be
// a non-materializing read such as table.Table.Lookup so that drawing
// the world does not grow the table.
func (g *GridWorld) Render(filename string,
	lookup func(Coordinate, Action) (float64, bool)) error {

	width := float64(g.cols) * cellSize
	height := float64(g.rows) * cellSize

	dc := gg.NewContext(int(width), int(height))
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	// Scale shading by the largest learned magnitude
	var scale float64
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			for _, action := range Actions() {
				if value, ok := lookup(Coordinate{x, y}, action); ok {
					scale = floatutils.Max(scale, math.Abs(value))
				}
			}
		}
	}
	if scale == 0 {
		scale = 1
	}

	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			cell := Coordinate{x, y}
			px := float64(x) * cellSize
			py := float64(g.rows-1-y) * cellSize // image origin is top-left

			best, known := g.drawCell(dc, cell, px, py, scale, lookup)
			if g.AtGoal(cell) {
				dc.SetRGB(0.1, 0.1, 0.6)
				dc.DrawCircle(px+cellSize/2, py+cellSize/2, cellSize/5)
				dc.Fill()
			} else if known {
				g.drawArrow(dc, best, px, py)
			}
		}
	}

	// Grid lines
	dc.SetRGB(0.3, 0.3, 0.3)
	dc.SetLineWidth(1.0)
	for x := 0; x <= g.cols; x++ {
		dc.DrawLine(float64(x)*cellSize, 0, float64(x)*cellSize, height)
	}
	for y := 0; y <= g.rows; y++ {
		dc.DrawLine(0, float64(y)*cellSize, width, float64(y)*cellSize)
	}
	dc.Stroke()

	if err := dc.SavePNG(filename); err != nil {
		return fmt.Errorf("render: could not save image: %v", err)
	}
	return nil
}

// drawCell shades one cell by its maximum learned action value and
// returns the greedy action along with whether any value is known
func (g *GridWorld) drawCell(dc *gg.Context, cell Coordinate, px, py,
	scale float64, lookup func(Coordinate, Action) (float64, bool)) (Action,
	bool) {

	var max float64
	var best Action
	known := false

	for _, action := range Actions() {
		value, ok := lookup(cell, action)
		if !ok {
			continue
		}
		if !known || value > max {
			max = value
			best = action
		}
		known = true
	}

	if known {
		shade := floatutils.Clip(math.Abs(max)/scale, 0, 1)
		if max >= 0 {
			dc.SetRGB(1-shade, 1, 1-shade) // green for positive values
		} else {
			dc.SetRGB(1, 1-shade, 1-shade) // red for negative values
		}
		dc.DrawRectangle(px, py, cellSize, cellSize)
		dc.Fill()
	}

	return best, known
}

// drawArrow draws an arrow from the cell's center toward the greedy
// action
func (g *GridWorld) drawArrow(dc *gg.Context, action Action, px,
	py float64) {

	cx, cy := px+cellSize/2, py+cellSize/2
	length := cellSize / 3

	var dx, dy float64
	switch action {
	case Left:
		dx = -length
	case Right:
		dx = length
	case Up:
		dy = -length // up on the grid is toward smaller pixel y
	case Down:
		dy = length
	}

	dc.SetRGB(0.1, 0.1, 0.1)
	dc.SetLineWidth(2.0)
	dc.DrawLine(cx, cy, cx+dx, cy+dy)
	dc.Stroke()

	// Arrowhead
	dc.DrawCircle(cx+dx, cy+dy, 3.0)
	dc.Fill()
}
