// Package viz renders solved trajectories as terminal graphics.
package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/kinsolve/internal/kinematics"
)

// HeightProfile plots height against time with asciigraph.
func HeightProfile(pts []kinematics.Point, width, height int) string {
	if len(pts) == 0 {
		return ""
	}
	data := make([]float64, len(pts))
	for i, p := range pts {
		data[i] = p.Y
	}
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("height vs time (0 .. %.2fs)", pts[len(pts)-1].T)),
	)
}

// Trajectory draws the x/y flight path on a framed ASCII canvas. The
// launch point is marked with ●, later samples shade from '.' to 'o'.
func Trajectory(pts []kinematics.Point, width, height int) string {
	if len(pts) == 0 || width < 10 || height < 4 {
		return ""
	}

	xMin, xMax := pts[0].X, pts[0].X
	yMin, yMax := pts[0].Y, pts[0].Y
	for _, p := range pts {
		if p.X < xMin {
			xMin = p.X
		}
		if p.X > xMax {
			xMax = p.X
		}
		if p.Y < yMin {
			yMin = p.Y
		}
		if p.Y > yMax {
			yMax = p.Y
		}
	}
	xRange := xMax - xMin
	yRange := yMax - yMin
	if xRange == 0 {
		xRange = 1
	}
	if yRange == 0 {
		yRange = 1
	}

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
		for j := range canvas[i] {
			canvas[i][j] = ' '
		}
	}

	for i, p := range pts {
		px := int(float64(width-1) * (p.X - xMin) / xRange)
		py := int(float64(height-1) * (p.Y - yMin) / yRange)
		py = height - 1 - py
		if px < 0 || px >= width || py < 0 || py >= height {
			continue
		}
		if i < len(pts)/2 {
			canvas[py][px] = '.'
		} else {
			canvas[py][px] = 'o'
		}
	}

	// launch point drawn last so it wins the cell
	lx := int(float64(width-1) * (pts[0].X - xMin) / xRange)
	ly := height - 1 - int(float64(height-1)*(pts[0].Y-yMin)/yRange)
	canvas[ly][lx] = '●'

	var b strings.Builder
	fmt.Fprintf(&b, "  %8.2f ┌%s┐\n", yMax, strings.Repeat("─", width))
	for i := range canvas {
		if i == height/2 {
			fmt.Fprintf(&b, "  %8.2f │", (yMax+yMin)/2)
		} else {
			b.WriteString("           │")
		}
		b.WriteString(string(canvas[i]))
		b.WriteString("│\n")
	}
	fmt.Fprintf(&b, "  %8.2f └%s┘\n", yMin, strings.Repeat("─", width))
	fmt.Fprintf(&b, "           %-.2f%s%.2f\n", xMin, strings.Repeat(" ", max(1, width-12)), xMax)
	b.WriteString("           x (m) →, y (m) ↑, ● launch\n")
	return b.String()
}
