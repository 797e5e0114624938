package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/kinsolve/internal/kinematics"
)

// TrajectorySVG renders a trajectory as an SVG path. Pixel coordinates
// are scaled to the point bounds with 10% padding on each side, and the
// y axis is flipped so height increases upward.
func TrajectorySVG(pts []kinematics.Point, width, height int, strokeColor string) string {
	if len(pts) < 2 {
		return ""
	}

	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range pts {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// TrajectorySVGFile writes the SVG rendering to path.
func TrajectorySVGFile(path string, pts []kinematics.Point, width, height int, strokeColor string) error {
	svg := TrajectorySVG(pts, width, height, strokeColor)
	if svg == "" {
		return fmt.Errorf("not enough points to render")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
