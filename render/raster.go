package render

import (
	"math"

	"github.com/lixenwraith/bounce/core"
)

// segmentBandRows is the vertical thickness, in pixel rows, of a drawn
// segment: cells within this distance under the exact line are filled.
const segmentBandRows = 2.0

// DrawCircle fills every cell whose center lies within the circle's
// radius (inclusive). The scan is per-pixel brute force over the clipped
// bounding box; the grid is small enough that nothing smarter pays off.
func DrawCircle(g *Grid, c core.Circle) {
	startX := max(0, int(math.Floor(c.Center.X-c.Radius)))
	endX := min(g.Width()-1, int(math.Ceil(c.Center.X+c.Radius)))
	startY := max(0, int(math.Floor(c.Center.Y-c.Radius)))
	endY := min(g.Height()-1, int(math.Ceil(c.Center.Y+c.Radius)))

	rSq := c.Radius * c.Radius
	for y := startY; y <= endY; y++ {
		dy := float64(y) + 0.5 - c.Center.Y
		for x := startX; x <= endX; x++ {
			dx := float64(x) + 0.5 - c.Center.X
			if dx*dx+dy*dy <= rSq {
				g.Set(x, y, Foreground)
			}
		}
	}
}

// DrawSegment fills a band of segmentBandRows cells hugging the segment's
// line across the segment's bounding box. The line function is evaluated
// for the full line at each column; confinement to the segment comes from
// the box itself, which spans exactly the endpoint rows and columns.
func DrawSegment(g *Grid, s core.Segment) {
	startX := max(0, int(math.Ceil(s.MinX())))
	endX := min(g.Width()-1, int(math.Floor(s.MaxX())))
	startY := max(0, int(math.Ceil(math.Min(s.Start.Y, s.End.Y))))
	endY := min(g.Height()-1, int(math.Floor(math.Max(s.Start.Y, s.End.Y))))

	for y := startY; y <= endY; y++ {
		for x := startX; x <= endX; x++ {
			d := s.HeightAt(float64(x)) - float64(y)
			if d >= -segmentBandRows && d <= 0 {
				g.Set(x, y, Foreground)
			}
		}
	}
}
