package geom

import (
	"math"

	"github.com/lattice-cad/blockdex/internal/core/domain"
)

// Segment budgets for curved primitives. Fixed budgets keep sampling
// deterministic: the same entity always flattens to the same vertices.
const (
	circleSegments  = 64
	ellipseSegments = 72
)

// textWidthFactor approximates average glyph advance as a fraction of
// text height. Exact text metrics are out of scope; text only needs a
// footprint coarse enough to contribute to extent and identity.
const textWidthFactor = 0.6

// SamplePath flattens a polyline-family entity into its local-space
// vertex chain, reporting whether the chain is closed. Returns nil for
// entity kinds that are not paths (text, inserts, ignored kinds).
func SamplePath(e *domain.Entity) ([]domain.Point, bool) {
	switch e.Kind {
	case domain.KindPolyline, domain.KindLine:
		return e.Points, e.Closed

	case domain.KindCircle:
		pts := make([]domain.Point, 0, circleSegments)
		for i := 0; i < circleSegments; i++ {
			t := 2 * math.Pi * float64(i) / circleSegments
			pts = append(pts, domain.Point{
				X: e.Center.X + e.Radius*math.Cos(t),
				Y: e.Center.Y + e.Radius*math.Sin(t),
			})
		}
		return pts, true

	case domain.KindArc:
		start := e.StartAngle
		end := e.EndAngle
		for end < start {
			end += 2 * math.Pi
		}
		pts := make([]domain.Point, 0, circleSegments+1)
		for i := 0; i <= circleSegments; i++ {
			t := start + (end-start)*float64(i)/circleSegments
			pts = append(pts, domain.Point{
				X: e.Center.X + e.Radius*math.Cos(t),
				Y: e.Center.Y + e.Radius*math.Sin(t),
			})
		}
		return pts, false

	case domain.KindEllipse:
		start, end := e.StartParam, e.EndParam
		if e.FullEllipse {
			start, end = 0, 2*math.Pi
		}
		// Minor axis is the major axis rotated a quarter turn and
		// scaled by the axis ratio.
		minX := -e.MajorAxis.Y * e.AxisRatio
		minY := e.MajorAxis.X * e.AxisRatio
		pts := make([]domain.Point, 0, ellipseSegments+1)
		for i := 0; i <= ellipseSegments; i++ {
			t := start + (end-start)*float64(i)/ellipseSegments
			cos, sin := math.Cos(t), math.Sin(t)
			pts = append(pts, domain.Point{
				X: e.Center.X + e.MajorAxis.X*cos + minX*sin,
				Y: e.Center.Y + e.MajorAxis.Y*cos + minY*sin,
			})
		}
		return pts, false

	case domain.KindSpline:
		// No curve evaluation: fit points (when at least two exist) or
		// control points stand in as a polyline approximation.
		if len(e.Points) >= 2 {
			return e.Points, e.Closed
		}
		return e.ControlPoints, e.Closed

	case domain.KindSolid:
		return e.Points, true
	}
	return nil, false
}

// TextFootprint returns the width and height of the axis-aligned box
// approximating a text or mtext entity. Height comes from the declared
// text height; width from the character count, except that an mtext
// column wider than that wins.
func TextFootprint(e *domain.Entity) (w, h float64) {
	h = math.Max(e.Height, 0)
	w = h * textWidthFactor * float64(len([]rune(e.Value)))
	if e.Kind == domain.KindMText && e.RectWidth > w {
		w = e.RectWidth
	}
	return w, h
}
