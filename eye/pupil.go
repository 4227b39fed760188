package eye

import (
	"math"
)

// PupilLine is an opaque segment of the iris. Rays crossing it are blocked.
type PupilLine struct {
	A, B Point2D
}

// NewPupil returns the two iris segments at x = position that leave an opening of the
// given radius around the optical axis and extend out to the wall of the eye.
func NewPupil(position, radius, eyeRadius float64) []PupilLine {
	return []PupilLine{
		{A: Point2D{position, radius}, B: Point2D{position, eyeRadius}},
		{A: Point2D{position, -eyeRadius}, B: Point2D{position, -radius}},
	}
}

// Intersect reports where the segment from p to q crosses the pupil line
func (l PupilLine) Intersect(p, q Point2D) (Point2D, bool) {
	return intersectSegments(p, q, l.A, l.B)
}

func intersectSegments(p1, p2, q1, q2 Point2D) (Point2D, bool) {
	r := V(p2).Sub(V(p1))
	s := V(q2).Sub(V(q1))
	denom := r.Cross(s).Z
	if math.Abs(denom) < 1e-12 {
		return Point2D{}, false
	}
	d := V(q1).Sub(V(p1))
	t := d.Cross(s).Z / denom
	u := d.Cross(r).Z / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point2D{}, false
	}
	return fromV(V(p1).Add(r.MulScalar(t))), true
}

// blockedBy returns the first point along p->q where any pupil line stops the ray
func blockedBy(lines []PupilLine, p, q Point2D) (Point2D, bool) {
	best := math.Inf(1)
	var hit Point2D
	found := false
	for _, line := range lines {
		x, ok := line.Intersect(p, q)
		if !ok {
			continue
		}
		if d := math.Hypot(x.X-p.X, x.Y-p.Y); d < best {
			best, hit, found = d, x, true
		}
	}
	return hit, found
}
