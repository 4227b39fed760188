package eye

import (
	"math"
)

// Surface is one refracting boundary in the axial cross-section of the eye.
//
// X maps a vertical offset y to the horizontal position of the boundary, Slope is dx/dy at
// the same y. Both are only meaningful for |y| < Aperture().
type Surface interface {
	X(y float64) float64
	Slope(y float64) float64
	Aperture() float64
}

// CircularSurface is an arc of a circle centred on the optical axis at x = Offset.
//
// The sign of Radius picks the half of the circle: positive puts the arc on the +x side of
// its centre, so the apex sits at Offset + Radius.
//
// Outside the circle (|y| >= |Radius|) the radicand is clamped to zero: X returns Offset and
// Slope returns a signed infinity. Intersect never accepts points there.
type CircularSurface struct {
	Radius float64
	Offset float64
}

func NewCircularSurface(radius, offset float64) CircularSurface {
	return CircularSurface{Radius: radius, Offset: offset}
}

// SurfaceAtVertex builds a circular surface from its apex position and its radius of
// curvature in the usual optical convention: positive when the centre of curvature lies
// on the +x side of the vertex, i.e. the surface is convex toward incoming light.
func SurfaceAtVertex(vertex, radius float64) CircularSurface {
	return CircularSurface{Radius: -radius, Offset: vertex + radius}
}

func (c CircularSurface) sign() float64 {
	return math.Copysign(1, c.Radius)
}

func (c CircularSurface) X(y float64) float64 {
	rad := math.Max(c.Radius*c.Radius-y*y, 0)
	return c.Offset + c.sign()*math.Sqrt(rad)
}

func (c CircularSurface) Slope(y float64) float64 {
	rad := c.Radius*c.Radius - y*y
	if rad <= 0 {
		if y == 0 {
			return 0
		}
		return math.Inf(int(-c.sign() * math.Copysign(1, y)))
	}
	return -c.sign() * y / math.Sqrt(rad)
}

func (c CircularSurface) Aperture() float64 {
	return math.Abs(c.Radius)
}

// Vertex is the apex of the arc on the optical axis
func (c CircularSurface) Vertex() float64 {
	return c.X(0)
}

// PlaneSurface is a flat boundary perpendicular to the optical axis
type PlaneSurface struct {
	Position   float64
	HalfHeight float64
}

func (p PlaneSurface) X(float64) float64 {
	return p.Position
}

func (p PlaneSurface) Slope(float64) float64 {
	return 0
}

func (p PlaneSurface) Aperture() float64 {
	return p.HalfHeight
}

// Derivative returns the slope evaluator of s as a standalone function.
func Derivative(s Surface) func(y float64) float64 {
	return s.Slope
}

// NormalAngle is the direction, in radians from the +x axis, of the surface normal at y.
// The normal points toward +x.
func NormalAngle(s Surface, y float64) float64 {
	return -math.Atan(s.Slope(y))
}

// SampleSurface returns points along s between -limit and limit, clipped to its aperture.
func SampleSurface(s Surface, limit float64, n int) RayPath {
	if a := s.Aperture(); a < limit {
		limit = a
	}
	if n < 2 {
		n = 2
	}
	path := make(RayPath, 0, n)
	for i := 0; i < n; i++ {
		y := -limit + 2*limit*float64(i)/float64(n-1)
		path = append(path, Point2D{X: s.X(y), Y: y})
	}
	return path
}
