package eye

import (
	"math"
)

// ParallelRays returns rays travelling along the axis from x at each height, as from an
// object at infinity.
func ParallelRays(x float64, heights []float64) []Ray {
	rays := make([]Ray, len(heights))
	for i, h := range heights {
		rays[i] = Ray{X: x, Y: h}
	}
	return rays
}

// PointSourceRays returns rays leaving object that would pass height h at the corneal apex
// plane (x = 0), for each h in heights. Rays start where they cross startX so all of them
// begin on the same vertical line; if object is already at or past startX they start at
// the object.
func PointSourceRays(object Point2D, startX float64, heights []float64) []Ray {
	rays := make([]Ray, len(heights))
	for i, h := range heights {
		theta := math.Atan2(h-object.Y, -object.X)
		start := object
		if startX > object.X {
			start = Point2D{startX, object.Y + (startX-object.X)*math.Tan(theta)}
		}
		rays[i] = Ray{X: start.X, Y: start.Y, Theta: theta}
	}
	return rays
}
