package eye

import (
	"github.com/fogleman/pt/pt"
)

// V lifts a point in the axial cross-section into pt's 3D space, on the z = 0 plane
func V(p Point2D) pt.Vector {
	return pt.Vector{X: p.X, Y: p.Y, Z: 0}
}

func fromV(v pt.Vector) Point2D {
	return Point2D{v.X, v.Y}
}
