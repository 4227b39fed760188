package eye

import (
	"fmt"
	"math"
)

// Snell returns the refracted angle, measured from the surface normal, of a ray that meets
// the boundary between media n1 and n2 at theta1 radians from the normal.
//
// ErrTotalInternalReflection is returned when n1/n2*sin(theta1) falls outside [-1, 1].
func Snell(n1, n2, theta1 float64) (float64, error) {
	if !(n1 > 0) || !(n2 > 0) {
		return 0, fmt.Errorf("snell(%v, %v): %w", n1, n2, ErrInvalidIndex)
	}
	if n1 == n2 {
		return theta1, nil
	}
	s := n1 / n2 * math.Sin(theta1)
	if math.Abs(s) > 1 {
		return 0, fmt.Errorf("snell(%v, %v, %v): %w", n1, n2, theta1, ErrTotalInternalReflection)
	}
	return math.Asin(s), nil
}

// CriticalAngle is the smallest incident angle that is totally internally reflected going
// from n1 into n2. ok is false when n1 <= n2, where no such angle exists.
func CriticalAngle(n1, n2 float64) (angle float64, ok bool) {
	if n1 <= n2 {
		return 0, false
	}
	return math.Asin(n2 / n1), true
}
