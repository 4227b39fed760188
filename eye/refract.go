package eye

import (
	"fmt"
)

// Refract carries ray across surface s from medium n1 into medium n2.
//
// The returned ray starts at the crossing point and points along the refracted direction.
// Errors wrap ErrNoIntersection or ErrTotalInternalReflection.
func Refract(ray Ray, n1, n2 float64, s Surface, maxDistance float64) (Ray, error) {
	_, out, err := refractStep(ray, n1, n2, s, maxDistance)
	return out, err
}

// refractStep is Refract that also reports the crossing point, which is still valid when
// the ray is totally internally reflected there.
func refractStep(ray Ray, n1, n2 float64, s Surface, maxDistance float64) (Point2D, Ray, error) {
	hit, err := Intersect(ray, s, maxDistance)
	if err != nil {
		return Point2D{}, Ray{}, err
	}
	normal := NormalAngle(s, hit.Y)
	incident := ray.Theta - normal
	refracted, err := Snell(n1, n2, incident)
	if err != nil {
		return hit, Ray{}, fmt.Errorf("at (%.3f, %.3f): %w", hit.X, hit.Y, err)
	}
	verifySnellLaw(n1, n2, incident, refracted)
	return hit, Ray{X: hit.X, Y: hit.Y, Theta: normal + refracted}, nil
}
