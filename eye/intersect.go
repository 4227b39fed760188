package eye

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

const (
	// Number of coarse steps used to bracket the first crossing
	intersectSteps = 512
	// Bisection never runs longer than this
	intersectMaxIterations = 100
	// Bisection stops once the bracket on the ray parameter is this narrow (mm)
	intersectTolerance = 1e-12
	// Keeps a ray from re-hitting the surface it is leaving
	intersectEpsilon = 1e-9
)

// Ray is the state of a ray between surfaces: a position and a direction in radians
// measured counter-clockwise from the +x axis.
type Ray struct {
	X, Y  float64
	Theta float64
}

func (r Ray) Origin() Point2D {
	return Point2D{r.X, r.Y}
}

func (r Ray) At(t float64) Point2D {
	return Point2D{r.X + t*math.Cos(r.Theta), r.Y + t*math.Sin(r.Theta)}
}

// Intersect finds where ray first crosses s within maxDistance of its origin.
//
// The crossing is bracketed by stepping along the ray, then refined by bisection with a
// fixed iteration budget. ErrNoIntersection is returned when the ray starts beyond the
// surface, leaves the surface aperture first, or never reaches it.
func Intersect(ray Ray, s Surface, maxDistance float64) (Point2D, error) {
	cos, sin := math.Cos(ray.Theta), math.Sin(ray.Theta)
	aperture := s.Aperture()
	f := func(t float64) (float64, bool) {
		y := ray.Y + t*sin
		if math.Abs(y) >= aperture {
			return 0, false
		}
		return ray.X + t*cos - s.X(y), true
	}

	lo := intersectEpsilon
	flo, ok := f(lo)
	if !ok || flo >= 0 {
		return Point2D{}, fmt.Errorf("ray at (%.3f, %.3f): %w", ray.X, ray.Y, ErrNoIntersection)
	}

	// Keep every sample inside the aperture so a crossing near the rim is not mistaken
	// for the ray missing the surface.
	limit := maxDistance
	if sin > 0 {
		limit = math.Min(limit, (aperture-ray.Y)/sin)
	} else if sin < 0 {
		limit = math.Min(limit, (-aperture-ray.Y)/sin)
	}
	limit *= 1 - 1e-12

	hi := math.NaN()
	step := (limit - intersectEpsilon) / intersectSteps
	for i := 1; i <= intersectSteps && step > 0; i++ {
		t := intersectEpsilon + float64(i)*step
		ft, ok := f(t)
		if !ok {
			return Point2D{}, fmt.Errorf("ray at (%.3f, %.3f) leaves aperture %.3f: %w", ray.X, ray.Y, aperture, ErrNoIntersection)
		}
		if ft >= 0 {
			hi = t
			break
		}
		lo = t
	}
	if math.IsNaN(hi) {
		return Point2D{}, fmt.Errorf("ray at (%.3f, %.3f) within %.1f: %w", ray.X, ray.Y, maxDistance, ErrNoIntersection)
	}

	for i := 0; i < intersectMaxIterations && !scalar.EqualWithinAbs(lo, hi, intersectTolerance); i++ {
		mid := (lo + hi) / 2
		fm, ok := f(mid)
		if !ok {
			return Point2D{}, fmt.Errorf("ray at (%.3f, %.3f): %w", ray.X, ray.Y, ErrNoIntersection)
		}
		if fm < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return ray.At((lo + hi) / 2), nil
}
