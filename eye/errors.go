package eye

import (
	"errors"
	"fmt"
)

var (
	// ErrTotalInternalReflection means Snell's Law has no real solution for the incident angle.
	ErrTotalInternalReflection = errors.New("total internal reflection")
	// ErrNoIntersection means the ray never meets the surface inside the search bound.
	ErrNoIntersection = errors.New("no intersection found")
	// ErrInvalidIndex means a refractive index was zero, negative or NaN.
	ErrInvalidIndex = errors.New("refractive index must be positive")
	// ErrInvalidConfiguration is returned when an EyeModel cannot be built.
	ErrInvalidConfiguration = errors.New("invalid eye configuration")
)

// SurfaceError records which surface a trace failed at
type SurfaceError struct {
	Index int
	Name  string
	Err   error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("surface %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *SurfaceError) Unwrap() error {
	return e.Err
}
