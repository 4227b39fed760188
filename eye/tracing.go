package eye

import (
	"errors"
)

// TerminalReason says why a trace stopped
type TerminalReason int

const (
	// The ray crossed every surface and landed on the retina
	ReachedRetina TerminalReason = iota
	// The ray hit the iris
	PupilBlocked
	// The ray could not leave a denser medium at the last surface it reached
	TotalInternalReflection
	// The ray missed the next surface within the search bound
	NoIntersection
)

func (r TerminalReason) String() string {
	switch r {
	case ReachedRetina:
		return "retina"
	case PupilBlocked:
		return "pupil"
	case TotalInternalReflection:
		return "total internal reflection"
	case NoIntersection:
		return "no intersection"
	default:
		return "unknown"
	}
}

func (r TerminalReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// TraceResult is the outcome of tracing one ray through the eye.
//
// Path always holds at least the starting point. Err is set only for
// TotalInternalReflection and NoIntersection and says where the ray failed.
type TraceResult struct {
	Start  Ray
	Path   RayPath
	Reason TerminalReason
	Err    error
}

// Complete is true when the ray made it to the retina
func (r TraceResult) Complete() bool {
	return r.Reason == ReachedRetina
}

func reasonFor(err error) TerminalReason {
	if errors.Is(err, ErrTotalInternalReflection) {
		return TotalInternalReflection
	}
	return NoIntersection
}

// Trace follows ray through every surface of the model and on to the retina.
//
// Each leg of the journey is checked against the pupil lines first; a blocked ray ends at
// the point where it meets the iris. A ray that misses a surface or is totally internally
// reflected ends at the last point it reached. None of these abort the caller: the partial
// path is returned with the reason it stopped.
func (m *EyeModel) Trace(ray Ray, pupil []PupilLine) TraceResult {
	result := TraceResult{
		Start: ray,
		Path:  RayPath{ray.Origin()},
	}
	current := ray

	// stop ends the trace at the iris if the leg from the current point to `to` crosses it
	stop := func(to Point2D) bool {
		if p, blocked := blockedBy(pupil, current.Origin(), to); blocked {
			result.Path = append(result.Path, p)
			result.Reason = PupilBlocked
			return true
		}
		return false
	}

	for i, s := range m.surfaces {
		bound := m.searchBound(current.Origin())
		hit, next, err := refractStep(current, m.indices[i], m.indices[i+1], s, bound)
		if errors.Is(err, ErrNoIntersection) {
			if stop(current.At(bound)) {
				return result
			}
			result.Reason = NoIntersection
			result.Err = &SurfaceError{Index: i, Name: m.names[i], Err: err}
			return result
		}
		if stop(hit) {
			return result
		}
		result.Path = append(result.Path, hit)
		if err != nil {
			result.Reason = reasonFor(err)
			result.Err = &SurfaceError{Index: i, Name: m.names[i], Err: err}
			return result
		}
		current = next
	}

	bound := m.searchBound(current.Origin())
	hit, err := Intersect(current, m.retina, bound)
	if err != nil {
		if stop(current.At(bound)) {
			return result
		}
		result.Reason = NoIntersection
		result.Err = &SurfaceError{Index: len(m.surfaces), Name: "retina", Err: err}
		return result
	}
	if stop(hit) {
		return result
	}
	result.Path = append(result.Path, hit)
	result.Reason = ReachedRetina
	return result
}
