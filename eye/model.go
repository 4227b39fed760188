package eye

import (
	"errors"
	"fmt"
	"math"
)

// Defaults follow Le Grand's full theoretical eye. Distances are in millimetres along the
// optical axis, measured from the apex of the cornea.
const (
	// Apex of the anterior corneal surface
	DefaultCorneaFrontVertex = 0.0
	// Curvature of the anterior corneal surface; the strongest refracting surface of the eye
	DefaultCorneaFrontRadius = 7.8
	// Apex of the posterior corneal surface, i.e. central corneal thickness
	DefaultCorneaBackVertex = 0.55
	// Curvature of the posterior corneal surface
	DefaultCorneaBackRadius = 6.5
	// Apex of the anterior lens surface, i.e. anterior chamber depth
	DefaultLensFrontVertex = 3.6
	// Curvature of the anterior lens surface. Flatter than the back of the lens.
	DefaultLensFrontRadius = 10.2
	// Apex of the posterior lens surface. Lens thickness is 4mm.
	DefaultLensBackVertex = 7.6
	// Curvature of the posterior lens surface. Negative: convex toward the retina.
	DefaultLensBackRadius = -6.0

	// Medium in front of the eye
	DefaultAirIndex = 1.0
	// Between the corneal surfaces
	DefaultCorneaIndex = 1.3771
	// Aqueous humour between cornea and lens
	DefaultAqueousIndex = 1.3374
	// Homogeneous lens
	DefaultLensIndex = 1.42
	// Vitreous humour between lens and retina
	DefaultVitreousIndex = 1.336

	// Axial length: distance from the corneal apex to the retina on the axis
	DefaultEyeLength = 24.197
	// Radius of the globe. Sets the retina curvature and how far the iris extends.
	DefaultEyeRadius = 12.0

	// Plane of the iris, just in front of the lens
	DefaultPupilPosition = 3.5
	// Half-width of the pupil opening
	DefaultPupilRadius = 2.0

	// Horizontal position object rays start from
	DefaultObjectX = -3.0
)

// SurfaceSpec describes one circular boundary by its apex position and its radius of
// curvature in the optical convention (see SurfaceAtVertex).
type SurfaceSpec struct {
	Name   string
	Vertex float64
	Radius float64
}

func (s SurfaceSpec) Surface() CircularSurface {
	return SurfaceAtVertex(s.Vertex, s.Radius)
}

// ModelSpec is everything needed to build an EyeModel
type ModelSpec struct {
	// Surfaces ordered from the cornea toward the retina
	Surfaces []SurfaceSpec
	// Indices[i] is the medium in front of Surfaces[i]; the last entry is the vitreous
	Indices []float64
	Length  float64
	Radius  float64
	// Use a flat retina at x = Length instead of a section of the globe
	FlatRetina bool
}

// DefaultModelSpec returns the four-surface Le Grand eye
func DefaultModelSpec() ModelSpec {
	return ModelSpec{
		Surfaces: []SurfaceSpec{
			{Name: "cornea front", Vertex: DefaultCorneaFrontVertex, Radius: DefaultCorneaFrontRadius},
			{Name: "cornea back", Vertex: DefaultCorneaBackVertex, Radius: DefaultCorneaBackRadius},
			{Name: "lens front", Vertex: DefaultLensFrontVertex, Radius: DefaultLensFrontRadius},
			{Name: "lens back", Vertex: DefaultLensBackVertex, Radius: DefaultLensBackRadius},
		},
		Indices: []float64{DefaultAirIndex, DefaultCorneaIndex, DefaultAqueousIndex, DefaultLensIndex, DefaultVitreousIndex},
		Length:  DefaultEyeLength,
		Radius:  DefaultEyeRadius,
	}
}

// EyeModel is the immutable optical system shared by every trace.
type EyeModel struct {
	names    []string
	surfaces []Surface
	indices  []float64
	retina   Surface
	length   float64
	radius   float64
}

// NewEyeModel validates spec and builds the model. All problems are reported together and
// every one wraps ErrInvalidConfiguration.
func NewEyeModel(spec ModelSpec) (*EyeModel, error) {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...)))
	}

	if len(spec.Surfaces) == 0 {
		invalid("no surfaces")
	}
	if len(spec.Indices) != len(spec.Surfaces)+1 {
		invalid("%d refractive indices for %d surfaces, want %d", len(spec.Indices), len(spec.Surfaces), len(spec.Surfaces)+1)
	}
	for i, n := range spec.Indices {
		if !(n > 0) || math.IsInf(n, 0) {
			invalid("refractive index %d is %v", i, n)
		}
	}
	for i, s := range spec.Surfaces {
		if s.Radius == 0 || math.IsNaN(s.Radius) {
			invalid("surface %q has zero radius", s.Name)
		}
		if i > 0 && s.Vertex <= spec.Surfaces[i-1].Vertex {
			invalid("surface %q at %v is not behind %q at %v", s.Name, s.Vertex, spec.Surfaces[i-1].Name, spec.Surfaces[i-1].Vertex)
		}
	}
	if !(spec.Radius > 0) {
		invalid("eye radius %v", spec.Radius)
	}
	if n := len(spec.Surfaces); n > 0 && !(spec.Length > spec.Surfaces[n-1].Vertex) {
		invalid("eye length %v does not reach past the last surface", spec.Length)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	m := &EyeModel{
		names:    make([]string, len(spec.Surfaces)),
		surfaces: make([]Surface, len(spec.Surfaces)),
		indices:  append([]float64(nil), spec.Indices...),
		length:   spec.Length,
		radius:   spec.Radius,
	}
	for i, s := range spec.Surfaces {
		m.names[i] = s.Name
		m.surfaces[i] = s.Surface()
	}
	if spec.FlatRetina {
		m.retina = PlaneSurface{Position: spec.Length, HalfHeight: spec.Radius}
	} else {
		// Concave toward the light, centred in the globe
		m.retina = SurfaceAtVertex(spec.Length, -spec.Radius)
	}
	return m, nil
}

// DefaultEyeModel builds the model from DefaultModelSpec
func DefaultEyeModel() *EyeModel {
	m, err := NewEyeModel(DefaultModelSpec())
	if err != nil {
		panic(err)
	}
	return m
}

func (m *EyeModel) Surfaces() []Surface {
	return append([]Surface(nil), m.surfaces...)
}

// Derivatives returns the slope evaluator of each surface, in surface order
func (m *EyeModel) Derivatives() []func(y float64) float64 {
	d := make([]func(float64) float64, len(m.surfaces))
	for i, s := range m.surfaces {
		d[i] = Derivative(s)
	}
	return d
}

func (m *EyeModel) SurfaceNames() []string {
	return append([]string(nil), m.names...)
}

func (m *EyeModel) Indices() []float64 {
	return append([]float64(nil), m.indices...)
}

func (m *EyeModel) Retina() Surface {
	return m.retina
}

func (m *EyeModel) Length() float64 {
	return m.length
}

func (m *EyeModel) Radius() float64 {
	return m.radius
}

// searchBound limits the intersection search from a point: the horizontal distance left to
// the back of the eye plus the globe radius, doubled to allow for inclined rays.
func (m *EyeModel) searchBound(from Point2D) float64 {
	return 2 * (math.Abs(m.length-from.X) + m.radius)
}
