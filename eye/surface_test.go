package eye

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularSurfaceApex(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(5.0+4.0, NewCircularSurface(4, 5).X(0))
	assert.Equal(5.0-4.0, NewCircularSurface(-4, 5).X(0))

	for _, r := range []float64{7.8, -7.8, 6.5, -6.0, 10.2} {
		for _, offset := range []float64{0, 3.6, -1.2} {
			assert.InDelta(offset+r, NewCircularSurface(r, offset).X(0), 1e-12, "r=%v offset=%v", r, offset)
		}
	}
}

func TestSurfaceAtVertex(t *testing.T) {
	assert := assert.New(t)

	cornea := SurfaceAtVertex(0, 7.8)
	assert.InDelta(0, cornea.Vertex(), 1e-12)
	assert.InDelta(7.8, cornea.Offset, 1e-12)
	// Convex toward the light: the rim curves back toward +x
	assert.Greater(cornea.X(3), cornea.X(0))

	lensBack := SurfaceAtVertex(7.6, -6.0)
	assert.InDelta(7.6, lensBack.Vertex(), 1e-12)
	assert.Less(lensBack.X(3), lensBack.X(0))

	assert.InDelta(7.8-math.Sqrt(7.8*7.8-9), cornea.X(3), 1e-12)
}

func TestCircularSurfaceSlope(t *testing.T) {
	const h = 1e-6
	surfaces := map[string]CircularSurface{
		"cornea front": SurfaceAtVertex(0, 7.8),
		"lens back":    SurfaceAtVertex(7.6, -6.0),
		"raw":          NewCircularSurface(3, -2),
	}
	for name, s := range surfaces {
		t.Run(name, func(t *testing.T) {
			for _, y := range []float64{-2.5, -1, -0.1, 0.4, 1.7, 2.9} {
				numeric := (s.X(y+h) - s.X(y-h)) / (2 * h)
				assert.InDelta(t, numeric, s.Slope(y), 1e-6, "y=%v", y)
				assert.Equal(t, s.Slope(y), Derivative(s)(y))
			}
			assert.Zero(t, s.Slope(0))
		})
	}
}

func TestCircularSurfaceOutsideAperture(t *testing.T) {
	assert := assert.New(t)

	s := NewCircularSurface(-2, 5)
	assert.Equal(2.0, s.Aperture())
	// Radicand clamps to zero
	assert.Equal(5.0, s.X(2))
	assert.Equal(5.0, s.X(-7))
	assert.True(math.IsInf(s.Slope(3), 1))
	assert.True(math.IsInf(s.Slope(-3), -1))
	assert.False(math.IsNaN(s.X(100)))
}

func TestPlaneSurface(t *testing.T) {
	assert := assert.New(t)

	p := PlaneSurface{Position: 24, HalfHeight: 12}
	assert.Equal(24.0, p.X(-5))
	assert.Equal(24.0, p.X(11))
	assert.Zero(p.Slope(3))
	assert.Equal(12.0, p.Aperture())
	assert.Zero(NormalAngle(p, 3))
}

func TestNormalAngle(t *testing.T) {
	assert := assert.New(t)

	cornea := SurfaceAtVertex(0, 7.8)
	assert.Zero(NormalAngle(cornea, 0))
	// Above the axis the normal of a convex front surface tips down toward the centre
	assert.Negative(NormalAngle(cornea, 2))
	assert.Positive(NormalAngle(cornea, -2))
	// Points at the centre of curvature
	y := 3.0
	x := cornea.X(y)
	assert.InDelta(math.Atan2(0-y, cornea.Offset-x), NormalAngle(cornea, y), 1e-12)
}

func TestSampleSurface(t *testing.T) {
	assert := assert.New(t)

	s := SurfaceAtVertex(0, 7.8)
	aperture := s.Aperture()
	samples := SampleSurface(s, 12, 11)
	assert.Len(samples, 11)
	assert.InDelta(-aperture, samples[0].Y, 1e-12)
	assert.InDelta(aperture, samples[10].Y, 1e-12)
	assert.InDelta(0, samples[5].X, 1e-12)

	samples = SampleSurface(PlaneSurface{Position: 3, HalfHeight: 10}, 2, 0)
	assert.Equal(RayPath{{3, -2}, {3, 2}}, samples)
}
