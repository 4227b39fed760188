package eye

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParallelRays(t *testing.T) {
	rays := ParallelRays(-3, []float64{0, 1.5, -1.5})
	assert.Equal(t, []Ray{{X: -3}, {X: -3, Y: 1.5}, {X: -3, Y: -1.5}}, rays)
}

func TestPointSourceRays(t *testing.T) {
	assert := assert.New(t)
	object := Point2D{-100, 0}

	rays := PointSourceRays(object, -3, []float64{0, 2, -2})
	assert.Len(rays, 3)
	for i, h := range []float64{0, 2, -2} {
		r := rays[i]
		assert.Equal(-3.0, r.X)
		assert.InDelta(math.Atan2(h, 100), r.Theta, 1e-12)
		// Every ray still passes through the object and through h at the apex plane
		assert.InDelta(h, r.Y+3*math.Tan(r.Theta), 1e-12)
		assert.InDelta(0, r.Y-97*math.Tan(r.Theta), 1e-12)
	}
	assert.Zero(rays[0].Y)
	assert.InDelta(-rays[1].Y, rays[2].Y, 1e-12)

	// An object already inside the start plane emits from itself
	near := PointSourceRays(Point2D{-1, 0}, -3, []float64{1})
	assert.Equal(-1.0, near[0].X)
	assert.Zero(near[0].Y)
	assert.InDelta(math.Pi/4, near[0].Theta, 1e-12)
}
