package eye

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestSnellNormalIncidence(t *testing.T) {
	theta, err := Snell(1.0, 1.5, 0.0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, theta)
}

func TestSnellNullInterface(t *testing.T) {
	assert := assert.New(t)
	for _, n := range []float64{1.0, 1.336, 1.42, 2.4} {
		for _, theta := range []float64{-2.5, -0.7, 0, 0.3, 1.2, math.Pi} {
			got, err := Snell(n, n, theta)
			assert.NoError(err)
			assert.Equal(theta, got, "n=%v theta=%v", n, theta)
		}
	}
}

func TestSnellReversible(t *testing.T) {
	tests := []struct {
		name   string
		n1, n2 float64
		theta  float64
	}{
		{"air_to_cornea", 1.0, 1.3771, 0.4},
		{"cornea_to_aqueous", 1.3771, 1.3374, -0.9},
		{"aqueous_to_lens", 1.3374, 1.42, 0.05},
		{"lens_to_vitreous", 1.42, 1.336, -0.2},
		{"glass_to_air_below_critical", 1.5, 1.0, 0.6},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			inner, err := Snell(test.n2, test.n1, test.theta)
			require.NoError(t, err)
			back, err := Snell(test.n1, test.n2, inner)
			require.NoError(t, err)
			assert.True(t, scalar.EqualWithinAbsOrRel(test.theta, back, 1e-12, 1e-12), "got %v want %v", back, test.theta)
		})
	}
}

func TestSnellBendsTowardNormal(t *testing.T) {
	assert := assert.New(t)

	theta2, err := Snell(1.0, 1.0003, 0.5)
	assert.NoError(err)
	assert.Less(math.Abs(theta2), 0.5)

	theta2, err = Snell(1.0, 1.5, -0.5)
	assert.NoError(err)
	assert.Less(math.Abs(theta2), 0.5)
	assert.Negative(theta2)

	// And away from it going into a thinner medium
	theta2, err = Snell(1.5, 1.0, 0.3)
	assert.NoError(err)
	assert.Greater(theta2, 0.3)
}

func TestSnellTotalInternalReflection(t *testing.T) {
	assert := assert.New(t)

	_, err := Snell(1.5, 1.0, 1.0)
	assert.ErrorIs(err, ErrTotalInternalReflection)

	_, err = Snell(1.5, 1.0, -1.0)
	assert.ErrorIs(err, ErrTotalInternalReflection)

	critical, ok := CriticalAngle(1.5, 1.0)
	assert.True(ok)
	assert.InDelta(math.Asin(2.0/3.0), critical, 1e-15)

	_, err = Snell(1.5, 1.0, critical-1e-6)
	assert.NoError(err)
	_, err = Snell(1.5, 1.0, critical+1e-6)
	assert.ErrorIs(err, ErrTotalInternalReflection)

	_, ok = CriticalAngle(1.0, 1.5)
	assert.False(ok)
}

func TestSnellInvalidIndex(t *testing.T) {
	assert := assert.New(t)
	for _, n := range [][2]float64{{0, 1}, {1, -1.3}, {math.NaN(), 1}, {1, math.NaN()}} {
		_, err := Snell(n[0], n[1], 0.1)
		assert.ErrorIs(err, ErrInvalidIndex, "n1=%v n2=%v", n[0], n[1])
	}
}
