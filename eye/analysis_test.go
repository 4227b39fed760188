package eye

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func completed(y float64) TraceResult {
	return TraceResult{Path: RayPath{{-3, y}, {24, y}}, Reason: ReachedRetina}
}

func TestRetinaHeights(t *testing.T) {
	results := []TraceResult{
		completed(0.1),
		{Path: RayPath{{-3, 3}, {3.5, 3}}, Reason: PupilBlocked},
		completed(-0.2),
	}
	assert.Equal(t, []float64{0.1, -0.2}, RetinaHeights(results))
	assert.Empty(t, RetinaHeights(nil))
}

func TestSpotRadius(t *testing.T) {
	radius, ok := SpotRadius([]TraceResult{completed(3), completed(-4)})
	assert.True(t, ok)
	assert.InDelta(t, 5/math.Sqrt2, radius, 1e-12)

	_, ok = SpotRadius([]TraceResult{{Path: RayPath{{0, 9}}, Reason: NoIntersection}})
	assert.False(t, ok)
}

func TestSpotRadiusOfDefaultEye(t *testing.T) {
	m := DefaultEyeModel()
	var results []TraceResult
	for _, ray := range ParallelRays(DefaultObjectX, []float64{0.5, -0.5, 1, -1, 1.5, -1.5}) {
		results = append(results, m.Trace(ray, defaultPupil()))
	}
	radius, ok := SpotRadius(results)
	assert.True(t, ok)
	assert.Less(t, radius, focusTolerance)
}

func TestSummarize(t *testing.T) {
	results := []TraceResult{
		completed(0),
		completed(1),
		{Reason: PupilBlocked},
		{Reason: TotalInternalReflection},
	}
	assert.Equal(t, map[TerminalReason]int{
		ReachedRetina:           2,
		PupilBlocked:            1,
		TotalInternalReflection: 1,
	}, Summarize(results))
}
