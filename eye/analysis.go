package eye

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RetinaHeights returns the final height of every ray that reached the retina
func RetinaHeights(results []TraceResult) []float64 {
	heights := make([]float64, 0, len(results))
	for _, r := range results {
		if r.Complete() {
			heights = append(heights, r.Path.Last().Y)
		}
	}
	return heights
}

// SpotRadius is the RMS distance from the axis of the rays that reached the retina.
// ok is false when none did.
func SpotRadius(results []TraceResult) (radius float64, ok bool) {
	heights := RetinaHeights(results)
	if len(heights) == 0 {
		return 0, false
	}
	return floats.Norm(heights, 2) / math.Sqrt(float64(len(heights))), true
}

// Summarize counts results by the reason their trace ended
func Summarize(results []TraceResult) map[TerminalReason]int {
	counts := map[TerminalReason]int{}
	for _, r := range results {
		counts[r.Reason]++
	}
	return counts
}
