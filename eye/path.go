package eye

import (
	"math"

	lin "github.com/sgreben/piecewiselinear"
)

type Point2D struct {
	X, Y float64
}

func (p Point2D) Translate(x, y float64) Point2D {
	return Point2D{p.X + x, p.Y + y}
}

func (p Point2D) Scale(s float64) Point2D {
	return Point2D{p.X * s, p.Y * s}
}

// RayPath is the ordered list of points a ray visits, in traversal order.
type RayPath []Point2D

func (p RayPath) Translate(x, y float64) RayPath {
	translated := make(RayPath, len(p))
	for i, p := range p {
		translated[i] = p.Translate(x, y)
	}
	return translated
}

func (p RayPath) BoundingBox() (XMin, XMax, YMin, YMax float64) {
	if len(p) == 0 {
		return
	}
	XMin, XMax, YMin, YMax = p[0].X, p[0].X, p[0].Y, p[0].Y
	for _, p := range p[1:] {
		XMin = math.Min(XMin, p.X)
		XMax = math.Max(XMax, p.X)
		YMin = math.Min(YMin, p.Y)
		YMax = math.Max(YMax, p.Y)
	}
	return
}

// Last is the final point of the path, where the ray ended.
func (p RayPath) Last() Point2D {
	return p[len(p)-1]
}

// Length is the geometric length of the path
func (p RayPath) Length() float64 {
	total := 0.0
	for i := 1; i < len(p); i++ {
		total += math.Hypot(p[i].X-p[i-1].X, p[i].Y-p[i-1].Y)
	}
	return total
}

// HeightAt interpolates the height of the ray when it passes horizontal position x.
// ok is false when the path does not span x.
//
// Rays only travel toward +x, so the points are already sorted by X.
func (p RayPath) HeightAt(x float64) (y float64, ok bool) {
	if len(p) == 0 {
		return 0, false
	}
	xs := make([]float64, len(p))
	ys := make([]float64, len(p))
	for i, pt := range p {
		xs[i] = pt.X
		ys[i] = pt.Y
	}
	if x < xs[0] || x > xs[len(xs)-1] {
		return 0, false
	}
	if len(p) == 1 {
		return ys[0], true
	}
	f := lin.Function{X: xs, Y: ys}
	return f.At(x), true
}
