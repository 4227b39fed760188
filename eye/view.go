package eye

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/fogleman/gg"
)

// View renders traced rays over a cross-section of the eye
type View struct {
	Model *EyeModel
	Pupil []PupilLine
	// Leftmost point to show, usually where the object rays start
	ObjectX float64
	XSize   int
	YSize   int
	// These cache the values needed to scale and translate from the eye to the requested image size
	scale      float64
	xTranslate float64
	yTranslate float64
}

const viewMargin = 1.0

func (view *View) BoundingBox() (XMin, XMax, YMin, YMax float64) {
	XMin = math.Min(view.ObjectX, view.Model.Length()-2*view.Model.Radius()) - viewMargin
	XMax = view.Model.Length() + viewMargin
	YMin = -view.Model.Radius() - viewMargin
	YMax = view.Model.Radius() + viewMargin
	return
}

func (view *View) computeScaleAndTranslation() {
	XMin, XMax, YMin, YMax := view.BoundingBox()
	view.xTranslate = -XMin
	view.yTranslate = -YMin
	XScale := float64(view.XSize) / (XMax - XMin)
	YScale := float64(view.YSize) / (YMax - YMin)
	view.scale = math.Min(XScale, YScale)
}

func (view *View) getScale() float64 {
	if view.scale == 0 {
		view.computeScaleAndTranslation()
	}
	return view.scale
}

// translateAndScale maps eye coordinates to image pixels, with +y pointing up
func (view *View) translateAndScale(p Point2D) Point2D {
	s := view.getScale()
	q := p.Translate(view.xTranslate, view.yTranslate).Scale(s)
	return Point2D{q.X, float64(view.YSize) - q.Y}
}

func (view *View) strokePath(c *gg.Context, path RayPath) {
	if len(path) == 0 {
		return
	}
	p := view.translateAndScale(path[0])
	c.MoveTo(p.X, p.Y)
	for _, v := range path[1:] {
		p = view.translateAndScale(v)
		c.LineTo(p.X, p.Y)
	}
	c.Stroke()
}

// PlotRays draws the eye, the iris and every traced ray. colors[i] is used for results[i];
// rays without a colour cycle through DefaultRayColors.
func (view *View) PlotRays(results []TraceResult, colors []string) (image.Image, error) {
	if view.Model == nil {
		return nil, fmt.Errorf("view has no eye model")
	}
	c := gg.NewContext(view.XSize, view.YSize)
	c.SetColor(color.White)
	c.Clear()

	// Globe
	center := view.translateAndScale(Point2D{view.Model.Length() - view.Model.Radius(), 0})
	c.SetColor(color.Gray{Y: 200})
	c.SetLineWidth(1)
	c.DrawCircle(center.X, center.Y, view.Model.Radius()*view.getScale())
	c.Stroke()

	c.SetColor(color.Gray{Y: 90})
	c.SetLineWidth(2)
	for _, s := range view.Model.surfaces {
		view.strokePath(c, SampleSurface(s, view.Model.Radius(), 200))
	}
	c.SetColor(color.RGBA{R: 180, G: 40, B: 40, A: 255})
	view.strokePath(c, SampleSurface(view.Model.retina, view.Model.Radius(), 200))

	c.SetColor(color.Black)
	c.SetLineWidth(4)
	for _, line := range view.Pupil {
		view.strokePath(c, RayPath{line.A, line.B})
	}

	for i, result := range results {
		name := DefaultRayColors[i%len(DefaultRayColors)]
		if i < len(colors) && colors[i] != "" {
			name = colors[i]
		}
		col, err := ParseColor(name)
		if err != nil {
			return nil, err
		}
		c.SetColor(col)

		// Object point
		start := view.translateAndScale(result.Path[0])
		c.DrawCircle(start.X, start.Y, 4)
		c.Fill()

		c.SetLineWidth(1.5)
		view.strokePath(c, result.Path)

		// Where the ray ended, on the retina or the iris
		end := view.translateAndScale(result.Path.Last())
		c.DrawCircle(end.X, end.Y, 3)
		c.Fill()
	}
	return c.Image(), nil
}

// EntranceHeight is the height at which the ray met the first surface, or its starting
// height if it never did.
func (r TraceResult) EntranceHeight() float64 {
	if len(r.Path) > 1 {
		return r.Path[1].Y
	}
	return r.Path[0].Y
}

// PlotFocus charts where each ray landed on the retina against where it entered the eye.
// A perfect eye puts every point on the horizontal axis; the curve shows spherical
// aberration.
func PlotFocus(X, Y int, results []TraceResult, filename string) error {
	p := plot.New()
	p.Title.Text = "Focus"
	p.X.Label.Text = "Entrance height (mm)"
	p.Y.Label.Text = "Retina height (mm)"
	p.Add(plotter.NewGrid())

	xys := plotter.XYs{}
	for _, r := range results {
		if !r.Complete() {
			continue
		}
		xys = append(xys, plotter.XY{X: r.EntranceHeight(), Y: r.Path.Last().Y})
	}
	if len(xys) == 0 {
		return fmt.Errorf("no ray reached the retina")
	}
	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Radius = vg.Points(3)
	p.Add(scatter)

	return p.Save(font.Length(X), font.Length(Y), filename)
}

// SaveImage writes img as a PNG
func SaveImage(filename string, img image.Image) error {
	return gg.SavePNG(filename, img)
}
