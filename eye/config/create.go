package config

import (
	"fmt"

	goeye "github.com/jdginn/go-eye-optics/eye"
)

// Create builds the eye model and the iris described by the config
func (c *ExperimentConfig) Create() (*goeye.EyeModel, []goeye.PupilLine, error) {
	spec := goeye.ModelSpec{
		Surfaces:   make([]goeye.SurfaceSpec, len(c.Eye.Surfaces)),
		Indices:    make([]float64, len(c.Eye.Media)),
		Length:     c.Eye.Length,
		Radius:     c.Eye.Radius,
		FlatRetina: c.Eye.FlatRetina,
	}
	for i, s := range c.Eye.Surfaces {
		spec.Surfaces[i] = goeye.SurfaceSpec{Name: s.Name, Vertex: s.Vertex, Radius: s.Radius}
	}
	for i, name := range c.Eye.Media {
		n, err := c.Media.Index(name)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", goeye.ErrInvalidConfiguration, err)
		}
		spec.Indices[i] = n
	}

	model, err := goeye.NewEyeModel(spec)
	if err != nil {
		return nil, nil, err
	}
	return model, goeye.NewPupil(c.Pupil.Position, c.Pupil.Radius, c.Eye.Radius), nil
}

// Rays returns the object rays in config order
func (c *ExperimentConfig) Rays() []goeye.Ray {
	heights := make([]float64, len(c.Objects.Rays))
	for i, r := range c.Objects.Rays {
		heights[i] = r.Height
	}
	if c.Objects.DistanceMM == 0 {
		return goeye.ParallelRays(c.Objects.X, heights)
	}
	return goeye.PointSourceRays(goeye.Point2D{X: -c.Objects.DistanceMM, Y: 0}, c.Objects.X, heights)
}

// Colors returns the colour of each object ray, in the same order as Rays
func (c *ExperimentConfig) Colors() []string {
	colors := make([]string, len(c.Objects.Rays))
	for i, r := range c.Objects.Rays {
		colors[i] = r.Color
	}
	return colors
}
