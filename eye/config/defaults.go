package config

import (
	goeye "github.com/jdginn/go-eye-optics/eye"
)

// Default returns the Le Grand eye with the seven object rays of the reference drawing.
// LoadFromFile decodes on top of this, so a config file only needs what it changes.
func Default() *ExperimentConfig {
	spec := goeye.DefaultModelSpec()
	surfaces := make([]Surface, len(spec.Surfaces))
	for i, s := range spec.Surfaces {
		surfaces[i] = Surface{Name: s.Name, Vertex: s.Vertex, Radius: s.Radius}
	}
	return &ExperimentConfig{
		Media: Media{
			Inline: defaultMedia(),
		},
		Eye: Eye{
			Surfaces: surfaces,
			Media:    []string{"air", "cornea", "aqueous", "lens", "vitreous"},
			Length:   spec.Length,
			Radius:   spec.Radius,
		},
		Pupil: Pupil{
			Position: goeye.DefaultPupilPosition,
			Radius:   goeye.DefaultPupilRadius,
		},
		Objects: Objects{
			X: goeye.DefaultObjectX,
			Rays: []ObjectRay{
				{Color: "red", Height: 0},
				{Color: "green", Height: -1.75},
				{Color: "blue", Height: 1.75},
				{Color: "brown", Height: -3.5},
				{Color: "purple", Height: 3.5},
				{Color: "orange", Height: -2.25},
				{Color: "pink", Height: 2.25},
			},
		},
		Render: Render{
			Width:       1200,
			Height:      600,
			FocusWidth:  480,
			FocusHeight: 360,
		},
	}
}

// defaultMedia are the media of the default eye. Parse adds any of them a config does not
// define itself.
func defaultMedia() map[string]float64 {
	return map[string]float64{
		"air":      goeye.DefaultAirIndex,
		"cornea":   goeye.DefaultCorneaIndex,
		"aqueous":  goeye.DefaultAqueousIndex,
		"lens":     goeye.DefaultLensIndex,
		"vitreous": goeye.DefaultVitreousIndex,
	}
}
