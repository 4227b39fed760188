package eye

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSON schema types
type PointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type PathJSON struct {
	Points []PointJSON `json:"points"`
	Name   string      `json:"name,omitempty"`
	Color  string      `json:"color,omitempty"`
}

type RayJSON struct {
	Start  PointJSON      `json:"start"`
	Theta  float64        `json:"theta"`
	Path   PathJSON       `json:"path"`
	Reason TerminalReason `json:"reason"`
	Error  string         `json:"error,omitempty"`
}

type EyeJSON struct {
	Length   float64    `json:"length"`
	Radius   float64    `json:"radius"`
	Indices  []float64  `json:"indices"`
	Surfaces []PathJSON `json:"surfaces"`
	Retina   PathJSON   `json:"retina"`
	Pupil    []PathJSON `json:"pupil"`
	Rays     []RayJSON  `json:"rays"`
	Spot     *SpotJSON  `json:"spot,omitempty"`
}

type SpotJSON struct {
	RMSRadius float64 `json:"rmsRadius"`
	Rays      int     `json:"rays"`
}

const surfaceSamples = 64

func pathToJSON(p RayPath, name, color string) PathJSON {
	points := make([]PointJSON, len(p))
	for i, v := range p {
		points[i] = PointJSON{X: v.X, Y: v.Y}
	}
	return PathJSON{Points: points, Name: name, Color: color}
}

// TracesToJSON converts the model geometry and traced rays into the exported document.
// colors[i] is attached to results[i] when present.
func TracesToJSON(m *EyeModel, pupil []PupilLine, results []TraceResult, colors []string) EyeJSON {
	doc := EyeJSON{
		Length:   m.Length(),
		Radius:   m.Radius(),
		Indices:  m.Indices(),
		Surfaces: make([]PathJSON, 0, len(m.surfaces)),
		Retina:   pathToJSON(SampleSurface(m.retina, m.radius, surfaceSamples), "retina", ""),
		Pupil:    make([]PathJSON, 0, len(pupil)),
		Rays:     make([]RayJSON, 0, len(results)),
	}
	for i, s := range m.surfaces {
		doc.Surfaces = append(doc.Surfaces, pathToJSON(SampleSurface(s, m.radius, surfaceSamples), m.names[i], ""))
	}
	for i, line := range pupil {
		doc.Pupil = append(doc.Pupil, pathToJSON(RayPath{line.A, line.B}, fmt.Sprintf("iris %d", i), "#000000"))
	}
	for i, r := range results {
		color := ""
		if i < len(colors) {
			color = colors[i]
		}
		ray := RayJSON{
			Start:  PointJSON{X: r.Start.X, Y: r.Start.Y},
			Theta:  r.Start.Theta,
			Path:   pathToJSON(r.Path, fmt.Sprintf("ray %d", i), color),
			Reason: r.Reason,
		}
		if r.Err != nil {
			ray.Error = r.Err.Error()
		}
		doc.Rays = append(doc.Rays, ray)
	}
	if radius, ok := SpotRadius(results); ok {
		doc.Spot = &SpotJSON{RMSRadius: radius, Rays: len(RetinaHeights(results))}
	}
	return doc
}

// SaveTracesToJSON writes TracesToJSON to filename
func SaveTracesToJSON(filename string, m *EyeModel, pupil []PupilLine, results []TraceResult, colors []string) error {
	data, err := json.MarshalIndent(TracesToJSON(m, pupil, results, colors), "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling traces: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}
