package config

// ExperimentConfig represents the complete configuration for one eye simulation
type ExperimentConfig struct {
	Metadata Metadata `yaml:"metadata"`
	Media    Media    `yaml:"media"`
	Eye      Eye      `yaml:"eye"`
	Pupil    Pupil    `yaml:"pupil"`
	Objects  Objects  `yaml:"objects"`
	Render   Render   `yaml:"render"`
	Tracing  Tracing  `yaml:"tracing"`
}

type Metadata struct {
	Timestamp string `yaml:"timestamp"` // YYYY-MM-DD HH:MM:SS in UTC
	GitCommit string `yaml:"git_commit"`
}

// Media are named refractive indices. Surfaces refer to them by name.
type Media struct {
	Inline   map[string]float64 `yaml:"inline,omitempty"`
	FromFile string             `yaml:"from_file,omitempty"` // JSON object of name -> index
}

type Surface struct {
	Name   string  `yaml:"name"`
	Vertex float64 `yaml:"vertex"` // apex position on the axis in mm
	Radius float64 `yaml:"radius"` // positive when convex toward incoming light
}

type Eye struct {
	Surfaces []Surface `yaml:"surfaces"` // cornea first
	// Medium in front of each surface, then the medium behind the last one
	Media      []string `yaml:"media"`
	Length     float64  `yaml:"length"` // axial length in mm
	Radius     float64  `yaml:"radius"` // globe radius in mm
	FlatRetina bool     `yaml:"flat_retina"`
}

type Pupil struct {
	Position float64 `yaml:"position"` // iris plane in mm
	Radius   float64 `yaml:"radius"`
}

type ObjectRay struct {
	Color  string  `yaml:"color"`  // name or #rrggbb
	Height float64 `yaml:"height"` // mm from the axis
}

type Objects struct {
	X float64 `yaml:"x"` // where rays start
	// Distance of an on-axis point source in front of the cornea. Zero means infinitely far
	// away, which makes the rays parallel.
	DistanceMM float64     `yaml:"distance_mm"`
	Rays       []ObjectRay `yaml:"rays"`
}

type Render struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	FocusWidth  int `yaml:"focus_width"`
	FocusHeight int `yaml:"focus_height"`
}

type Tracing struct {
	Workers int `yaml:"workers"` // 0 uses every CPU
}
