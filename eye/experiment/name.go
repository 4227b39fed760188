package experiment

import (
	"math/rand"
	"time"
)

var (
	adjectives = []string{
		"amber", "azure", "bright", "clear", "crimson", "dim", "distant", "faint",
		"glassy", "golden", "hazy", "indigo", "keen", "lucid", "misty", "narrow",
		"pale", "polished", "quiet", "radiant", "sharp", "silver", "soft", "steady",
		"still", "twilight", "violet", "vivid", "wandering", "wide",
	}

	nouns = []string{
		"aperture", "beam", "caustic", "cornea", "focus", "fovea", "glint", "halo",
		"horizon", "iris", "lantern", "lens", "meniscus", "mirror", "prism", "pupil",
		"rainbow", "ray", "retina", "shadow", "spark", "spectrum", "star", "sunbeam",
		"vertex", "vista", "window",
	}
)

// GenerateExperimentName creates a memorable experiment identifier
// in the format "adjective-noun"
func GenerateExperimentName() string {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return adjectives[r.Intn(len(adjectives))] + "-" + nouns[r.Intn(len(nouns))]
}

// GenerateExperimentID creates a unique experiment identifier by combining
// the memorable name with a timestamp
func GenerateExperimentID() string {
	timestamp := time.Now().UTC().Format("20060102-150405")
	return GenerateExperimentName() + "-" + timestamp
}
