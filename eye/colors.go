package eye

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// NamedColors are the ray colours understood by name, matching the usual plotting names
var NamedColors = map[string]string{
	"red":    "#ff0000",
	"green":  "#008000",
	"blue":   "#0000ff",
	"brown":  "#a52a2a",
	"purple": "#800080",
	"orange": "#ffa500",
	"pink":   "#ffc0cb",
	"black":  "#000000",
	"gray":   "#808080",
}

// DefaultRayColors is the colour cycle used when a ray has none configured
var DefaultRayColors = []string{"red", "green", "blue", "brown", "purple", "orange", "pink"}

// ParseColor accepts a name from NamedColors or a #rrggbb hex string
func ParseColor(s string) (colorful.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := NamedColors[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	return c, nil
}
