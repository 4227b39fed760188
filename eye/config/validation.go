package config

import (
	"fmt"
	"sort"
	"strings"

	goeye "github.com/jdginn/go-eye-optics/eye"
)

// Validation helper functions
func validatePositive(field string, value float64) []ValidationError {
	if !(value > 0) {
		return []ValidationError{{
			Field:   field,
			Message: "must be positive",
		}}
	}
	return nil
}

func validateNonNegative(field string, value float64) []ValidationError {
	if value < 0 {
		return []ValidationError{{
			Field:   field,
			Message: "must be non-negative",
		}}
	}
	return nil
}

func validateInRange(field string, value, min, max float64) []ValidationError {
	if value < min || value > max {
		return []ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("must be between %v and %v", min, max),
		}}
	}
	return nil
}

// ValidationError represents a structured validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors lets a failed validation travel as a single error
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	return FormatValidationErrors(errs)
}

// FormatValidationErrors groups errors by their top-level section
func FormatValidationErrors(errs []ValidationError) string {
	if len(errs) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("Validation Errors:\n")

	categories := map[string][]ValidationError{}
	for _, err := range errs {
		category := strings.Split(err.Field, ".")[0]
		categories[category] = append(categories[category], err)
	}
	names := make([]string, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Strings(names)

	for _, category := range names {
		b.WriteString(fmt.Sprintf("\n%s:\n", strings.ToUpper(category)))
		for _, err := range categories[category] {
			// Remove category prefix from field for cleaner display
			field := strings.TrimPrefix(err.Field, category+".")
			if field == category {
				field = "general"
			}
			b.WriteString(fmt.Sprintf("  - %s: %s\n", field, err.Message))
		}
	}

	return b.String()
}

// Validate performs validation on the entire configuration
func (c *ExperimentConfig) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.Media.Validate()...)
	errors = append(errors, c.Eye.Validate(&c.Media)...)
	errors = append(errors, c.Pupil.Validate(&c.Eye)...)
	errors = append(errors, c.Objects.Validate(&c.Eye)...)
	errors = append(errors, c.Render.Validate()...)
	errors = append(errors, c.Tracing.Validate()...)
	return errors
}

func (m *Media) Validate() []ValidationError {
	var errors []ValidationError

	if m.Inline == nil && m.FromFile == "" {
		return []ValidationError{{
			Field:   "media",
			Message: "either inline or from_file must be specified",
		}}
	}

	names := make([]string, 0, len(m.Inline))
	for name := range m.Inline {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		errors = append(errors, validatePositive(fmt.Sprintf("media.inline.%s", name), m.Inline[name])...)
	}

	return errors
}

func (e *Eye) Validate(media *Media) []ValidationError {
	var errors []ValidationError

	if len(e.Surfaces) == 0 {
		errors = append(errors, ValidationError{
			Field:   "eye.surfaces",
			Message: "at least one surface is required",
		})
	}
	for i, s := range e.Surfaces {
		field := fmt.Sprintf("eye.surfaces.%d", i)
		if s.Name == "" {
			errors = append(errors, ValidationError{Field: field + ".name", Message: "name is required"})
		}
		if s.Radius == 0 {
			errors = append(errors, ValidationError{Field: field + ".radius", Message: "must be non-zero"})
		}
		if i > 0 && s.Vertex <= e.Surfaces[i-1].Vertex {
			errors = append(errors, ValidationError{
				Field:   field + ".vertex",
				Message: fmt.Sprintf("must be behind surface %q at %v", e.Surfaces[i-1].Name, e.Surfaces[i-1].Vertex),
			})
		}
	}

	if len(e.Media) != len(e.Surfaces)+1 {
		errors = append(errors, ValidationError{
			Field:   "eye.media",
			Message: fmt.Sprintf("%d surfaces need %d media, got %d", len(e.Surfaces), len(e.Surfaces)+1, len(e.Media)),
		})
	}
	for i, name := range e.Media {
		if !media.HasMedium(name) {
			errors = append(errors, ValidationError{
				Field:   fmt.Sprintf("eye.media.%d", i),
				Message: fmt.Sprintf("references undefined medium '%s'", name),
			})
		}
	}

	errors = append(errors, validatePositive("eye.radius", e.Radius)...)
	if n := len(e.Surfaces); n > 0 && e.Length <= e.Surfaces[n-1].Vertex {
		errors = append(errors, ValidationError{
			Field:   "eye.length",
			Message: "retina must be behind the last surface",
		})
	}

	return errors
}

func (p *Pupil) Validate(eye *Eye) []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("pupil.radius", p.Radius)...)
	if p.Radius >= eye.Radius {
		errors = append(errors, ValidationError{
			Field:   "pupil.radius",
			Message: "must be smaller than the eye radius",
		})
	}
	if len(eye.Surfaces) > 0 {
		errors = append(errors, validateInRange("pupil.position", p.Position, eye.Surfaces[0].Vertex, eye.Length)...)
	}

	return errors
}

func (o *Objects) Validate(eye *Eye) []ValidationError {
	var errors []ValidationError

	if len(o.Rays) == 0 {
		errors = append(errors, ValidationError{
			Field:   "objects.rays",
			Message: "at least one ray is required",
		})
	}
	for i, ray := range o.Rays {
		field := fmt.Sprintf("objects.rays.%d", i)
		if ray.Color != "" {
			if _, err := goeye.ParseColor(ray.Color); err != nil {
				errors = append(errors, ValidationError{Field: field + ".color", Message: err.Error()})
			}
		}
		errors = append(errors, validateInRange(field+".height", ray.Height, -eye.Radius, eye.Radius)...)
	}

	if len(eye.Surfaces) > 0 && o.X >= eye.Surfaces[0].Vertex {
		errors = append(errors, ValidationError{
			Field:   "objects.x",
			Message: "rays must start in front of the cornea",
		})
	}
	errors = append(errors, validateNonNegative("objects.distance_mm", o.DistanceMM)...)

	return errors
}

func (r *Render) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, validatePositive("render.width", float64(r.Width))...)
	errors = append(errors, validatePositive("render.height", float64(r.Height))...)
	errors = append(errors, validatePositive("render.focus_width", float64(r.FocusWidth))...)
	errors = append(errors, validatePositive("render.focus_height", float64(r.FocusHeight))...)

	return errors
}

func (t *Tracing) Validate() []ValidationError {
	return validateNonNegative("tracing.workers", float64(t.Workers))
}
