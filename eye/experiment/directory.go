package experiment

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"gopkg.in/yaml.v3"

	goeye "github.com/jdginn/go-eye-optics/eye"
)

const (
	LatestSymlink = "latest"
	ManifestFile  = "manifest.yaml"
)

// ExperimentDir is the output directory of one simulation run
type ExperimentDir struct {
	Path      string // absolute
	ID        string
	Timestamp time.Time
	// Files written into the run, in the order they were requested
	artifacts []string
	config    string
}

// Manifest summarises a run: which config it traced, how the rays ended and what it wrote
type Manifest struct {
	ID       string         `yaml:"id"`
	Created  string         `yaml:"created"`
	Config   string         `yaml:"config,omitempty"`
	Rays     int            `yaml:"rays"`
	Outcomes map[string]int `yaml:"outcomes"`
	SpotRMS  *float64       `yaml:"spot_rms_mm,omitempty"`
	Files    []string       `yaml:"files"`
}

// CreateExperimentDirectory makes a fresh run directory under root and repoints
// root/latest at it.
func CreateExperimentDirectory(root string) (*ExperimentDir, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("creating experiments directory: %w", err)
	}

	id := GenerateExperimentID()
	dir, err := filepath.Abs(filepath.Join(root, id))
	if err != nil {
		return nil, fmt.Errorf("resolving run directory: %w", err)
	}
	// Mkdir, not MkdirAll: two runs in the same second can draw the same name
	if err := os.Mkdir(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating run directory: %w", err)
	}

	latest := filepath.Join(root, LatestSymlink)
	_ = os.Remove(latest)
	if err := os.Symlink(id, latest); err != nil {
		slog.Warn("could not point latest at run", "run", id, "error", err)
	}

	return &ExperimentDir{Path: dir, ID: id, Timestamp: time.Now().UTC()}, nil
}

// GetFilePath returns where filename goes in the run and lists it in the manifest
func (e *ExperimentDir) GetFilePath(filename string) string {
	if !slices.Contains(e.artifacts, filename) {
		e.artifacts = append(e.artifacts, filename)
	}
	return filepath.Join(e.Path, filename)
}

// Artifacts are the files requested through GetFilePath so far
func (e *ExperimentDir) Artifacts() []string {
	return slices.Clone(e.artifacts)
}

// CopyConfigFile keeps a copy of the config the run was traced from
func (e *ExperimentDir) CopyConfigFile(srcPath string) error {
	content, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	name := filepath.Base(srcPath)
	if err := os.WriteFile(e.GetFilePath(name), content, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	e.config = name
	return nil
}

// Manifest summarises results and the requested files that exist on disk
func (e *ExperimentDir) Manifest(results []goeye.TraceResult) Manifest {
	m := Manifest{
		ID:       e.ID,
		Created:  e.Timestamp.Format(time.RFC3339),
		Config:   e.config,
		Rays:     len(results),
		Outcomes: map[string]int{},
		Files:    []string{},
	}
	// A requested file that was never written, like a skipped plot, is left out
	for _, name := range e.artifacts {
		if _, err := os.Stat(filepath.Join(e.Path, name)); err == nil {
			m.Files = append(m.Files, name)
		}
	}
	for reason, n := range goeye.Summarize(results) {
		m.Outcomes[reason.String()] = n
	}
	if spot, ok := goeye.SpotRadius(results); ok {
		m.SpotRMS = &spot
	}
	return m
}

// WriteManifest saves Manifest(results) as manifest.yaml in the run directory
func (e *ExperimentDir) WriteManifest(results []goeye.TraceResult) error {
	data, err := yaml.Marshal(e.Manifest(results))
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(e.Path, ManifestFile), data, 0644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}
	return nil
}
