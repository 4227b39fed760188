package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadOptions configures the behavior of config loading
type LoadOptions struct {
	ValidateImmediately bool
	ResolvePaths        bool
	MergeFiles          bool
}

// LoadFromFile loads an ExperimentConfig from a YAML file on top of Default()
func LoadFromFile(path string, opts LoadOptions) (*ExperimentConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data, filepath.Dir(path), opts)
}

// Parse decodes YAML on top of Default(). Relative paths resolve against baseDir.
//
// Media resolve in order: inline, then media.from_file when MergeFiles is set, then the
// default media.
func Parse(data []byte, baseDir string, opts LoadOptions) (*ExperimentConfig, error) {
	config := Default()
	// yaml.v3 decodes into an existing map, so start media empty to keep what the file
	// wrote apart from the defaults
	config.Media = Media{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if opts.ResolvePaths {
		config.ResolvePaths(baseDir)
	}

	if opts.MergeFiles {
		if err := config.LoadAndMerge(); err != nil {
			return nil, fmt.Errorf("merging external files: %w", err)
		}
	}
	config.Media.addDefaults(defaultMedia())

	if opts.ValidateImmediately {
		if errs := config.Validate(); len(errs) > 0 {
			return nil, ValidationErrors(errs)
		}
	}

	return config, nil
}

// SaveToFile saves an ExperimentConfig to a YAML file
func SaveToFile(config *ExperimentConfig, path string) error {
	// Update metadata before saving
	config.Metadata = CollectMetadata()

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// ResolvePaths makes every relative path in the config relative to baseDir
func (c *ExperimentConfig) ResolvePaths(baseDir string) {
	if c.Media.FromFile != "" && !filepath.IsAbs(c.Media.FromFile) {
		c.Media.FromFile = filepath.Join(baseDir, c.Media.FromFile)
	}
}
