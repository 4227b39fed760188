package experiment

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	goeye "github.com/jdginn/go-eye-optics/eye"
)

func TestGenerateExperimentID(t *testing.T) {
	id := GenerateExperimentID()
	assert.Regexp(t, regexp.MustCompile(`^[a-z]+-[a-z]+-\d{8}-\d{6}$`), id)
}

func TestGenerateExperimentNameUsesWordLists(t *testing.T) {
	name := GenerateExperimentName()
	var adjective, noun string
	for _, a := range adjectives {
		if len(name) > len(a) && name[:len(a)+1] == a+"-" {
			adjective = a
		}
	}
	require.NotEmpty(t, adjective, name)
	noun = name[len(adjective)+1:]
	assert.Contains(t, nouns, noun)
}

func TestCreateExperimentDirectory(t *testing.T) {
	assert := assert.New(t)
	root := filepath.Join(t.TempDir(), "experiments")

	dir, err := CreateExperimentDirectory(root)
	require.NoError(t, err)
	assert.DirExists(dir.Path)
	assert.True(filepath.IsAbs(dir.Path))
	assert.Equal(dir.ID, filepath.Base(dir.Path))
	assert.Equal(filepath.Join(dir.Path, "rays.png"), dir.GetFilePath("rays.png"))

	target, err := os.Readlink(filepath.Join(root, LatestSymlink))
	require.NoError(t, err)
	assert.Equal(dir.ID, target)
}

func TestCopyConfigFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "eye.yaml")
	require.NoError(t, os.WriteFile(src, []byte("eye: {length: 24}\n"), 0644))

	dir, err := CreateExperimentDirectory(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, dir.CopyConfigFile(src))

	copied, err := os.ReadFile(dir.GetFilePath("eye.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "eye: {length: 24}\n", string(copied))

	assert.Error(t, dir.CopyConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
}

func TestWriteManifest(t *testing.T) {
	assert := assert.New(t)

	src := filepath.Join(t.TempDir(), "eye.yaml")
	require.NoError(t, os.WriteFile(src, []byte("eye: {length: 24}\n"), 0644))
	dir, err := CreateExperimentDirectory(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, dir.CopyConfigFile(src))
	require.NoError(t, os.WriteFile(dir.GetFilePath("rays.png"), []byte("png"), 0644))
	// Requested but never written
	dir.GetFilePath("focus.png")
	assert.Equal([]string{"eye.yaml", "rays.png", "focus.png"}, dir.Artifacts())

	m := goeye.DefaultEyeModel()
	pupil := goeye.NewPupil(goeye.DefaultPupilPosition, goeye.DefaultPupilRadius, goeye.DefaultEyeRadius)
	var results []goeye.TraceResult
	for _, ray := range goeye.ParallelRays(goeye.DefaultObjectX, []float64{0, 1, 3.5}) {
		results = append(results, m.Trace(ray, pupil))
	}
	require.NoError(t, dir.WriteManifest(results))

	data, err := os.ReadFile(filepath.Join(dir.Path, ManifestFile))
	require.NoError(t, err)
	var manifest Manifest
	require.NoError(t, yaml.Unmarshal(data, &manifest))

	assert.Equal(dir.ID, manifest.ID)
	assert.Equal("eye.yaml", manifest.Config)
	assert.Equal(3, manifest.Rays)
	assert.Equal(map[string]int{"retina": 2, "pupil": 1}, manifest.Outcomes)
	require.NotNil(t, manifest.SpotRMS)
	assert.Less(*manifest.SpotRMS, 0.06)
	assert.Equal([]string{"eye.yaml", "rays.png"}, manifest.Files)
}

func TestManifestWithoutRetinaHits(t *testing.T) {
	dir, err := CreateExperimentDirectory(t.TempDir())
	require.NoError(t, err)

	m := dir.Manifest([]goeye.TraceResult{{Path: goeye.RayPath{{X: -3, Y: 9}}, Reason: goeye.NoIntersection}})
	assert.Nil(t, m.SpotRMS)
	assert.Equal(t, map[string]int{"no intersection": 1}, m.Outcomes)
	assert.Empty(t, m.Files)
	assert.Empty(t, m.Config)
}
