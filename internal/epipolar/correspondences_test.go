package epipolar

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCorrespondences() *Correspondences {
	return &Correspondences{
		Right: []r2.Point{
			{X: 0.1, Y: 0.2}, {X: -0.3, Y: 0.4}, {X: 0.5, Y: -0.6},
			{X: 0.7, Y: 0.8}, {X: -0.9, Y: 0.05},
		},
		Left: []r2.Point{
			{X: 0.11, Y: 0.19}, {X: -0.29, Y: 0.41}, {X: 0.52, Y: -0.58},
			{X: 0.68, Y: 0.81}, {X: -0.88, Y: 0.04},
		},
	}
}

func TestSaveLoadRoundTripJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.json")
	want := sampleCorrespondences()

	require.NoError(t, want.Save(path))
	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, want.Right, got.Right)
	assert.Equal(t, want.Left, got.Left)
}

func TestSaveLoadRoundTripYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.yaml")
	want := sampleCorrespondences()

	require.NoError(t, want.Save(path))
	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, want.Right, got.Right)
	assert.Equal(t, want.Left, got.Left)
}

func TestLoadExplicitDocuments(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "pairs.json")
	jsonDoc := `{"right": [{"x": 1, "y": 2}], "left": [{"x": 3, "y": 4}]}`
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonDoc), 0o600))

	c, err := Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, []r2.Point{{X: 1, Y: 2}}, c.Right)
	assert.Equal(t, []r2.Point{{X: 3, Y: 4}}, c.Left)

	yamlPath := filepath.Join(dir, "pairs.yaml")
	yamlDoc := "right:\n  - {x: 1, y: 2}\nleft:\n  - {x: 3, y: 4}\n"
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlDoc), 0o600))

	c, err = Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, []r2.Point{{X: 1, Y: 2}}, c.Right)
	assert.Equal(t, []r2.Point{{X: 3, Y: 4}}, c.Left)
}

func TestLoadMismatchedLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.json")
	doc := `{"right": [{"x": 1, "y": 2}], "left": []}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatched")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidateAndLen(t *testing.T) {
	c := sampleCorrespondences()
	require.NoError(t, c.Validate())
	assert.Equal(t, 5, c.Len())

	c.Left = c.Left[:4]
	require.Error(t, c.Validate())
}
