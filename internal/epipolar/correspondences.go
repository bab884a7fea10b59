// Package epipolar provides the correspondence file format shared by the
// CLI and the test suites, together with quality metrics for candidate
// essential matrices.
package epipolar

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/geo/r2"
	"gopkg.in/yaml.v3"
)

// Correspondences pairs the projections of the same world points in two
// views. Right[i] and Left[i] belong together; both slices are expected in
// normalized image coordinates.
type Correspondences struct {
	Right []r2.Point
	Left  []r2.Point
}

// pointDoc is the on-disk shape of a single point.
type pointDoc struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// correspondencesDoc is the on-disk shape of a correspondence set.
type correspondencesDoc struct {
	Right []pointDoc `json:"right" yaml:"right"`
	Left  []pointDoc `json:"left" yaml:"left"`
}

// Validate checks that the two point lists pair up.
func (c *Correspondences) Validate() error {
	if len(c.Right) != len(c.Left) {
		return fmt.Errorf("mismatched correspondence lists: %d right and %d left points",
			len(c.Right), len(c.Left))
	}
	return nil
}

// Len returns the number of correspondence pairs.
func (c *Correspondences) Len() int {
	return len(c.Right)
}

// Load reads a correspondence set from a JSON or YAML file, chosen by
// extension (.json reads JSON; everything else is treated as YAML).
func Load(path string) (*Correspondences, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading correspondences: %w", err)
	}

	var doc correspondencesDoc
	if isJSON(path) {
		err = json.Unmarshal(data, &doc)
	} else {
		err = yaml.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing correspondences %s: %w", path, err)
	}

	c := &Correspondences{
		Right: fromDocs(doc.Right),
		Left:  fromDocs(doc.Left),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes the correspondence set to path as JSON or YAML, chosen by
// extension the same way Load chooses.
func (c *Correspondences) Save(path string) error {
	doc := correspondencesDoc{
		Right: toDocs(c.Right),
		Left:  toDocs(c.Left),
	}

	var (
		data []byte
		err  error
	)
	if isJSON(path) {
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(doc)
	}
	if err != nil {
		return fmt.Errorf("encoding correspondences: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing correspondences: %w", err)
	}
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

func toDocs(pts []r2.Point) []pointDoc {
	docs := make([]pointDoc, len(pts))
	for i, p := range pts {
		docs[i] = pointDoc{X: p.X, Y: p.Y}
	}
	return docs
}

func fromDocs(docs []pointDoc) []r2.Point {
	pts := make([]r2.Point, len(docs))
	for i, d := range docs {
		pts[i] = r2.Point{X: d.X, Y: d.Y}
	}
	return pts
}
