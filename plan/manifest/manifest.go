// Package manifest loads a problem instance from a JSON or YAML file:
//
//	{"files": [{"name": "a", "size": 10}], "diskSize": 20}
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inference-sim/diskplan/plan"
)

// Manifest is the on-disk description of an instance.
type Manifest struct {
	Files    []FileSpec `yaml:"files"`
	DiskSize uint64     `yaml:"diskSize"`
}

// FileSpec is one file entry of a manifest.
type FileSpec struct {
	Name Name   `yaml:"name"`
	Size uint64 `yaml:"size"`
}

// Name is a file name. The document must spell it as a string: an unquoted
// number, boolean or null is rejected instead of being read as its text.
type Name string

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Name) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode || node.ShortTag() != "!!str" {
		return fmt.Errorf("line %d: file name must be a string, got %s", node.Line, node.ShortTag())
	}
	*n = Name(node.Value)
	return nil
}

// Load reads and validates the manifest at path.
func Load(path string) (*plan.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	inst, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return inst, nil
}

// Parse decodes a manifest document. Unknown keys are rejected so typos
// surface as errors.
func Parse(data []byte) (*plan.Instance, error) {
	var m Manifest
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty manifest")
		}
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return m.Instance()
}

// Instance converts the manifest into a validated plan.Instance.
func (m *Manifest) Instance() (*plan.Instance, error) {
	files := make([]plan.File, len(m.Files))
	for i, f := range m.Files {
		files[i] = plan.File{Name: string(f.Name), Size: f.Size}
	}
	return plan.NewInstance(files, m.DiskSize)
}
