package scene

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/animcore/internal/logger"
	"github.com/ivlev/animcore/internal/system"
)

// Parse decodes a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*Document, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &doc, nil
}

// Read parses the YAML document at path.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Write writes doc to path as YAML.
func Write(doc *Document, path string) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load reads and builds the scene at path.
func Load(path string) (*Scene, error) {
	doc, err := Read(path)
	if err != nil {
		return nil, err
	}
	s, err := Build(doc)
	if err != nil {
		logger.Logger().Debug("scene rejected", "path", path, "err", err)
		return nil, err
	}
	logger.Logger().Debug("scene loaded",
		"path", path,
		"layers", len(s.Layers),
		"in", s.InPoint,
		"out", s.OutPoint)
	return s, nil
}

// FindLatest returns the most recently modified .yaml or .yml file in dir.
func FindLatest(dir string) (string, error) {
	return system.FindLatest(dir, ".yaml", ".yml")
}
