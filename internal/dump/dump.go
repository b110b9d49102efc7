// Package dump persists the loose source model between the parse and build
// stages so a run can be inspected or replayed without re-parsing.
package dump

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/voxelforge/tsmodelgen/internal/model"
)

// Save writes the source model to the provided path, creating parent
// directories as needed.
func Save(m *model.SourceModel, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dump directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal model dump: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write model dump: %w", err)
	}

	return nil
}

// Load reads a previously saved source model. If the file does not exist,
// an empty model is returned.
func Load(path string) (*model.SourceModel, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return &model.SourceModel{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read model dump: %w", err)
	}

	var m model.SourceModel
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal model dump: %w", err)
	}

	return &m, nil
}
