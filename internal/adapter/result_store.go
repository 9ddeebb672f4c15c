package adapter

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	m "grademill.dev/pkg/grademill/internal/model"
)

// ResultStore abstracts persisting evaluation results.
type ResultStore interface {
	Save(path m.Path, evaluation m.Evaluation) error
	Load(path m.Path) (m.Evaluation, error)
}

// YAMLResultStore persists evaluations as YAML files.
type YAMLResultStore struct{}

// NewYAMLResultStore constructs a YAMLResultStore.
func NewYAMLResultStore() *YAMLResultStore {
	return &YAMLResultStore{}
}

// Save writes the evaluation to path.
func (s *YAMLResultStore) Save(path m.Path, evaluation m.Evaluation) error {
	content, err := yaml.Marshal(evaluation)
	if err != nil {
		return fmt.Errorf("failed to encode evaluation: %w", err)
	}

	if err := os.WriteFile(string(path), content, 0o644); err != nil {
		return fmt.Errorf("failed to write evaluation %s: %w", path, err)
	}

	return nil
}

// Load reads an evaluation back from path.
func (s *YAMLResultStore) Load(path m.Path) (m.Evaluation, error) {
	content, err := os.ReadFile(string(path))
	if err != nil {
		return m.Evaluation{}, fmt.Errorf("failed to read evaluation %s: %w", path, err)
	}

	var evaluation m.Evaluation
	if err := yaml.Unmarshal(content, &evaluation); err != nil {
		return m.Evaluation{}, fmt.Errorf("failed to parse evaluation %s: %w", path, err)
	}

	return evaluation, nil
}
