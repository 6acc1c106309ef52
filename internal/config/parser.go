package config

import (
	"os"

	"gopkg.in/yaml.v3"

	repypeerrors "github.com/kostrykin/repype/pkg/errors"
)

// ParsePipeline loads a pipeline definition from disk, validates it, and
// returns the resulting model.
func ParsePipeline(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, repypeerrors.NewConfigurationError(path, "cannot read pipeline file", err)
	}

	var pipeline Pipeline
	if err := yaml.Unmarshal(data, &pipeline); err != nil {
		return nil, repypeerrors.NewConfigurationError(path, err.Error(), err)
	}

	if err := ValidatePipeline(&pipeline); err != nil {
		return nil, err
	}

	return &pipeline, nil
}
