package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cemlint/cemlint/internal/domain"
)

// FileName is the project configuration file read from the project root.
const FileName = ".cemlint.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .cemlint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .cemlint.yaml from projectPath. A missing file yields zero
// options, which resolve to the built-in defaults.
func (l *YAMLLoader) Load(projectPath string) (domain.Options, error) {
	data, err := os.ReadFile(filepath.Join(projectPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Options{}, nil
		}
		return domain.Options{}, err
	}

	var opts domain.Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return domain.Options{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate raw input so typos in severities surface with the file name.
	if err := opts.Rules.Validate(); err != nil {
		return domain.Options{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return opts, nil
}
