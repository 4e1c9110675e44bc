package manifest

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/cemlint/cemlint/internal/domain"
)

// Loader implements domain.ManifestLoader for custom-elements.json files.
type Loader struct{}

// New creates a Loader.
func New() *Loader { return &Loader{} }

// Load reads and decodes the manifest at path.
func (l *Loader) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	return Decode(data)
}

// Decode parses manifest JSON. Fields the rules do not read are ignored.
func Decode(data []byte) (*domain.Manifest, error) {
	var m domain.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
