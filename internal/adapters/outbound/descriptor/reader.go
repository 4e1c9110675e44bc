package descriptor

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/cemlint/cemlint/internal/domain"
	"github.com/cemlint/cemlint/internal/domain/rules"
)

// Reader implements domain.DescriptorReader for package.json files.
// Relative paths resolve against the base directory.
type Reader struct {
	baseDir string
}

// New creates a Reader rooted at baseDir. An empty baseDir means the
// working directory.
func New(baseDir string) *Reader { return &Reader{baseDir: baseDir} }

// Read parses the package.json at path. Paths that are not plain file
// paths are rejected with domain.ErrInvalidPath without touching the disk.
func (r *Reader) Read(path string) (*domain.PackageDescriptor, error) {
	if !rules.IsValidFilePath(path) {
		return nil, fmt.Errorf("%q is %w", path, domain.ErrInvalidPath)
	}

	full := path
	if r.baseDir != "" && !filepath.IsAbs(path) {
		full = filepath.Join(r.baseDir, path)
	}

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var pkg domain.PackageDescriptor
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &pkg, nil
}
