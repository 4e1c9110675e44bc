package domain

// DescriptorReader reads a package.json descriptor. Implementations must
// reject malformed paths with ErrInvalidPath before touching storage.
type DescriptorReader interface {
	Read(path string) (*PackageDescriptor, error)
}

// ManifestLoader reads a Custom Elements Manifest.
type ManifestLoader interface {
	Load(path string) (*Manifest, error)
}

// ConfigLoader loads project-level options, returning defaults when the
// project has no configuration file.
type ConfigLoader interface {
	Load(projectPath string) (Options, error)
}

// Sink receives console output of a run. Messages are dropped unless the
// sink is in debug mode or force is set.
type Sink interface {
	Info(msg string, force bool)
	Success(msg string, force bool)
	Warn(msg string, force bool)
	Error(msg string, force bool)
}

// SinkFactory builds a sink for one run.
type SinkFactory func(debug bool) Sink

// GitInfo provides git metadata about a project directory.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}

// RunHistory persists summaries of past validation runs.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}
