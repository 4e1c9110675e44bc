// Package rules holds the pure checks run against a package descriptor and
// a Custom Elements Manifest, and the aggregator that applies them.
package rules

import "regexp"

var filePathPattern = regexp.MustCompile(`^(/|\./|\.\./|[a-zA-Z]:[\\/]|\.\\|\.\.\\)?([a-zA-Z0-9_\-./\\]+)$`)

// IsValidFilePath reports whether path looks like a plain POSIX or Windows
// file path. Glob patterns and the empty string are rejected. The check is
// lexical only.
func IsValidFilePath(path string) bool {
	return filePathPattern.MatchString(path)
}
