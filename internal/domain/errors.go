package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPath is returned when a configured file path is not a plain
// file path (for example a glob pattern).
var ErrInvalidPath = errors.New("not a valid file path")

// ValidationError is returned when a run produced error-severity findings
// and errors were not downgraded to log output.
type ValidationError struct {
	Findings []Finding
}

func (e *ValidationError) Error() string {
	return FormatErrors(e.Findings)
}

// FormatErrors renders the aggregated error message for blocking findings.
func FormatErrors(findings []Finding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[cem-validator] - %d error(s) found.\n", len(findings))
	for _, f := range findings {
		fmt.Fprintf(&b, "  - %s: %s\n", f.Rule, f.Message)
	}
	return b.String()
}
