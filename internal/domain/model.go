package domain

import "time"

// Severity controls whether a rule is suppressed, reported or escalated.
type Severity string

const (
	SeverityOff     Severity = "off"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityOff, SeverityWarning, SeverityError:
		return true
	}
	return false
}

// Finding is a single rule evaluation result.
type Finding struct {
	Rule     string   `json:"rule"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Findings accumulates findings for one validation run.
// The zero value is ready to use.
type Findings struct {
	items []Finding
}

// Add records a finding. Findings with severity off are dropped.
func (f *Findings) Add(rule string, severity Severity, message string) {
	if severity == SeverityOff || severity == "" {
		return
	}
	f.items = append(f.items, Finding{Rule: rule, Severity: severity, Message: message})
}

// Len returns the number of findings recorded so far.
func (f *Findings) Len() int { return len(f.items) }

// Drain returns the recorded findings in insertion order and empties the
// accumulator.
func (f *Findings) Drain() []Finding {
	out := f.items
	f.items = nil
	return out
}

// Partition splits findings into warnings and errors, preserving order.
func Partition(findings []Finding) (warnings, errors []Finding) {
	for _, f := range findings {
		switch f.Severity {
		case SeverityWarning:
			warnings = append(warnings, f)
		case SeverityError:
			errors = append(errors, f)
		}
	}
	return warnings, errors
}

// Report summarizes one validation run.
type Report struct {
	Status        string    `json:"status"`
	SchemaVersion string    `json:"schema_version,omitempty"`
	Findings      []Finding `json:"findings"`
	Warnings      int       `json:"warnings"`
	Errors        int       `json:"errors"`
	Skipped       bool      `json:"skipped,omitempty"`
	CommitHash    string    `json:"commit_hash,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

const (
	StatusPass    = "pass"
	StatusWarn    = "warn"
	StatusFail    = "fail"
	StatusSkipped = "skipped"
)

// StatusFor derives the run status from warning and error counts.
func StatusFor(warnings, errors int) string {
	switch {
	case errors > 0:
		return StatusFail
	case warnings > 0:
		return StatusWarn
	default:
		return StatusPass
	}
}

// RunEntry is one recorded validation run.
type RunEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	CommitHash string    `json:"commit_hash,omitempty"`
	Manifest   string    `json:"manifest"`
	Status     string    `json:"status"`
	Warnings   int       `json:"warnings"`
	Errors     int       `json:"errors"`
}
