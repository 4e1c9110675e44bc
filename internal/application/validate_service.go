package application

import (
	"fmt"
	"time"

	"github.com/cemlint/cemlint/internal/domain"
	"github.com/cemlint/cemlint/internal/domain/rules"
)

const logPrefix = "[cem-validator] - "

// ValidateService validates a Custom Elements Manifest against the
// package.json of the library it describes.
type ValidateService struct {
	descriptors domain.DescriptorReader
	sinks       domain.SinkFactory
	now         func() time.Time
}

// NewValidateService creates a ValidateService. Each run gets a fresh sink
// from sinks, configured with the run's debug flag.
func NewValidateService(descriptors domain.DescriptorReader, sinks domain.SinkFactory) *ValidateService {
	return &ValidateService{descriptors: descriptors, sinks: sinks, now: time.Now}
}

// Validate runs every configured rule and reports the findings. It returns
// a *domain.ValidationError when error-severity findings exist and
// opts.LogErrors is false; the report is returned in both cases.
// Configuration problems, such as a malformed descriptor path, abort the
// run before any rule is evaluated.
func (s *ValidateService) Validate(manifest *domain.Manifest, opts domain.Options) (*domain.Report, error) {
	sink := s.sinks(opts.Debug)
	report := &domain.Report{Timestamp: s.now()}
	if manifest != nil {
		report.SchemaVersion = manifest.SchemaVersion
	}

	if opts.Skip {
		sink.Warn(logPrefix+"Skipped", true)
		report.Status = domain.StatusSkipped
		report.Skipped = true
		return report, nil
	}

	resolved, err := opts.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolving options: %w", err)
	}

	pkg, err := s.descriptors.Read(resolved.PackageDescriptorPath)
	if err != nil {
		return nil, fmt.Errorf("reading package descriptor: %w", err)
	}

	sink.Info(logPrefix+"Validating Custom Elements Manifest...", false)
	findings := rules.Evaluate(resolved.Rules, rules.Input{
		Package:     pkg,
		Manifest:    manifest,
		CEMFileName: resolved.CEMFileName,
		Exclude:     resolved.Exclude,
	})

	report.Findings = findings
	if report.Findings == nil {
		report.Findings = []domain.Finding{}
	}
	warnings, errs := domain.Partition(findings)
	report.Warnings, report.Errors = len(warnings), len(errs)
	report.Status = domain.StatusFor(report.Warnings, report.Errors)

	if err := reportFindings(sink, warnings, errs, resolved.LogErrors); err != nil {
		return report, err
	}
	sink.Success(logPrefix+"Custom Elements Manifest validation complete.", false)
	return report, nil
}

// reportFindings writes findings to the sink and decides whether errors
// fail the run. The warning summary line always prints; individual
// warnings only in debug mode. Errors are always listed, and fail the run
// unless logErrors is set.
func reportFindings(sink domain.Sink, warnings, errs []domain.Finding, logErrors bool) error {
	if len(warnings) == 0 && len(errs) == 0 {
		sink.Success(logPrefix+"All rules passed. No issues found.", false)
		return nil
	}

	if len(warnings) > 0 {
		sink.Warn(fmt.Sprintf("%s%d warning(s) found.", logPrefix, len(warnings)), true)
		for _, w := range warnings {
			sink.Warn(fmt.Sprintf("  - %s: %s", w.Rule, w.Message), false)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	sink.Error(domain.FormatErrors(errs), true)
	if logErrors {
		return nil
	}
	return &domain.ValidationError{Findings: errs}
}
