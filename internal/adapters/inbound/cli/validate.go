package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/cemlint/cemlint/internal/adapters/outbound/config"
	"github.com/cemlint/cemlint/internal/adapters/outbound/descriptor"
	"github.com/cemlint/cemlint/internal/adapters/outbound/gitinfo"
	"github.com/cemlint/cemlint/internal/adapters/outbound/history"
	"github.com/cemlint/cemlint/internal/adapters/outbound/logsink"
	"github.com/cemlint/cemlint/internal/adapters/outbound/manifest"
	"github.com/cemlint/cemlint/internal/adapters/outbound/tui"
	"github.com/cemlint/cemlint/internal/application"
	"github.com/cemlint/cemlint/internal/domain"
)

type validateFlags struct {
	path        string
	pkg         string
	cemFileName string
	logErrors   bool
	exclude     []string
	debug       bool
	skip        bool
	rules       []string
	jsonOutput  bool
	record      bool
	showHistory bool
}

func newValidateCmd() *cobra.Command {
	var f validateFlags

	cmd := &cobra.Command{
		Use:   "validate [manifest]",
		Short: "Validate a Custom Elements Manifest",
		Long: "Check custom-elements.json and package.json for missing or malformed metadata. " +
			"The manifest defaults to <path>/<cem-file-name>. Settings from .cemlint.yaml are overridden by flags.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(f.path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if f.showHistory {
				entries, err := history.New().Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			opts, err := loadOptions(cmd, absPath, f)
			if err != nil {
				return err
			}

			manifestPath := filepath.Join(absPath, opts.CEMFileName)
			if opts.CEMFileName == "" {
				manifestPath = filepath.Join(absPath, domain.DefaultCEMFileName)
			}
			if len(args) > 0 {
				manifestPath = args[0]
			}

			var cem *domain.Manifest
			if !opts.Skip {
				cem, err = manifest.New().Load(manifestPath)
				if err != nil {
					return err
				}
			}

			svc := application.NewValidateService(descriptor.New(absPath), logsink.Factory(cmd.ErrOrStderr()))
			report, runErr := svc.Validate(cem, opts)
			if report == nil {
				return fmt.Errorf("validation failed: %w", runErr)
			}

			if hash, err := gitinfo.New().CommitHash(absPath); err == nil {
				report.CommitHash = hash
			}

			if f.record && !report.Skipped {
				_ = history.New().Save(absPath, domain.RunEntry{
					Timestamp:  report.Timestamp,
					CommitHash: report.CommitHash,
					Manifest:   manifestPath,
					Status:     report.Status,
					Warnings:   report.Warnings,
					Errors:     report.Errors,
				}) // best-effort
			}

			if f.jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			}

			return runErr
		},
	}

	cmd.Flags().StringVar(&f.path, "path", ".", "Project directory containing package.json")
	cmd.Flags().StringVar(&f.pkg, "package", "", "Path to package.json, relative to --path (default ./package.json)")
	cmd.Flags().StringVar(&f.cemFileName, "cem-file-name", "", "Manifest file name (default custom-elements.json)")
	cmd.Flags().BoolVar(&f.logErrors, "log-errors", false, "Log error findings instead of failing")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "Component class names to skip")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Verbose output")
	cmd.Flags().BoolVar(&f.skip, "skip", false, "Skip validation")
	cmd.Flags().StringArrayVar(&f.rules, "rule", nil, "Rule severity override, e.g. manifest.tagName=off")
	cmd.Flags().BoolVar(&f.jsonOutput, "json", false, "Write the report as JSON to stdout")
	cmd.Flags().BoolVar(&f.record, "record", false, "Append this run to .cemlint/history")
	cmd.Flags().BoolVar(&f.showHistory, "history", false, "Show recorded validation runs")

	return cmd
}

// loadOptions reads .cemlint.yaml and applies the flags the user set.
func loadOptions(cmd *cobra.Command, projectPath string, f validateFlags) (domain.Options, error) {
	opts, err := config.New().Load(projectPath)
	if err != nil {
		return domain.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("package") {
		opts.PackageDescriptorPath = f.pkg
	}
	if flags.Changed("cem-file-name") {
		opts.CEMFileName = f.cemFileName
	}
	if flags.Changed("log-errors") {
		opts.LogErrors = f.logErrors
	}
	if flags.Changed("debug") {
		opts.Debug = f.debug
	}
	if flags.Changed("skip") {
		opts.Skip = f.skip
	}
	opts.Exclude = append(opts.Exclude, f.exclude...)

	for _, r := range f.rules {
		rule, sev, ok := strings.Cut(r, "=")
		if !ok {
			return domain.Options{}, fmt.Errorf("invalid --rule %q (want group.rule=severity)", r)
		}
		if err := opts.Rules.Set(strings.TrimSpace(rule), domain.Severity(strings.TrimSpace(sev))); err != nil {
			return domain.Options{}, err
		}
	}
	return opts, nil
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
