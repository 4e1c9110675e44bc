package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cemlint/cemlint/internal/adapters/outbound/config"
	"github.com/cemlint/cemlint/internal/adapters/outbound/tui"
	"github.com/cemlint/cemlint/internal/domain"
)

func newRulesCmd() *cobra.Command {
	var (
		path       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the resolved rule severities",
		Long:  "Print every rule with the severity it runs at after .cemlint.yaml is layered over the defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			opts, err := config.New().Load(absPath)
			if err != nil {
				return err
			}
			resolved, err := domain.ResolveRules(opts.Rules)
			if err != nil {
				return fmt.Errorf("resolving rules: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, resolved.Settings())
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(resolved))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project directory containing .cemlint.yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
