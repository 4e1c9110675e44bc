package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cemlint/cemlint/internal/domain"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "cemlint",
		Short:         "Validate Custom Elements Manifests",
		Long:          "cemlint checks a custom-elements.json manifest and the package.json that publishes it for missing or malformed metadata.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newRulesCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the root command. Validation failures were already written
// by the sink; other errors are printed here.
func Execute() error {
	err := newRootCmd().Execute()
	var verr *domain.ValidationError
	if err != nil && !errors.As(err, &verr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
