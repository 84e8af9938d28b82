// internal/cli/command.go
package cli

import (
	"github.com/spf13/cobra"

	"mitocheck/internal/version"
)

func newCommand(use, short, long, example string, runE func(*cobra.Command, []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:     use,
		Short:   short,
		Long:    long,
		Example: example,
		Version: version.Version,
		RunE:    runE,

		// Apps own error printing and exit codes.
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.Flags().SortFlags = false
	return cmd
}
