package selfcommand

import (
	"github.com/spf13/cobra"

	"github.com/redjax/strhex/internal/version"
)

// NewSelfCommand creates the 'self' parent command
func NewSelfCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "self",
		Short: "Manage this strhex CLI",
		Long:  "Self-management operations for strhex, e.g. show version & build info.",
	}

	// Attach 'info' as a subcommand
	cmd.AddCommand(NewPackageInfoCommand())
	// Attach 'version' as a subcommand
	cmd.AddCommand(version.NewVersionCommand())

	return cmd
}
