package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand adds a 'version' subcommand, which prints the package's version.
//
// When adding this as a subcommand to another CLI, use:
//
//	cmd.AddCommand(version.NewVersionCommand())
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print CLI's version",
		Run: func(cmd *cobra.Command, args []string) {
			pkgInfo := GetPackageInfo()
			fmt.Printf("package: %s version:%s commit:%s date:%s\n",
				pkgInfo.PackageName,
				pkgInfo.PackageVersion,
				pkgInfo.PackageCommit,
				pkgInfo.PackageReleaseDate,
			)
		},
	}
}
