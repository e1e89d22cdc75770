package selfcommand

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/redjax/strhex/internal/version"
)

// NewPackageInfoCommand creates the 'self info' command
func NewPackageInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show info about the current package",
		RunE:  showPackageInfo,
	}
}

func showPackageInfo(cmd *cobra.Command, args []string) error {
	pkgInfo := version.GetPackageInfo()

	fmt.Printf(
		"Program: %s\nOwner: %s\nRepository Name: %s\nRepository URL: %s\nVersion: %s\nCommit: %s\nRelease Date: %s\n",
		pkgInfo.PackageName,
		pkgInfo.RepoUser,
		pkgInfo.RepoName,
		pkgInfo.RepoUrl,
		pkgInfo.PackageVersion,
		pkgInfo.PackageCommit,
		pkgInfo.PackageReleaseDate,
	)

	return nil
}
