package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"android-provision/internal/app"
)

type packagesOptions struct {
	Release  string
	Manifest string
}

func newPackagesCommand() *cobra.Command {
	opts := packagesOptions{}
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "Print the package sets selected for a release",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPackages(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Release, "release", "", "Ubuntu release (e.g. 22.04)")
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Package-set manifest override file")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	return cmd
}

func runPackages(ctx context.Context, cmd *cobra.Command, opts packagesOptions) error {
	service := newAppService()
	result, err := service.Packages(ctx, app.PackagesRequest{
		Release:      opts.Release,
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("base: %s\n", strings.Join(result.Packages.Base, " "))
	fmt.Printf("android: %s\n", strings.Join(result.Packages.Android, " "))
	if result.Packages.DefaultUsed {
		fmt.Println("warning: unrecognized release, default android package set selected")
	}
	return nil
}
