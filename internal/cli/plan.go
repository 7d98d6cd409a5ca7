package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"android-provision/internal/app"
)

type planOptions struct {
	Manifest string
	Release  string
	Home     string
}

func newPlanCommand() *cobra.Command {
	opts := planOptions{}
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the provisioning plan without executing it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Package-set manifest override file")
	cmd.Flags().StringVar(&opts.Release, "release", "", "Ubuntu release override (skips host detection)")
	cmd.Flags().StringVar(&opts.Home, "home", "", "Home directory override (skips account lookup)")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	return cmd
}

func runPlan(ctx context.Context, cmd *cobra.Command, opts planOptions) error {
	service := newAppService()
	result, err := service.Plan(ctx, app.PlanRequest{
		ManifestPath:    resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		ReleaseOverride: opts.Release,
		HomeOverride:    opts.Home,
	})
	if err != nil {
		return err
	}
	fmt.Printf("release: %s\n", result.Facts.OSVersion)
	fmt.Printf("home: %s\n", result.Facts.HomeDir)
	fmt.Printf("base packages: %s\n", strings.Join(result.Packages.Base, " "))
	fmt.Printf("android packages: %s\n", strings.Join(result.Packages.Android, " "))
	if result.Packages.DefaultUsed {
		fmt.Println("warning: unrecognized release, default android package set selected")
	}
	for _, entry := range result.PathPlan {
		fmt.Printf("path: %s\n", entry.Dir)
	}
	for _, step := range result.Steps {
		fmt.Printf("step: %s\n", step)
	}
	return nil
}
