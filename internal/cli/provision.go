package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"android-provision/internal/app"
	"android-provision/internal/types"
)

type provisionOptions struct {
	Manifest         string
	SubstepPolicy    string
	GitName          string
	GitEmail         string
	PlatformToolsURL string
	LFSVersion       string
	LFSURL           string
	LFSLogPath       string
}

func newProvisionCommand() *cobra.Command {
	opts := provisionOptions{}
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Run the full provisioning sequence (requires root)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProvision(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Package-set manifest override file")
	cmd.Flags().StringVar(&opts.SubstepPolicy, "substep-policy", "lenient", "Platform-tools sub-step failure policy (strict or lenient)")
	cmd.Flags().StringVar(&opts.GitName, "git-name", "", "Global git user.name")
	cmd.Flags().StringVar(&opts.GitEmail, "git-email", "", "Global git user.email")
	cmd.Flags().StringVar(&opts.PlatformToolsURL, "platform-tools-url", "", "Platform-tools archive URL")
	cmd.Flags().StringVar(&opts.LFSVersion, "lfs-version", "", "Pinned git-lfs release version")
	cmd.Flags().StringVar(&opts.LFSURL, "lfs-url", "", "Pinned git-lfs release archive URL")
	cmd.Flags().StringVar(&opts.LFSLogPath, "lfs-log", "", "Log path for the forced git-lfs retry")

	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("substep_policy", cmd.Flags().Lookup("substep-policy"))
	_ = viper.BindPFlag("git_user_name", cmd.Flags().Lookup("git-name"))
	_ = viper.BindPFlag("git_user_email", cmd.Flags().Lookup("git-email"))
	_ = viper.BindPFlag("platform_tools_url", cmd.Flags().Lookup("platform-tools-url"))
	_ = viper.BindPFlag("git_lfs_version", cmd.Flags().Lookup("lfs-version"))
	_ = viper.BindPFlag("git_lfs_url", cmd.Flags().Lookup("lfs-url"))
	_ = viper.BindPFlag("lfs_log_path", cmd.Flags().Lookup("lfs-log"))

	return cmd
}

// runProvision writes nothing itself: the reporter owns all run output,
// and the export lines it prints last must stay the final lines so
// operators can paste the tail of the output verbatim.
func runProvision(ctx context.Context, cmd *cobra.Command, opts provisionOptions) error {
	service := newAppService()
	_, err := service.Provision(ctx, app.ProvisionRequest{
		ManifestPath:  resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		Pins:          resolvePins(cmd, opts),
		GitUserName:   resolveString(cmd, opts.GitName, "git_user_name", "git-name"),
		GitUserEmail:  resolveString(cmd, opts.GitEmail, "git_user_email", "git-email"),
		SubstepPolicy: types.SubstepPolicy(resolveString(cmd, opts.SubstepPolicy, "substep_policy", "substep-policy")),
	})
	return err
}

func resolvePins(cmd *cobra.Command, opts provisionOptions) types.ArtifactPins {
	lfsVersion := resolveString(cmd, opts.LFSVersion, "git_lfs_version", "lfs-version")
	lfsURL := resolveString(cmd, opts.LFSURL, "git_lfs_url", "lfs-url")
	if lfsURL == "" {
		lfsURL = fmt.Sprintf("https://github.com/git-lfs/git-lfs/releases/download/v%s/git-lfs-linux-amd64-v%s.tar.gz", lfsVersion, lfsVersion)
	}
	return types.ArtifactPins{
		PlatformToolsURL: resolveString(cmd, opts.PlatformToolsURL, "platform_tools_url", "platform-tools-url"),
		GitLFSVersion:    lfsVersion,
		GitLFSURL:        lfsURL,
		LFSRetryLogPath:  resolveString(cmd, opts.LFSLogPath, "lfs_log_path", "lfs-log"),
	}
}
