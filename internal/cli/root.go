package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"android-provision/internal/app"
)

// version is set at build time via ldflags.
var version = "dev"

const envPrefix = "ANDROID_PROVISION"

type RootConfig struct {
	ConfigFile string
	LogLevel   string
}

func Execute() {
	root := newRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errorMessage(err))
		os.Exit(exitCodeForError(err))
	}
}

func newRootCommand() *cobra.Command {
	cfg := RootConfig{}
	cmd := &cobra.Command{
		Use:     "android-provision",
		Short:   "Provision a Ubuntu host for Android ROM/kernel builds",
		Version: version,
		// Execute prints the single diagnostic; cobra must not add a
		// second copy or a usage dump on runtime failures.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := initConfig(cfg.ConfigFile); err != nil {
				return err
			}
			setupLogging(viper.GetString("log_level"))
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", "", "Config file path")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "Log level")
	_ = viper.BindPFlag("log_level", cmd.PersistentFlags().Lookup("log-level"))

	cmd.AddCommand(newProvisionCommand())
	cmd.AddCommand(newPlanCommand())
	cmd.AddCommand(newPackagesCommand())
	return cmd
}

// newAppService is a variable so command tests can substitute a service
// wired with stub ports.
var newAppService = app.NewService

func initConfig(configFile string) error {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	setConfigDefaults()

	if configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to read config file").
				WithCause(err)
		}
		return nil
	}

	viper.SetConfigName("android-provision")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/android-provision")
	if err := viper.ReadInConfig(); err != nil {
		return nil
	}
	return nil
}

// setConfigDefaults pins the remote artifacts and the fixed git identity.
// They are configuration data, overridable via config file or env, never
// control flow.
func setConfigDefaults() {
	viper.SetDefault("platform_tools_url", "https://dl.google.com/android/repository/platform-tools-latest-linux.zip")
	viper.SetDefault("git_lfs_version", "3.4.1")
	viper.SetDefault("git_lfs_url", "")
	viper.SetDefault("git_user_name", "android-build")
	viper.SetDefault("git_user_email", "android-build@localhost")
	viper.SetDefault("lfs_log_path", "/tmp/git-lfs-install.log")
	viper.SetDefault("substep_policy", "lenient")
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// exitCodeForError maps any fatal failure to exit code 1. The errbuilder
// code is kept for the stderr diagnostic only.
func exitCodeForError(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	return err.Error()
}
