// Command editorui renders and previews the editor toolbar.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/editorui/internal/config"
	"github.com/vango-dev/editorui/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// globalFlags are shared by every command.
type globalFlags struct {
	config  string
	region  string
	verbose bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "editorui",
		Short: "Toolbar and popup layers for the markdown editor",
		Long: `editorui builds the markdown editor's toolbar and popup layers.

The toolbar layout is read from editorui.json or editorui.yaml in the
current directory or a parent. A layout can also be fetched from a public
S3 bucket with --config s3://bucket/key.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelWarn
			if flags.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}

	rootCmd.PersistentFlags().StringVarP(&flags.config, "config", "c", "", "Config file path or s3://bucket/key")
	rootCmd.PersistentFlags().StringVar(&flags.region, "region", "us-east-1", "AWS region for s3:// configs")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		initCmd(),
		renderCmd(flags),
		groupsCmd(flags),
		layerCmd(flags),
		serveCmd(flags),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig resolves the configuration named by --config. Without the
// flag it searches the working directory and falls back to defaults.
func loadConfig(ctx context.Context, flags *globalFlags) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)

	switch {
	case flags.config == "":
		cfg, err = config.LoadFromWorkingDir()
		if errors.HasCode(err, "E121") {
			slog.Debug("no config file, using defaults")
			cfg, err = config.New(), nil
		}
	case config.IsS3URL(flags.config):
		bucket, key, perr := config.ParseS3URL(flags.config)
		if perr != nil {
			return nil, perr
		}
		cfg, err = config.LoadS3(ctx, config.NewS3Client(flags.region), bucket, key)
	default:
		cfg, err = config.LoadFile(flags.config)
	}
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}
