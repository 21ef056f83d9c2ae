package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ffi-clamav/clamav-go/internal/config"
	"github.com/ffi-clamav/clamav-go/pkg/clamav"
	"github.com/ffi-clamav/clamav-go/pkg/clamav/logging"
)

// Execute builds the root command tree and runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd returns the clamav-go command tree.
func NewRootCmd() *cobra.Command {
	loader := &config.Loader{ConfigPath: config.DefaultConfigPath}
	rootOpts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "clamav-go",
		Short:         "Inspect and drive libclamav from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       clamav.WrapperVersion(),
	}
	rootCmd.SetVersionTemplate("clamav-go version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigPath, "config", config.DefaultConfigPath, "Path to clamav.yml (optional)")
	rootCmd.PersistentFlags().StringVar(&rootOpts.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().BoolVar(&rootOpts.Debug, "debug", false, "Enable libclamav debug messages")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if rootOpts.ConfigPath != "" {
			loader.ConfigPath = rootOpts.ConfigPath
		}
		return nil
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newFieldsCmd(loader, rootOpts),
		newLoadCmd(loader, rootOpts),
		newCountSigsCmd(loader, rootOpts),
		newCVDCmd(),
		newScanCmd(loader, rootOpts),
		newWatchCmd(loader, rootOpts),
	)

	return rootCmd
}

type rootOptions struct {
	ConfigPath string
	LogLevel   string
	Debug      bool
}

// overrides folds the persistent flags into config overrides.
func (o *rootOptions) overrides(cmd *cobra.Command, ov config.Overrides) config.Overrides {
	if cmd.Flags().Changed("log-level") {
		ov.LogLevel = o.LogLevel
	}
	if cmd.Flags().Changed("debug") {
		debug := o.Debug
		ov.Debug = &debug
	}
	return ov
}

// setup loads the configuration and installs the zap-backed logger. The
// returned logger must be synced by the caller.
func setup(cmd *cobra.Command, loader *config.Loader, opts *rootOptions, ov config.Overrides) (config.RuntimeConfig, *zap.Logger, error) {
	cfg, err := loader.Load(opts.overrides(cmd, ov))
	if err != nil {
		return cfg, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}
	logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return cfg, nil, err
	}
	clamav.SetLogger(logging.NewZap(logger))
	if cfg.Debug {
		clamav.EnableDebug()
	}
	return cfg, logger, nil
}
