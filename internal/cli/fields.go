package cli

import (
	"github.com/spf13/cobra"

	"github.com/ffi-clamav/clamav-go/internal/config"
)

func newFieldsCmd(loader *config.Loader, opts *rootOptions) *cobra.Command {
	flags := &engineFlagSet{}

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Show every engine field after applying the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, loader, opts, flags.toOverrides(cmd))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			engine, err := newEngine(cfg)
			if err != nil {
				return err
			}
			defer engine.Close()

			values, err := engine.Snapshot()
			if err != nil {
				return err
			}
			renderFields(cmd.OutOrStdout(), values)
			return nil
		},
	}

	bindEngineFlags(cmd, flags)
	return cmd
}
