package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ffi-clamav/clamav-go/internal/config"
	"github.com/ffi-clamav/clamav-go/pkg/clamav"
)

func newLoadCmd(loader *config.Loader, opts *rootOptions) *cobra.Command {
	flags := &engineFlagSet{}

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load and compile the signature databases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, loader, opts, flags.toOverrides(cmd))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			engine, sigs, err := loadEngine(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer engine.Close()

			version, err := engine.DBVersion()
			if err != nil {
				return err
			}
			built, err := engine.DBTime()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "signatures: %d\n", sigs)
			fmt.Fprintf(out, "database version: %d\n", version)
			fmt.Fprintf(out, "database time: %s\n", built.UTC().Format(time.RFC3339))
			return nil
		},
	}

	bindEngineFlags(cmd, flags)
	return cmd
}

func newCountSigsCmd(loader *config.Loader, opts *rootOptions) *cobra.Command {
	var scope string

	cmd := &cobra.Command{
		Use:   "countsigs [path]",
		Short: "Count signatures without loading them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, loader, opts, config.Overrides{})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			countOpts, err := clamav.ParseCountSigsOptions(scope)
			if err != nil {
				return err
			}
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else if path, err = cfg.ResolveDBDir(); err != nil {
				return err
			}

			n, err := clamav.CountSigs(path, countOpts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", n)
			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "all", "Databases to count: official, unofficial or all")
	return cmd
}
