package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ffi-clamav/clamav-go/internal/config"
	"github.com/ffi-clamav/clamav-go/pkg/clamav"
)

func newWatchCmd(loader *config.Loader, opts *rootOptions) *cobra.Command {
	var (
		interval  time.Duration
		maxChecks int
	)

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Poll a database directory and report updates",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, loader, opts, config.Overrides{})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			dir := ""
			if len(args) == 1 {
				dir = args[0]
			} else if dir, err = cfg.ResolveDBDir(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return watchDir(ctx, cmd, logger, dir, interval, maxChecks)
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 30*time.Second, "Time between checks")
	cmd.Flags().IntVar(&maxChecks, "max-checks", 0, "Stop after this many checks (0 runs until interrupted)")
	return cmd
}

func watchDir(ctx context.Context, cmd *cobra.Command, logger *zap.Logger, dir string, interval time.Duration, maxChecks int) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive (got %s)", interval)
	}

	st, err := clamav.WatchDBDir(dir)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for checks := 0; maxChecks == 0 || checks < maxChecks; checks++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		changed, err := st.Changed()
		if err != nil {
			return err
		}
		if !changed {
			logger.Debug("database unchanged", zap.String("dir", dir))
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: changed\n", dir)
		logger.Info("database changed", zap.String("dir", dir))

		// Re-snapshot so the next check compares against the new state.
		_ = st.Close()
		if st, err = clamav.WatchDBDir(dir); err != nil {
			return err
		}
	}
	return nil
}
