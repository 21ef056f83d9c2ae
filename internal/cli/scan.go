package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/ffi-clamav/clamav-go/internal/config"
	"github.com/ffi-clamav/clamav-go/pkg/clamav"
)

// ErrInfected is returned by the scan command when at least one file
// matched a signature.
var ErrInfected = errors.New("infected files found")

func newScanCmd(loader *config.Loader, opts *rootOptions) *cobra.Command {
	flags := &engineFlagSet{}

	cmd := &cobra.Command{
		Use:   "scan <path>...",
		Short: "Scan files with the configured databases",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd, loader, opts, flags.toOverrides(cmd))
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			scanOpts, err := cfg.ScanMask()
			if err != nil {
				return err
			}

			engine, _, err := loadEngine(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer engine.Close()

			out := cmd.OutOrStdout()
			infected := 0
			var firstErr error
			for _, path := range args {
				v, err := scanPath(engine, path, scanOpts)
				switch {
				case err != nil:
					logger.Warn("scan failed", zap.String("path", path), zap.Error(err))
					fmt.Fprintf(out, "%s: ERROR %v\n", path, err)
					if firstErr == nil {
						firstErr = err
					}
				case v.Infected:
					infected++
					fmt.Fprintf(out, "%s: %s FOUND\n", path, v.Virus)
				default:
					fmt.Fprintf(out, "%s: OK\n", path)
				}
				logger.Debug("scanned", zap.String("path", path), zap.Uint64("bytes", v.Scanned))
			}

			if firstErr != nil {
				return firstErr
			}
			if infected > 0 {
				return fmt.Errorf("%w: %d", ErrInfected, infected)
			}
			return nil
		},
	}

	bindEngineFlags(cmd, flags)
	bindScanFlags(cmd, flags)
	return cmd
}

// scanPath opens path without following symlinks and scans the descriptor.
func scanPath(engine *clamav.Engine, path string, opts clamav.ScanOptions) (clamav.Verdict, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_CLOEXEC|unix.O_NOFOLLOW, 0)
	if err != nil {
		return clamav.Verdict{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer unix.Close(fd)
	return engine.ScanDescriptor(fd, opts)
}
