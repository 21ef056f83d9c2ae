package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ffi-clamav/clamav-go/pkg/clamav"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print wrapper and libclamav versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "clamav-go version: %s\n", clamav.WrapperVersion())
			fmt.Fprintf(out, "target ABI: %s\n", clamav.TargetABI)

			if err := clamav.Init(); err != nil {
				fmt.Fprintf(out, "libclamav unavailable: %v\n", err)
				return nil
			}
			fmt.Fprintf(out, "libclamav: %s (flevel %d)\n", clamav.Version(), clamav.FLevel())
			if dir, err := clamav.DefaultDBDir(); err == nil {
				fmt.Fprintf(out, "database directory: %s\n", dir)
			}
			return nil
		},
	}
}
