package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ffi-clamav/clamav-go/pkg/clamav"
)

func newCVDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cvd",
		Short: "Inspect ClamAV virus database containers",
	}
	cmd.AddCommand(newCVDInfoCmd(), newCVDVerifyCmd())
	return cmd
}

func newCVDInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.cvd>",
		Short: "Print the header of a .cvd or .cld file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := clamav.ReadCVDHeader(args[0])
			if err != nil {
				return err
			}
			printCVDInfo(cmd, info)
			return nil
		},
	}
}

func newCVDVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file.cvd>",
		Short: "Verify the signature and integrity of a .cvd file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := clamav.VerifyCVD(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", args[0])
			return nil
		},
	}
}

func printCVDInfo(cmd *cobra.Command, info *clamav.CVDInfo) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "build time: %s\n", info.Time)
	fmt.Fprintf(out, "version: %d\n", info.Version)
	fmt.Fprintf(out, "signatures: %d\n", info.Sigs)
	fmt.Fprintf(out, "functionality level: %d\n", info.FLevel)
	fmt.Fprintf(out, "builder: %s\n", info.Builder)
	fmt.Fprintf(out, "md5: %s\n", info.MD5)
	fmt.Fprintf(out, "stime: %s\n", info.STime.UTC().Format(time.RFC3339))
}
