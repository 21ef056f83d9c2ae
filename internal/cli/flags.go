package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ffi-clamav/clamav-go/internal/config"
)

// engineFlagSet tracks shared engine flags before they are converted into config overrides.
type engineFlagSet struct {
	dbDir           string
	dbOptions       string
	scanOptions     string
	maxScanSize     uint64
	maxFileSize     uint64
	maxRecursion    uint32
	maxFiles        uint32
	tmpDir          string
	keepTmp         bool
	bytecodeTimeout time.Duration
	bytecodeMode    string
}

func bindEngineFlags(cmd *cobra.Command, flags *engineFlagSet) {
	cmd.Flags().StringVar(&flags.dbDir, "db-dir", "", "Signature database file or directory (default: libclamav's)")
	cmd.Flags().StringVar(&flags.dbOptions, "db-options", "", "Comma-separated database options (stdopt,pua,...)")
	cmd.Flags().Uint64Var(&flags.maxScanSize, "max-scansize", 0, "Maximum data scanned per file, in bytes")
	cmd.Flags().Uint64Var(&flags.maxFileSize, "max-filesize", 0, "Largest file scanned, in bytes")
	cmd.Flags().Uint32Var(&flags.maxRecursion, "max-recursion", 0, "Maximum archive nesting")
	cmd.Flags().Uint32Var(&flags.maxFiles, "max-files", 0, "Maximum files scanned inside one container")
	cmd.Flags().StringVar(&flags.tmpDir, "tmpdir", "", "Scratch directory for libclamav")
	cmd.Flags().BoolVar(&flags.keepTmp, "keeptmp", false, "Keep temporary files")
	cmd.Flags().DurationVar(&flags.bytecodeTimeout, "bytecode-timeout", 0, "Time limit for a single bytecode run")
	cmd.Flags().StringVar(&flags.bytecodeMode, "bytecode-mode", "", "Bytecode mode: auto, jit, interpreter or test")
}

func bindScanFlags(cmd *cobra.Command, flags *engineFlagSet) {
	cmd.Flags().StringVar(&flags.scanOptions, "scan-options", "", "Comma-separated scan options (stdopt,archive,pdf,...)")
}

func (f engineFlagSet) toOverrides(cmd *cobra.Command) config.Overrides {
	ov := config.Overrides{}
	changed := cmd.Flags().Changed

	if changed("db-dir") {
		ov.DBDir = f.dbDir
	}

	if changed("db-options") {
		ov.DBOptions = config.ParseOptionList(f.dbOptions)
	}

	if changed("scan-options") {
		ov.ScanOptions = config.ParseOptionList(f.scanOptions)
	}

	if changed("max-scansize") {
		v := f.maxScanSize
		ov.Engine.MaxScanSize = &v
	}

	if changed("max-filesize") {
		v := f.maxFileSize
		ov.Engine.MaxFileSize = &v
	}

	if changed("max-recursion") {
		v := f.maxRecursion
		ov.Engine.MaxRecursion = &v
	}

	if changed("max-files") {
		v := f.maxFiles
		ov.Engine.MaxFiles = &v
	}

	if changed("tmpdir") {
		v := f.tmpDir
		ov.Engine.TmpDir = &v
	}

	if changed("keeptmp") {
		v := f.keepTmp
		ov.Engine.KeepTmp = &v
	}

	if changed("bytecode-timeout") {
		v := f.bytecodeTimeout
		ov.Engine.BytecodeTimeout = &v
	}

	if changed("bytecode-mode") {
		v := f.bytecodeMode
		ov.Engine.BytecodeMode = &v
	}

	return ov
}
