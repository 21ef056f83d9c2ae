package config

import (
	"fmt"

	"github.com/ffi-clamav/clamav-go/pkg/clamav"
)

// Apply writes every configured field to the engine through its typed
// setter. Fields left nil are not touched. The first failure stops the
// walk; fields already written stay written.
func (c EngineConfig) Apply(e *clamav.Engine) error {
	fail := func(f clamav.Field, err error) error {
		return fmt.Errorf("apply %s: %w", f, err)
	}

	if c.MaxScanSize != nil {
		if _, err := e.SetMaxScanSize(*c.MaxScanSize); err != nil {
			return fail(clamav.FieldMaxScanSize, err)
		}
	}
	if c.MaxFileSize != nil {
		if _, err := e.SetMaxFileSize(*c.MaxFileSize); err != nil {
			return fail(clamav.FieldMaxFileSize, err)
		}
	}
	if c.MaxRecursion != nil {
		if _, err := e.SetMaxRecursion(*c.MaxRecursion); err != nil {
			return fail(clamav.FieldMaxRecursion, err)
		}
	}
	if c.MaxFiles != nil {
		if _, err := e.SetMaxFiles(*c.MaxFiles); err != nil {
			return fail(clamav.FieldMaxFiles, err)
		}
	}
	if c.MinCCCount != nil {
		if _, err := e.SetMinCCCount(*c.MinCCCount); err != nil {
			return fail(clamav.FieldMinCCCount, err)
		}
	}
	if c.MinSSNCount != nil {
		if _, err := e.SetMinSSNCount(*c.MinSSNCount); err != nil {
			return fail(clamav.FieldMinSSNCount, err)
		}
	}
	if c.PUACategories != nil {
		if _, err := e.SetPUACategories(*c.PUACategories); err != nil {
			return fail(clamav.FieldPUACategories, err)
		}
	}
	if c.ACOnly != nil {
		if _, err := e.SetACOnly(*c.ACOnly); err != nil {
			return fail(clamav.FieldACOnly, err)
		}
	}
	if c.ACMinDepth != nil {
		if _, err := e.SetACMinDepth(*c.ACMinDepth); err != nil {
			return fail(clamav.FieldACMinDepth, err)
		}
	}
	if c.ACMaxDepth != nil {
		if _, err := e.SetACMaxDepth(*c.ACMaxDepth); err != nil {
			return fail(clamav.FieldACMaxDepth, err)
		}
	}
	if c.TmpDir != nil {
		if _, err := e.SetTmpDir(*c.TmpDir); err != nil {
			return fail(clamav.FieldTmpDir, err)
		}
	}
	if c.KeepTmp != nil {
		if _, err := e.SetKeepTmp(*c.KeepTmp); err != nil {
			return fail(clamav.FieldKeepTmp, err)
		}
	}
	if c.BytecodeSecurity != nil {
		s, err := clamav.ParseBytecodeSecurity(*c.BytecodeSecurity)
		if err == nil {
			_, err = e.SetBytecodeSecurity(s)
		}
		if err != nil {
			return fail(clamav.FieldBytecodeSecurity, err)
		}
	}
	if c.BytecodeTimeout != nil {
		if _, err := e.SetBytecodeTimeout(*c.BytecodeTimeout); err != nil {
			return fail(clamav.FieldBytecodeTimeout, err)
		}
	}
	if c.BytecodeMode != nil {
		m, err := clamav.ParseBytecodeMode(*c.BytecodeMode)
		if err == nil {
			_, err = e.SetBytecodeMode(m)
		}
		if err != nil {
			return fail(clamav.FieldBytecodeMode, err)
		}
	}
	return nil
}
