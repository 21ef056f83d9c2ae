package clamav

import (
	"unsafe"

	"github.com/ffi-clamav/clamav-go/pkg/clamav/internal/backend"
)

// Verdict is the outcome of a scan that completed.
type Verdict struct {
	Infected bool
	// Virus is the name of the matching signature when Infected is true.
	Virus string
	// Scanned is the amount of data scanned, in bytes. libclamav counts in
	// 4 KiB blocks, so the value is rounded to that precision.
	Scanned uint64
}

// ScanFile scans the file at path with a compiled engine. A detection is a
// Verdict, not an error; errors are reserved for scans that did not
// complete.
func (e *Engine) ScanFile(path string, opts ScanOptions) (Verdict, error) {
	var v Verdict
	err := e.handle().use(func(p unsafe.Pointer) error {
		var err error
		v, err = verdict(backend.ScanFile(path, p, uint32(opts), e.hooks.registered()))
		return err
	})
	return v, err
}

// ScanDescriptor scans an already open file descriptor. The descriptor is
// not closed.
func (e *Engine) ScanDescriptor(fd int, opts ScanOptions) (Verdict, error) {
	var v Verdict
	err := e.handle().use(func(p unsafe.Pointer) error {
		var err error
		v, err = verdict(backend.ScanDesc(fd, p, uint32(opts), e.hooks.registered()))
		return err
	})
	return v, err
}

func verdict(virus string, blocks uint64, rc int32) (Verdict, error) {
	v := Verdict{Scanned: blocks * backend.CountPrecision}
	if Code(rc) == CodeVirus {
		v.Infected = true
		v.Virus = virus
		return v, nil
	}
	return v, nativeErr(rc)
}
