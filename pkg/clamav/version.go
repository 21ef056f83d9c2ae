package clamav

import "github.com/ffi-clamav/clamav-go/pkg/clamav/internal/backend"

var (
	// Release is the wrapper version, set at build time with
	// -ldflags "-X github.com/ffi-clamav/clamav-go/pkg/clamav.Release=v1.2.3".
	Release = "v0.0.0-in-progress"
	// TargetABI names the libclamav interface the bindings are written against.
	TargetABI = "libclamav.so.6 (0.97)"
)

// WrapperVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func WrapperVersion() string {
	return Release
}

// Version returns the version string of the linked libclamav, or the empty
// string when the bindings are not built.
func Version() string {
	if !backend.Built {
		return ""
	}
	return backend.RetVer()
}

// FLevel returns the functionality level of the linked libclamav. Database
// entries may require a minimum level.
func FLevel() uint32 {
	return backend.RetFLevel()
}
