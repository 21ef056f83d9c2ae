//go:build cgo && !windows

package backend

// Built reports whether libclamav is linked into this binary.
const Built = true
