package clamav

import (
	"context"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ffi-clamav/clamav-go/pkg/clamav/internal/backend"
)

// owner holds the only reference to one native pointer and frees it exactly
// once. Wrappers point at a shared owner, so copying a wrapper value never
// duplicates ownership.
type owner struct {
	mu      sync.Mutex
	ptr     unsafe.Pointer
	release func(unsafe.Pointer) error
}

func newOwner(ptr unsafe.Pointer, release func(unsafe.Pointer) error) *owner {
	o := &owner{ptr: ptr, release: release}
	runtime.SetFinalizer(o, (*owner).finalize)
	return o
}

// use runs fn with the live pointer. The owner is kept reachable until fn
// returns so the finalizer cannot free the pointer mid-call.
func (o *owner) use(fn func(unsafe.Pointer) error) error {
	if o == nil {
		return ErrClosed
	}
	o.mu.Lock()
	ptr := o.ptr
	o.mu.Unlock()
	if ptr == nil {
		return ErrClosed
	}
	err := fn(ptr)
	runtime.KeepAlive(o)
	return err
}

func (o *owner) closed() bool {
	if o == nil {
		return true
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ptr == nil
}

// close releases the pointer on the first call and is a no-op afterwards.
func (o *owner) close() error {
	if o == nil {
		return nil
	}
	o.mu.Lock()
	ptr := o.ptr
	o.ptr = nil
	o.mu.Unlock()
	if ptr == nil {
		return nil
	}
	runtime.SetFinalizer(o, nil)
	return o.release(ptr)
}

func (o *owner) finalize() {
	if err := o.close(); err != nil {
		currentLogger().Warn(context.Background(), "finalizer release failed", "error", err)
	}
}

// The release functions below are the only callers of the native free entry
// points.

func releaseEngine(ptr unsafe.Pointer) error {
	return nativeErr(backend.EngineFree(ptr))
}

func releaseSettings(ptr unsafe.Pointer) error {
	return nativeErr(backend.SettingsFree(ptr))
}

func releaseStat(ptr unsafe.Pointer) error {
	return nativeErr(backend.StatFree(ptr))
}
