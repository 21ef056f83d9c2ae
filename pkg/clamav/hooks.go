package clamav

import (
	"sync"
	"unsafe"

	"github.com/ffi-clamav/clamav-go/pkg/clamav/internal/backend"
)

// PreScanFunc runs before a file is scanned. Returning CodeClean continues
// scanning; CodeVirus marks the file infected without scanning; CodeBreak
// skips it.
type PreScanFunc func(fd int) Code

// PostScanFunc runs after a file is scanned with the result and the detected
// signature name, if any. Returning CodeClean keeps the result. CodeBreak
// whitelists the file and CodeVirus flags it, with libclamav replacing the
// signature name by "Detected.By.Callback". Other codes are ignored.
type PostScanFunc func(fd int, result Code, virus string) Code

// SigLoadFunc is asked about each signature while a database loads. Returning
// true skips the signature.
type SigLoadFunc func(kind, name string) bool

// HashFunc receives the size and MD5 of each scanned object together with
// the detected signature name.
type HashFunc func(fd int, size uint64, md5 []byte, virus string)

// engineHooks is the Go side of one engine's callbacks. It is registered
// with the backend lazily and handed to libclamav as an integer context.
type engineHooks struct {
	mu       sync.RWMutex
	ctx      uintptr
	preScan  PreScanFunc
	postScan PostScanFunc
	sigLoad  SigLoadFunc
	hash     HashFunc
}

// context registers the hooks on first use and returns the context value.
func (h *engineHooks) context() uintptr {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.ctx == 0 {
		h.ctx = backend.Register(h)
	}
	return h.ctx
}

// registered returns the context value, or zero when no hook was ever set.
func (h *engineHooks) registered() uintptr {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.ctx
}

func (h *engineHooks) unregister() {
	h.mu.Lock()
	ctx := h.ctx
	h.ctx = 0
	h.mu.Unlock()
	backend.Unregister(ctx)
}

func (h *engineHooks) PreScan(fd int) int32 {
	h.mu.RLock()
	fn := h.preScan
	h.mu.RUnlock()
	if fn == nil {
		return int32(CodeClean)
	}
	return int32(fn(fd))
}

func (h *engineHooks) PostScan(fd int, result int32, virus string) int32 {
	h.mu.RLock()
	fn := h.postScan
	h.mu.RUnlock()
	if fn == nil {
		return int32(CodeClean)
	}
	return int32(fn(fd, Code(result), virus))
}

func (h *engineHooks) SigLoad(kind, name string) int32 {
	h.mu.RLock()
	fn := h.sigLoad
	h.mu.RUnlock()
	if fn != nil && fn(kind, name) {
		return 1
	}
	return 0
}

func (h *engineHooks) Hash(fd int, size uint64, md5 []byte, virus string) {
	h.mu.RLock()
	fn := h.hash
	h.mu.RUnlock()
	if fn != nil {
		fn(fd, size, md5, virus)
	}
}

// SetPreScanHook installs fn, or removes the hook when fn is nil. Hooks only
// fire for scans started through this Engine's Scan methods.
func (e *Engine) SetPreScanHook(fn PreScanFunc) error {
	return e.handle().use(func(p unsafe.Pointer) error {
		e.hooks.context()
		e.hooks.mu.Lock()
		e.hooks.preScan = fn
		e.hooks.mu.Unlock()
		backend.SetPreScan(p, fn != nil)
		return nil
	})
}

func (e *Engine) SetPostScanHook(fn PostScanFunc) error {
	return e.handle().use(func(p unsafe.Pointer) error {
		e.hooks.context()
		e.hooks.mu.Lock()
		e.hooks.postScan = fn
		e.hooks.mu.Unlock()
		backend.SetPostScan(p, fn != nil)
		return nil
	})
}

// SetSigLoadHook installs fn for subsequent Load calls.
func (e *Engine) SetSigLoadHook(fn SigLoadFunc) error {
	return e.handle().use(func(p unsafe.Pointer) error {
		ctx := e.hooks.context()
		e.hooks.mu.Lock()
		e.hooks.sigLoad = fn
		e.hooks.mu.Unlock()
		backend.SetSigLoad(p, ctx, fn != nil)
		return nil
	})
}

func (e *Engine) SetHashHook(fn HashFunc) error {
	return e.handle().use(func(p unsafe.Pointer) error {
		e.hooks.context()
		e.hooks.mu.Lock()
		e.hooks.hash = fn
		e.hooks.mu.Unlock()
		backend.SetHash(p, fn != nil)
		return nil
	})
}
