package backend

import "sync"

// Callback contexts cannot carry Go pointers across the C boundary, so hooks
// are parked in a table and C only ever sees the integer key.

type handle uintptr

var (
	mu   sync.Mutex
	next handle = 1
	reg         = map[handle]Hooks{}
)

// Register stores h and returns the context value to hand to libclamav.
func Register(h Hooks) uintptr {
	mu.Lock()
	k := next
	next++
	reg[k] = h
	mu.Unlock()
	return uintptr(k)
}

// Unregister drops the hooks stored under ctx. Unknown keys are ignored.
func Unregister(ctx uintptr) {
	if ctx == 0 {
		return
	}
	mu.Lock()
	delete(reg, handle(ctx))
	mu.Unlock()
}

func lookup(ctx uintptr) (Hooks, bool) {
	if ctx == 0 {
		return nil, false
	}
	mu.Lock()
	h, ok := reg[handle(ctx)]
	mu.Unlock()
	return h, ok
}

var (
	msgMu      sync.RWMutex
	msgHandler MessageFunc
)

func currentMessageHandler() MessageFunc {
	msgMu.RLock()
	defer msgMu.RUnlock()
	return msgHandler
}

func storeMessageHandler(fn MessageFunc) {
	msgMu.Lock()
	msgHandler = fn
	msgMu.Unlock()
}
