package clamav

import (
	"context"
	"fmt"
	"math"
	"time"
	"unsafe"

	"github.com/ffi-clamav/clamav-go/pkg/clamav/internal/backend"
)

// Engine owns one native struct cl_engine.
//
// An Engine is not safe for concurrent mutation. Field setters, Load,
// Compile, ApplySettings and the hook setters must not run concurrently with
// each other or with scans on the same Engine.
type Engine struct {
	own   *owner
	hooks *engineHooks
}

// NewEngine initialises libclamav if needed and allocates a fresh engine with
// library default settings.
func NewEngine() (*Engine, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	ptr := backend.EngineNew()
	if ptr == nil {
		return nil, ErrAllocationFailed
	}
	currentLogger().Debug(context.Background(), "engine allocated")
	return newEngine(ptr), nil
}

// AdoptEngine takes ownership of an engine pointer obtained elsewhere, for
// example from another cgo package. The Engine frees it on Close; the caller
// must not free it again.
func AdoptEngine(ptr unsafe.Pointer) (*Engine, error) {
	if err := requireBuilt(); err != nil {
		return nil, err
	}
	if ptr == nil {
		return nil, ErrAllocationFailed
	}
	return newEngine(ptr), nil
}

func newEngine(ptr unsafe.Pointer) *Engine {
	h := &engineHooks{}
	return &Engine{
		hooks: h,
		own: newOwner(ptr, func(p unsafe.Pointer) error {
			h.unregister()
			return releaseEngine(p)
		}),
	}
}

// Close frees the native engine. It is safe to call more than once.
func (e *Engine) Close() error {
	if e == nil {
		return nil
	}
	return e.own.close()
}

// Closed reports whether Close has already run.
func (e *Engine) Closed() bool {
	return e == nil || e.own.closed()
}

// Settings copies the engine's current configuration. The caller owns the
// returned snapshot and must Close it.
func (e *Engine) Settings() (*Settings, error) {
	var s *Settings
	err := e.handle().use(func(p unsafe.Pointer) error {
		ptr := backend.SettingsCopy(p)
		if ptr == nil {
			return ErrAllocationFailed
		}
		s = newSettings(ptr)
		return nil
	})
	return s, err
}

// ApplySettings overwrites the engine's configuration with a snapshot. The
// snapshot stays valid and can be applied to other engines. On failure the
// engine is left in whatever state libclamav leaves it.
func (e *Engine) ApplySettings(s *Settings) error {
	if s == nil {
		return ErrClosed
	}
	return e.handle().use(func(ep unsafe.Pointer) error {
		return s.own.use(func(sp unsafe.Pointer) error {
			return Wrap(func() Code { return Code(backend.SettingsApply(ep, sp)) })
		})
	})
}

// Load reads signatures from a database file or directory into the engine
// and returns how many were loaded by this call.
func (e *Engine) Load(path string, opts DBOptions) (uint32, error) {
	var sigs uint32
	err := e.handle().use(func(p unsafe.Pointer) error {
		n, err := WrapValue(func() (uint32, Code) {
			n, rc := backend.Load(path, p, uint32(opts))
			return n, Code(rc)
		})
		if err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		sigs = n
		return nil
	})
	if err == nil {
		currentLogger().Debug(context.Background(), "signatures loaded", "path", path, "signatures", sigs, "options", opts.String())
	}
	return sigs, err
}

// Compile prepares the loaded signatures for matching. Call it after the last
// Load and before scanning.
func (e *Engine) Compile() error {
	return e.handle().use(func(p unsafe.Pointer) error {
		return Wrap(func() Code { return Code(backend.EngineCompile(p)) })
	})
}

// Get reads a field through the generic accessor. The dynamic type of the
// result depends on the field: uint64 for the size limits, uint32 for counts
// and depths, time.Time for db_time, bool for keeptmp, OptionalString for
// string fields, time.Duration for bytecode_timeout, and DBOptions,
// BytecodeSecurity or BytecodeMode for the enumerated fields.
func (e *Engine) Get(f Field) (any, error) {
	d, err := f.desc()
	if err != nil {
		return nil, err
	}
	if d.typ == typeString {
		return e.getStr(f)
	}
	n, err := e.getNum(f)
	if err != nil {
		return nil, err
	}
	return decodeNum(f, d.typ, n)
}

// Set writes a field through the generic accessor. The value must match the
// field's declared type (see Get); numeric fields also accept any Go integer.
// Type and range violations fail before libclamav is called.
func (e *Engine) Set(f Field, value any) error {
	d, err := f.desc()
	if err != nil {
		return err
	}
	if d.typ == typeString {
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s wants a string, got %T", ErrWrongFieldType, f, value)
		}
		return e.setStr(f, s)
	}
	n, err := encodeNum(f, d.typ, value)
	if err != nil {
		return err
	}
	return e.setNum(f, n)
}

// Snapshot reads every field into a FieldValues map.
func (e *Engine) Snapshot() (FieldValues, error) {
	out := make(FieldValues, fieldCount)
	for _, f := range Fields() {
		v, err := e.Get(f)
		if err != nil {
			return nil, err
		}
		out[f] = v
	}
	return out, nil
}

func (e *Engine) handle() *owner {
	if e == nil {
		return nil
	}
	return e.own
}

func (e *Engine) getNum(f Field) (int64, error) {
	var v int64
	err := e.handle().use(func(p unsafe.Pointer) error {
		n, err := WrapValue(func() (int64, Code) {
			n, rc := backend.EngineGetNum(p, uint32(f))
			return n, Code(rc)
		})
		if err != nil {
			return fmt.Errorf("get %s: %w", f, err)
		}
		v = n
		return nil
	})
	return v, err
}

func (e *Engine) setNum(f Field, v int64) error {
	return e.handle().use(func(p unsafe.Pointer) error {
		if err := Wrap(func() Code { return Code(backend.EngineSetNum(p, uint32(f), v)) }); err != nil {
			return fmt.Errorf("set %s: %w", f, err)
		}
		return nil
	})
}

func (e *Engine) getStr(f Field) (OptionalString, error) {
	var v OptionalString
	err := e.handle().use(func(p unsafe.Pointer) error {
		s, err := WrapValue(func() (OptionalString, Code) {
			s, ok, rc := backend.EngineGetStr(p, uint32(f))
			if !ok {
				return NewOptionalStringUnset(), Code(rc)
			}
			return NewOptionalStringSet(s), Code(rc)
		})
		if err != nil {
			return fmt.Errorf("get %s: %w", f, err)
		}
		v = s
		return nil
	})
	return v, err
}

func (e *Engine) setStr(f Field, v string) error {
	return e.handle().use(func(p unsafe.Pointer) error {
		if err := Wrap(func() Code { return Code(backend.EngineSetStr(p, uint32(f), v)) }); err != nil {
			return fmt.Errorf("set %s: %w", f, err)
		}
		return nil
	})
}

func decodeNum(f Field, typ valueType, n int64) (any, error) {
	switch typ {
	case typeUint64:
		return uint64(n), nil
	case typeUint32:
		return uint32(n), nil
	case typeTime:
		return time.Unix(n, 0), nil
	case typeBool:
		return n != 0, nil
	case typeDBOptions:
		return DBOptions(n), nil
	case typeMillis:
		return time.Duration(n) * time.Millisecond, nil
	case typeSecurity:
		s := BytecodeSecurity(n)
		if n < 0 || !s.Valid() {
			return nil, fmt.Errorf("%w: %s reported %d", ErrValueOutOfRange, f, n)
		}
		return s, nil
	case typeMode:
		m := BytecodeMode(n)
		if n < 0 || !m.Valid() {
			return nil, fmt.Errorf("%w: %s reported %d", ErrValueOutOfRange, f, n)
		}
		return m, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
}

func encodeNum(f Field, typ valueType, value any) (int64, error) {
	wrongType := func() (int64, error) {
		return 0, fmt.Errorf("%w: %s does not accept %T", ErrWrongFieldType, f, value)
	}
	outOfRange := func() (int64, error) {
		return 0, fmt.Errorf("%w: %s = %v", ErrValueOutOfRange, f, value)
	}

	// Typed values first: each is only accepted by its own field type.
	switch v := value.(type) {
	case time.Time:
		if typ != typeTime {
			return wrongType()
		}
		return v.Unix(), nil
	case time.Duration:
		if typ != typeMillis {
			return wrongType()
		}
		ms := v.Milliseconds()
		if ms < 0 || ms > math.MaxUint32 {
			return outOfRange()
		}
		return ms, nil
	case bool:
		if typ != typeBool {
			return wrongType()
		}
		if v {
			return 1, nil
		}
		return 0, nil
	case DBOptions:
		if typ != typeDBOptions {
			return wrongType()
		}
		return int64(v), nil
	case BytecodeSecurity:
		if typ != typeSecurity {
			return wrongType()
		}
		if !v.Valid() {
			return outOfRange()
		}
		return int64(v), nil
	case BytecodeMode:
		if typ != typeMode {
			return wrongType()
		}
		if !v.Valid() {
			return outOfRange()
		}
		return int64(v), nil
	}

	n, ok, fits := integerValue(value)
	if !ok {
		return wrongType()
	}
	if !fits || n < 0 {
		return outOfRange()
	}
	switch typ {
	case typeUint64, typeTime:
		return n, nil
	case typeSecurity:
		if !BytecodeSecurity(n).Valid() {
			return outOfRange()
		}
	case typeMode:
		if !BytecodeMode(n).Valid() {
			return outOfRange()
		}
	}
	if n > math.MaxUint32 {
		return outOfRange()
	}
	return n, nil
}

// integerValue converts any Go integer to int64. fits is false for unsigned
// values beyond math.MaxInt64.
func integerValue(value any) (n int64, ok, fits bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true, true
	case int8:
		return int64(v), true, true
	case int16:
		return int64(v), true, true
	case int32:
		return int64(v), true, true
	case int64:
		return v, true, true
	case uint:
		return int64(v), true, uint64(v) <= math.MaxInt64
	case uint8:
		return int64(v), true, true
	case uint16:
		return int64(v), true, true
	case uint32:
		return int64(v), true, true
	case uint64:
		return int64(v), true, v <= math.MaxInt64
	}
	return 0, false, false
}
