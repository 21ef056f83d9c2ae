package clamav

import (
	"fmt"
	"math"
	"time"
)

// Typed accessors. Each getter is one native get call; each setter is one
// native set call and returns the value it stored. Nothing is cached on the
// Go side.

func stored[T any](v T, err error) (T, error) {
	if err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// MaxScanSize is the most data scanned per file, in bytes.
func (e *Engine) MaxScanSize() (uint64, error) {
	n, err := e.getNum(FieldMaxScanSize)
	return uint64(n), err
}

func (e *Engine) SetMaxScanSize(v uint64) (uint64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s = %d", ErrValueOutOfRange, FieldMaxScanSize, v)
	}
	return stored(v, e.setNum(FieldMaxScanSize, int64(v)))
}

// MaxFileSize is the largest file scanned, in bytes.
func (e *Engine) MaxFileSize() (uint64, error) {
	n, err := e.getNum(FieldMaxFileSize)
	return uint64(n), err
}

func (e *Engine) SetMaxFileSize(v uint64) (uint64, error) {
	if v > math.MaxInt64 {
		return 0, fmt.Errorf("%w: %s = %d", ErrValueOutOfRange, FieldMaxFileSize, v)
	}
	return stored(v, e.setNum(FieldMaxFileSize, int64(v)))
}

// MaxRecursion limits nested archive depth.
func (e *Engine) MaxRecursion() (uint32, error) {
	n, err := e.getNum(FieldMaxRecursion)
	return uint32(n), err
}

func (e *Engine) SetMaxRecursion(v uint32) (uint32, error) {
	return stored(v, e.setNum(FieldMaxRecursion, int64(v)))
}

// MaxFiles limits the number of files scanned inside one container.
func (e *Engine) MaxFiles() (uint32, error) {
	n, err := e.getNum(FieldMaxFiles)
	return uint32(n), err
}

func (e *Engine) SetMaxFiles(v uint32) (uint32, error) {
	return stored(v, e.setNum(FieldMaxFiles, int64(v)))
}

// MinCCCount is the credit card number detection threshold.
func (e *Engine) MinCCCount() (uint32, error) {
	n, err := e.getNum(FieldMinCCCount)
	return uint32(n), err
}

func (e *Engine) SetMinCCCount(v uint32) (uint32, error) {
	return stored(v, e.setNum(FieldMinCCCount, int64(v)))
}

// MinSSNCount is the social security number detection threshold.
func (e *Engine) MinSSNCount() (uint32, error) {
	n, err := e.getNum(FieldMinSSNCount)
	return uint32(n), err
}

func (e *Engine) SetMinSSNCount(v uint32) (uint32, error) {
	return stored(v, e.setNum(FieldMinSSNCount, int64(v)))
}

func (e *Engine) ACOnly() (uint32, error) {
	n, err := e.getNum(FieldACOnly)
	return uint32(n), err
}

func (e *Engine) SetACOnly(v uint32) (uint32, error) {
	return stored(v, e.setNum(FieldACOnly, int64(v)))
}

// ACMinDepth and ACMaxDepth bound the Aho-Corasick trie depth.
func (e *Engine) ACMinDepth() (uint32, error) {
	n, err := e.getNum(FieldACMinDepth)
	return uint32(n), err
}

func (e *Engine) SetACMinDepth(v uint32) (uint32, error) {
	return stored(v, e.setNum(FieldACMinDepth, int64(v)))
}

func (e *Engine) ACMaxDepth() (uint32, error) {
	n, err := e.getNum(FieldACMaxDepth)
	return uint32(n), err
}

func (e *Engine) SetACMaxDepth(v uint32) (uint32, error) {
	return stored(v, e.setNum(FieldACMaxDepth, int64(v)))
}

// PUACategories is the potentially unwanted application category list. It
// is unset by default.
func (e *Engine) PUACategories() (OptionalString, error) {
	return e.getStr(FieldPUACategories)
}

func (e *Engine) SetPUACategories(v string) (string, error) {
	return stored(v, e.setStr(FieldPUACategories, v))
}

// DBOptions reports the options accumulated by Load calls.
func (e *Engine) DBOptions() (DBOptions, error) {
	n, err := e.getNum(FieldDBOptions)
	return DBOptions(n), err
}

// SetDBOptions forwards to libclamav, which treats db_options as read only
// and answers CodeEArg. Pass options to Load instead.
func (e *Engine) SetDBOptions(v DBOptions) (DBOptions, error) {
	return stored(v, e.setNum(FieldDBOptions, int64(v)))
}

// DBVersion is the version of the loaded official database. libclamav does
// not allow setting it.
func (e *Engine) DBVersion() (uint32, error) {
	n, err := e.getNum(FieldDBVersion)
	return uint32(n), err
}

// DBTime is the build time of the loaded official database, the Unix epoch
// when nothing is loaded. libclamav does not allow setting it.
func (e *Engine) DBTime() (time.Time, error) {
	n, err := e.getNum(FieldDBTime)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(n, 0), nil
}

// TmpDir overrides the scratch directory. It is unset by default.
func (e *Engine) TmpDir() (OptionalString, error) {
	return e.getStr(FieldTmpDir)
}

func (e *Engine) SetTmpDir(v string) (string, error) {
	return stored(v, e.setStr(FieldTmpDir, v))
}

// KeepTmp keeps temporary files around after scanning.
func (e *Engine) KeepTmp() (bool, error) {
	n, err := e.getNum(FieldKeepTmp)
	return n != 0, err
}

func (e *Engine) SetKeepTmp(v bool) (bool, error) {
	var n int64
	if v {
		n = 1
	}
	return stored(v, e.setNum(FieldKeepTmp, n))
}

func (e *Engine) BytecodeSecurity() (BytecodeSecurity, error) {
	v, err := e.Get(FieldBytecodeSecurity)
	if err != nil {
		return 0, err
	}
	return v.(BytecodeSecurity), nil
}

func (e *Engine) SetBytecodeSecurity(v BytecodeSecurity) (BytecodeSecurity, error) {
	if !v.Valid() {
		return 0, fmt.Errorf("%w: %s = %d", ErrValueOutOfRange, FieldBytecodeSecurity, uint32(v))
	}
	return stored(v, e.setNum(FieldBytecodeSecurity, int64(v)))
}

// BytecodeTimeout bounds a single bytecode run. libclamav stores it in
// milliseconds; finer precision is truncated.
func (e *Engine) BytecodeTimeout() (time.Duration, error) {
	n, err := e.getNum(FieldBytecodeTimeout)
	return time.Duration(n) * time.Millisecond, err
}

func (e *Engine) SetBytecodeTimeout(v time.Duration) (time.Duration, error) {
	n, err := encodeNum(FieldBytecodeTimeout, typeMillis, v)
	if err != nil {
		return 0, err
	}
	return stored(v, e.setNum(FieldBytecodeTimeout, n))
}

func (e *Engine) BytecodeMode() (BytecodeMode, error) {
	v, err := e.Get(FieldBytecodeMode)
	if err != nil {
		return 0, err
	}
	return v.(BytecodeMode), nil
}

// SetBytecodeMode selects the execution mode. BytecodeModeOff is a query
// result only; libclamav rejects it with CL_EARG.
func (e *Engine) SetBytecodeMode(v BytecodeMode) (BytecodeMode, error) {
	if !v.Valid() {
		return 0, fmt.Errorf("%w: %s = %d", ErrValueOutOfRange, FieldBytecodeMode, uint32(v))
	}
	return stored(v, e.setNum(FieldBytecodeMode, int64(v)))
}
