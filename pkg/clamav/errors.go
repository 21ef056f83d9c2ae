package clamav

import (
	"errors"
	"fmt"

	"github.com/ffi-clamav/clamav-go/pkg/clamav/internal/backend"
)

var (
	// ErrNotBuilt reports that libclamav was not linked into the current
	// binary (cgo disabled or Windows).
	ErrNotBuilt = errors.New("clamav: native bindings not built")

	// ErrAllocationFailed is returned when a native constructor hands back
	// a NULL pointer.
	ErrAllocationFailed = errors.New("clamav: native allocation failed")

	// ErrClosed is returned by any operation on a handle after Close.
	ErrClosed = errors.New("clamav: handle already closed")

	// ErrWrongFieldType is returned when a value of the wrong Go type is
	// offered for an engine field. No native call is made.
	ErrWrongFieldType = errors.New("clamav: wrong field type")

	// ErrValueOutOfRange is returned when a value does not fit the native
	// width of a field or is not a member of the field's enumeration. No
	// native call is made.
	ErrValueOutOfRange = errors.New("clamav: value out of range")

	// ErrUnknownField is returned for a Field outside the declared set.
	ErrUnknownField = errors.New("clamav: unknown engine field")
)

// Error is a failing libclamav result code together with the library's
// description of it.
type Error struct {
	Code        Code
	Description string
}

// NewError builds the Error for code, looking up its description.
func NewError(code Code) *Error {
	return &Error{Code: code, Description: Describe(code)}
}

func (e *Error) Error() string {
	return fmt.Sprintf("clamav: %s (%s)", e.Description, e.Code)
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// CodeOf extracts the result code from err. ok is false when err does not
// wrap an *Error.
func CodeOf(err error) (code Code, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return CodeClean, false
}

// IsCode reports whether err wraps an *Error with the given code.
func IsCode(err error, code Code) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}

// Wrap invokes a native call and converts its result code. Clean and Success
// yield nil; any other code yields an *Error.
func Wrap(call func() Code) error {
	return codeErr(call())
}

// WrapValue is Wrap for calls that also produce a payload. On failure the
// zero value is returned alongside the error.
func WrapValue[T any](call func() (T, Code)) (T, error) {
	v, code := call()
	if err := codeErr(code); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

func codeErr(code Code) error {
	if !code.IsError() {
		return nil
	}
	return NewError(code)
}

func nativeErr(rc int32) error {
	return codeErr(Code(rc))
}

// requireBuilt fails fast when libclamav is not linked in.
func requireBuilt() error {
	if !backend.Built {
		return ErrNotBuilt
	}
	return nil
}
