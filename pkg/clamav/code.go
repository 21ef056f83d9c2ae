package clamav

import (
	"fmt"

	"github.com/ffi-clamav/clamav-go/pkg/clamav/internal/backend"
)

// Code is a libclamav result code (cl_error_t). The numeric values are fixed
// by the native library and must not be renumbered.
type Code int32

const (
	CodeClean   Code = 0
	CodeSuccess Code = 0
	CodeVirus   Code = 1

	CodeENullArg Code = 2
	CodeEArg     Code = 3
	CodeEMalfDB  Code = 4
	CodeECVD     Code = 5
	CodeEVerify  Code = 6
	CodeEUnpack  Code = 7

	// I/O and memory errors
	CodeEOpen    Code = 8
	CodeECreat   Code = 9
	CodeEUnlink  Code = 10
	CodeEStat    Code = 11
	CodeERead    Code = 12
	CodeESeek    Code = 13
	CodeEWrite   Code = 14
	CodeEDup     Code = 15
	CodeEAcces   Code = 16
	CodeETmpFile Code = 17
	CodeETmpDir  Code = 18
	CodeEMap     Code = 19
	CodeEMem     Code = 20
	CodeETimeout Code = 21

	// internal (not reported outside libclamav)
	CodeBreak             Code = 22
	CodeEMaxRec           Code = 23
	CodeEMaxSize          Code = 24
	CodeEMaxFiles         Code = 25
	CodeEFormat           Code = 26
	CodeEBytecode         Code = 27 // may be reported in testmode
	CodeEBytecodeTestFail Code = 28 // may be reported in testmode

	// lock and state
	CodeELock  Code = 29
	CodeEBusy  Code = 30
	CodeEState Code = 31

	// CodeELastError is the sentinel that terminates the enumeration.
	CodeELastError Code = 32
)

var codeNames = [...]string{
	"CL_CLEAN",
	"CL_VIRUS",
	"CL_ENULLARG",
	"CL_EARG",
	"CL_EMALFDB",
	"CL_ECVD",
	"CL_EVERIFY",
	"CL_EUNPACK",
	"CL_EOPEN",
	"CL_ECREAT",
	"CL_EUNLINK",
	"CL_ESTAT",
	"CL_EREAD",
	"CL_ESEEK",
	"CL_EWRITE",
	"CL_EDUP",
	"CL_EACCES",
	"CL_ETMPFILE",
	"CL_ETMPDIR",
	"CL_EMAP",
	"CL_EMEM",
	"CL_ETIMEOUT",
	"CL_BREAK",
	"CL_EMAXREC",
	"CL_EMAXSIZE",
	"CL_EMAXFILES",
	"CL_EFORMAT",
	"CL_EBYTECODE",
	"CL_EBYTECODE_TESTFAIL",
	"CL_ELOCK",
	"CL_EBUSY",
	"CL_ESTATE",
	"CL_ELAST_ERROR",
}

// Codes lists every declared result code from CodeClean up to, but not
// including, CodeELastError.
func Codes() []Code {
	out := make([]Code, 0, CodeELastError)
	for c := CodeClean; c < CodeELastError; c++ {
		out = append(out, c)
	}
	return out
}

// String returns the C name of the code, for example "CL_VIRUS".
func (c Code) String() string {
	if c.Declared() || c == CodeELastError {
		return codeNames[c]
	}
	return fmt.Sprintf("cl_error_t(%d)", int32(c))
}

// Declared reports whether c is one of the codes libclamav can return.
func (c Code) Declared() bool {
	return c >= CodeClean && c < CodeELastError
}

// IsError reports whether c is a failure. Clean and Success are the only
// non-error outcomes.
func (c Code) IsError() bool {
	return c != CodeClean
}

// Internal reports whether c is one of the codes libclamav keeps to itself.
func (c Code) Internal() bool {
	return c.Category() == CategoryInternal
}

// Category groups result codes.
type Category int

const (
	CategoryNone Category = iota
	CategoryDetection
	CategoryArgument
	CategoryIO
	CategoryInternal
	CategoryState
	CategoryUnknown
)

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryDetection:
		return "detection"
	case CategoryArgument:
		return "argument"
	case CategoryIO:
		return "io"
	case CategoryInternal:
		return "internal"
	case CategoryState:
		return "state"
	default:
		return "unknown"
	}
}

// Category places c in the result code taxonomy.
func (c Code) Category() Category {
	switch {
	case c == CodeClean:
		return CategoryNone
	case c == CodeVirus:
		return CategoryDetection
	case c >= CodeENullArg && c <= CodeEUnpack:
		return CategoryArgument
	case c >= CodeEOpen && c <= CodeETimeout:
		return CategoryIO
	case c >= CodeBreak && c <= CodeEBytecodeTestFail:
		return CategoryInternal
	case c >= CodeELock && c <= CodeEState:
		return CategoryState
	default:
		return CategoryUnknown
	}
}

// Describe returns libclamav's human readable message for code. Builds
// without the native library fall back to the same texts compiled in.
func Describe(code Code) string {
	if s := backend.StrError(int32(code)); s != "" {
		return s
	}
	if msg, ok := fallbackMessages[code]; ok {
		return msg
	}
	return "Unknown error code"
}

// fallbackMessages mirrors cl_strerror.
var fallbackMessages = map[Code]string{
	CodeClean:             "No viruses detected",
	CodeVirus:             "Virus(es) detected",
	CodeENullArg:          "Null argument passed to function",
	CodeEArg:              "Invalid argument passed to function",
	CodeEMalfDB:           "Malformed database",
	CodeECVD:              "Broken or not a CVD file",
	CodeEVerify:           "Can't verify database integrity",
	CodeEUnpack:           "Can't unpack some data",
	CodeEOpen:             "Can't open file or directory",
	CodeECreat:            "Can't create new file",
	CodeEUnlink:           "Can't unlink file",
	CodeEStat:             "Can't get file status",
	CodeERead:             "Can't read file",
	CodeESeek:             "Can't set file offset",
	CodeEWrite:            "Can't write to file",
	CodeEDup:              "Can't duplicate file descriptor",
	CodeEAcces:            "Can't access file",
	CodeETmpFile:          "Can't create temporary file",
	CodeETmpDir:           "Can't create temporary directory",
	CodeEMap:              "Can't map file into memory",
	CodeEMem:              "Can't allocate memory",
	CodeETimeout:          "CL_ETIMEOUT: Time limit reached",
	CodeBreak:             "Process aborted",
	CodeEMaxRec:           "CL_EMAXREC",
	CodeEMaxSize:          "CL_EMAXSIZE",
	CodeEMaxFiles:         "CL_EMAXFILES",
	CodeEFormat:           "CL_EFORMAT: Bad format or broken data",
	CodeEBytecode:         "Error during bytecode execution",
	CodeEBytecodeTestFail: "Failure in bytecode testmode",
	CodeELock:             "Mutex lock failed",
	CodeEBusy:             "Scanner still active",
	CodeEState:            "Bad state (engine not initialized, or already initialized)",
}
