package backend

import "unsafe"

// Engine is an opaque struct cl_engine pointer.
type Engine = unsafe.Pointer

// Settings is an opaque struct cl_settings pointer.
type Settings = unsafe.Pointer

// Stat is a C-allocated struct cl_stat used by the database directory
// watcher.
type Stat = unsafe.Pointer

// CVD mirrors struct cl_cvd with the C strings already copied into Go memory.
type CVD struct {
	Time    string
	Version uint32
	Sigs    uint32
	FLevel  uint32
	MD5     string
	DSig    string
	Builder string
	STime   uint32
}

// CountPrecision is CL_COUNT_PRECISION: the scanned counter reported by the
// scan entry points is expressed in blocks of this many bytes.
const CountPrecision = 4096

// Hooks receives the per-engine callbacks libclamav raises while loading
// databases and scanning. Implementations must not retain string arguments'
// backing C memory; the trampolines copy everything before calling in.
type Hooks interface {
	PreScan(fd int) int32
	PostScan(fd int, result int32, virus string) int32
	SigLoad(kind, name string) int32
	Hash(fd int, size uint64, md5 []byte, virus string)
}

// MessageFunc receives libclamav log messages installed via SetMessageHandler.
type MessageFunc func(severity int32, full, msg string)
