// Package clamav exposes libclamav, the ClamAV scanning engine, to Go.
//
// The package owns no scanning logic. It wraps the native engine and settings
// pointers in owning handles, translates every native result code into a Go
// error, and gives each tunable engine field a typed accessor.
//
// # Lifecycle
//
//	engine, err := clamav.NewEngine()
//	if err != nil {
//	    return err
//	}
//	defer engine.Close()
//
//	if _, err := engine.SetMaxFiles(5000); err != nil {
//	    return err
//	}
//	dir, err := clamav.DefaultDBDir()
//	if err != nil {
//	    return err
//	}
//	sigs, err := engine.Load(dir, clamav.DBStdOpt)
//	if err != nil {
//	    return err
//	}
//	if err := engine.Compile(); err != nil {
//	    return err
//	}
//
// Engines, Settings and DirStats each own exactly one native pointer. Close
// releases it once; later calls are no-ops. A finalizer is set as a safety
// net, but explicit cleanup is recommended.
//
// # Errors
//
// Every native call returns a Code. Clean and Success are not errors; any
// other code becomes an *Error carrying the code and libclamav's description
// of it. Misuse that can be detected without calling into libclamav, such as
// passing a string to a numeric field, fails with one of the sentinel errors
// before any native call is made.
//
// # Threading
//
// libclamav does not synchronise mutation of a single engine. Do not change
// fields, load databases, compile or apply settings on the same Engine from
// several goroutines without external locking. Separate engines share
// nothing. Scanning a compiled engine from several goroutines is supported by
// libclamav itself.
//
// # Builds without cgo
//
// Without cgo (or on Windows) the package still compiles. Constructors and
// library functions then fail with ErrNotBuilt.
package clamav
