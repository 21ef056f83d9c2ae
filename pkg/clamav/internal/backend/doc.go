// Package backend hosts the thin cgo layer that links the Go API to the
// native libclamav library. The real implementation lives behind build tags
// so that the rest of the repository can compile without cgo.
//
// Every function in this package mirrors one libclamav entry point and speaks
// in raw integers: result codes come back as int32 and field selectors and
// option masks go in as uint32. Translation into typed values and errors is
// the job of the clamav package.
package backend
