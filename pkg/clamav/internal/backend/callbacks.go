//go:build cgo && !windows

package backend

/*
#include <stdint.h>
*/
import "C"

import (
	"log"
	"unsafe"
)

// Only declarations may appear in the preamble of a file with //export
// directives, so the C shims that reference these live in bindings.go.

const clean = 0

func hooksFor(ctx unsafe.Pointer) (Hooks, bool) {
	return lookup(uintptr(ctx))
}

func cString(s *C.char) string {
	if s == nil {
		return ""
	}
	return C.GoString(s)
}

// recoverCallback keeps a panicking hook from unwinding into libclamav.
func recoverCallback(name string) {
	if rec := recover(); rec != nil {
		log.Printf("clamav: panic in %s callback: %#v", name, rec)
	}
}

//export clamavGoPreScan
func clamavGoPreScan(fd C.int, ctx unsafe.Pointer) (ret C.int) {
	defer recoverCallback("pre-scan")
	h, ok := hooksFor(ctx)
	if !ok {
		return clean
	}
	return C.int(h.PreScan(int(fd)))
}

//export clamavGoPostScan
func clamavGoPostScan(fd C.int, result C.int, virname *C.char, ctx unsafe.Pointer) (ret C.int) {
	defer recoverCallback("post-scan")
	h, ok := hooksFor(ctx)
	if !ok {
		return clean
	}
	return C.int(h.PostScan(int(fd), int32(result), cString(virname)))
}

//export clamavGoSigLoad
func clamavGoSigLoad(kind *C.char, name *C.char, ctx unsafe.Pointer) (ret C.int) {
	defer recoverCallback("sigload")
	h, ok := hooksFor(ctx)
	if !ok {
		return 0
	}
	return C.int(h.SigLoad(cString(kind), cString(name)))
}

//export clamavGoHash
func clamavGoHash(fd C.int, size C.ulonglong, md5 *C.uchar, virname *C.char, ctx unsafe.Pointer) {
	defer recoverCallback("hash")
	h, ok := hooksFor(ctx)
	if !ok {
		return
	}
	var sum []byte
	if md5 != nil {
		sum = C.GoBytes(unsafe.Pointer(md5), 16)
	}
	h.Hash(int(fd), uint64(size), sum, cString(virname))
}

//export clamavGoMsg
func clamavGoMsg(severity C.int, full *C.char, msg *C.char, ctx unsafe.Pointer) {
	defer recoverCallback("message")
	fn := currentMessageHandler()
	if fn == nil {
		return
	}
	fn(int32(severity), cString(full), cString(msg))
}
