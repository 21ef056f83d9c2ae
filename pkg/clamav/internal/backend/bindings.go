//go:build cgo && !windows

package backend

/*
#cgo LDFLAGS: -lclamav
#include <stdint.h>
#include <stdlib.h>
#include <clamav.h>

extern int clamavGoPreScan(int fd, void *ctx);
extern int clamavGoPostScan(int fd, int result, char *virname, void *ctx);
extern int clamavGoSigLoad(char *type, char *name, void *ctx);
extern void clamavGoHash(int fd, unsigned long long size, unsigned char *md5, char *virname, void *ctx);
extern void clamavGoMsg(int severity, char *fullmsg, char *msg, void *ctx);

static cl_error_t clamav_pre_scan(int fd, void *ctx) {
	return (cl_error_t)clamavGoPreScan(fd, ctx);
}

static cl_error_t clamav_post_scan(int fd, int result, const char *virname, void *ctx) {
	return (cl_error_t)clamavGoPostScan(fd, result, (char *)virname, ctx);
}

static int clamav_sigload(const char *type, const char *name, void *ctx) {
	return clamavGoSigLoad((char *)type, (char *)name, ctx);
}

static void clamav_hash(int fd, unsigned long long size, const unsigned char *md5, const char *virname, void *ctx) {
	clamavGoHash(fd, size, (unsigned char *)md5, (char *)virname, ctx);
}

static void clamav_msg(enum cl_msg severity, const char *fullmsg, const char *msg, void *ctx) {
	clamavGoMsg((int)severity, (char *)fullmsg, (char *)msg, ctx);
}

static void clamav_set_pre_scan(struct cl_engine *e, int on) {
	cl_engine_set_clcb_pre_scan(e, on ? clamav_pre_scan : NULL);
}

static void clamav_set_post_scan(struct cl_engine *e, int on) {
	cl_engine_set_clcb_post_scan(e, on ? clamav_post_scan : NULL);
}

static void clamav_set_sigload(struct cl_engine *e, uintptr_t ctx, int on) {
	cl_engine_set_clcb_sigload(e, on ? clamav_sigload : NULL, on ? (void *)ctx : NULL);
}

static void clamav_set_hash(struct cl_engine *e, int on) {
	cl_engine_set_clcb_hash(e, on ? clamav_hash : NULL);
}

static void clamav_set_msg(int on) {
	cl_set_clcb_msg(on ? clamav_msg : NULL);
}

static int clamav_scanfile(const char *path, const char **virname, unsigned long *scanned,
		const struct cl_engine *e, unsigned int opts, uintptr_t ctx) {
	if (ctx == 0) {
		return cl_scanfile(path, virname, scanned, e, opts);
	}
	return cl_scanfile_callback(path, virname, scanned, e, opts, (void *)ctx);
}

static int clamav_scandesc(int fd, const char **virname, unsigned long *scanned,
		const struct cl_engine *e, unsigned int opts, uintptr_t ctx) {
	if (ctx == 0) {
		return cl_scandesc(fd, virname, scanned, e, opts);
	}
	return cl_scandesc_callback(fd, virname, scanned, e, opts, (void *)ctx);
}
*/
import "C"

import (
	"unsafe"
)

func engine(e Engine) *C.struct_cl_engine {
	return (*C.struct_cl_engine)(e)
}

func cbool(on bool) C.int {
	if on {
		return 1
	}
	return 0
}

// goStringOrAbsent copies a possibly NULL C string.
func goStringOrAbsent(s *C.char) (string, bool) {
	if s == nil {
		return "", false
	}
	return C.GoString(s), true
}

func Init(flags uint32) int32 {
	return int32(C.cl_init(C.uint(flags)))
}

func EngineNew() Engine {
	return Engine(C.cl_engine_new())
}

func EngineFree(e Engine) int32 {
	return int32(C.cl_engine_free(engine(e)))
}

// EngineAddref bumps the native reference count. Each extra reference needs
// its own EngineFree; the clamav package never takes one.
func EngineAddref(e Engine) int32 {
	return int32(C.cl_engine_addref(engine(e)))
}

func EngineCompile(e Engine) int32 {
	return int32(C.cl_engine_compile(engine(e)))
}

func EngineSetNum(e Engine, field uint32, v int64) int32 {
	return int32(C.cl_engine_set_num(engine(e), C.enum_cl_engine_field(field), C.longlong(v)))
}

func EngineGetNum(e Engine, field uint32) (int64, int32) {
	var cerr C.int
	v := C.cl_engine_get_num(engine(e), C.enum_cl_engine_field(field), &cerr)
	return int64(v), int32(cerr)
}

func EngineSetStr(e Engine, field uint32, v string) int32 {
	cv := C.CString(v)
	defer C.free(unsafe.Pointer(cv))
	return int32(C.cl_engine_set_str(engine(e), C.enum_cl_engine_field(field), cv))
}

// EngineGetStr reports ok=false when the native field is NULL.
func EngineGetStr(e Engine, field uint32) (v string, ok bool, code int32) {
	var cerr C.int
	s := C.cl_engine_get_str(engine(e), C.enum_cl_engine_field(field), &cerr)
	v, ok = goStringOrAbsent(s)
	return v, ok, int32(cerr)
}

func SettingsCopy(e Engine) Settings {
	return Settings(C.cl_engine_settings_copy(engine(e)))
}

func SettingsApply(e Engine, s Settings) int32 {
	return int32(C.cl_engine_settings_apply(engine(e), (*C.struct_cl_settings)(s)))
}

func SettingsFree(s Settings) int32 {
	return int32(C.cl_engine_settings_free((*C.struct_cl_settings)(s)))
}

// Load returns the number of signatures added by this call alone.
func Load(path string, e Engine, opts uint32) (uint32, int32) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	var signo C.uint
	rc := C.cl_load(cpath, engine(e), &signo, C.uint(opts))
	return uint32(signo), int32(rc)
}

func SetPreScan(e Engine, on bool) {
	C.clamav_set_pre_scan(engine(e), cbool(on))
}

func SetPostScan(e Engine, on bool) {
	C.clamav_set_post_scan(engine(e), cbool(on))
}

func SetSigLoad(e Engine, ctx uintptr, on bool) {
	C.clamav_set_sigload(engine(e), C.uintptr_t(ctx), cbool(on))
}

func SetHash(e Engine, on bool) {
	C.clamav_set_hash(engine(e), cbool(on))
}

// SetMessageHandler installs fn as the process-wide libclamav message
// callback. A nil fn restores libclamav's own stderr printing.
func SetMessageHandler(fn MessageFunc) {
	storeMessageHandler(fn)
	C.clamav_set_msg(cbool(fn != nil))
}

// ScanFile scans path. A zero ctx uses the plain cl_scanfile entry point.
func ScanFile(path string, e Engine, opts uint32, ctx uintptr) (virus string, scanned uint64, code int32) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	var (
		virname *C.char
		blocks  C.ulong
	)
	rc := C.clamav_scanfile(cpath, &virname, &blocks, engine(e), C.uint(opts), C.uintptr_t(ctx))
	virus, _ = goStringOrAbsent(virname)
	return virus, uint64(blocks), int32(rc)
}

// ScanDesc scans an open descriptor. A zero ctx uses the plain cl_scandesc
// entry point.
func ScanDesc(fd int, e Engine, opts uint32, ctx uintptr) (virus string, scanned uint64, code int32) {
	var (
		virname *C.char
		blocks  C.ulong
	)
	rc := C.clamav_scandesc(C.int(fd), &virname, &blocks, engine(e), C.uint(opts), C.uintptr_t(ctx))
	virus, _ = goStringOrAbsent(virname)
	return virus, uint64(blocks), int32(rc)
}

func RetDBDir() string {
	s, _ := goStringOrAbsent(C.cl_retdbdir())
	return s
}

func CVDHead(path string) (*CVD, bool) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return takeCVD(C.cl_cvdhead(cpath))
}

func CVDParse(head string) (*CVD, bool) {
	chead := C.CString(head)
	defer C.free(unsafe.Pointer(chead))
	return takeCVD(C.cl_cvdparse(chead))
}

// takeCVD copies a native cl_cvd into Go memory and frees it.
func takeCVD(c *C.struct_cl_cvd) (*CVD, bool) {
	if c == nil {
		return nil, false
	}
	defer C.cl_cvdfree(c)
	out := &CVD{
		Version: uint32(c.version),
		Sigs:    uint32(c.sigs),
		FLevel:  uint32(c.fl),
		STime:   uint32(c.stime),
	}
	out.Time, _ = goStringOrAbsent(c.time)
	out.MD5, _ = goStringOrAbsent(c.md5)
	out.DSig, _ = goStringOrAbsent(c.dsig)
	out.Builder, _ = goStringOrAbsent(c.builder)
	return out, true
}

func CVDVerify(path string) int32 {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	return int32(C.cl_cvdverify(cpath))
}

// StatIniDir allocates a struct cl_stat and primes it for dir. The returned
// Stat must be released with StatFree.
func StatIniDir(dir string) (Stat, int32) {
	cdir := C.CString(dir)
	defer C.free(unsafe.Pointer(cdir))
	st := C.calloc(1, C.sizeof_struct_cl_stat)
	if st == nil {
		return nil, int32(C.CL_EMEM)
	}
	rc := C.cl_statinidir(cdir, (*C.struct_cl_stat)(st))
	if rc != C.CL_SUCCESS {
		C.free(st)
		return nil, int32(rc)
	}
	return Stat(st), 0
}

// StatChkDir returns 1 when the directory changed since the last check, 0
// when it did not, or an error code.
func StatChkDir(st Stat) int32 {
	return int32(C.cl_statchkdir((*C.struct_cl_stat)(st)))
}

func StatFree(st Stat) int32 {
	rc := C.cl_statfree((*C.struct_cl_stat)(st))
	C.free(unsafe.Pointer(st))
	return int32(rc)
}

func CountSigs(path string, opts uint32) (uint32, int32) {
	cpath := C.CString(path)
	defer C.free(unsafe.Pointer(cpath))
	var sigs C.uint
	rc := C.cl_countsigs(cpath, C.uint(opts), &sigs)
	return uint32(sigs), int32(rc)
}

func Debug() {
	C.cl_debug()
}

func RetFLevel() uint32 {
	return uint32(C.cl_retflevel())
}

func RetVer() string {
	s, _ := goStringOrAbsent(C.cl_retver())
	return s
}

func StrError(code int32) string {
	s, _ := goStringOrAbsent(C.cl_strerror(C.int(code)))
	return s
}
