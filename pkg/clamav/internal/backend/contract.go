//go:build cgo && !windows

package backend

/*
#include <clamav.h>
*/
import "C"

// HeaderConstants returns the enumeration values exactly as the installed
// clamav.h defines them, keyed by their C names. The clamav package tests
// compare these against its own constants so a header drift is caught.
func HeaderConstants() map[string]int64 {
	return map[string]int64{
		"CL_CLEAN":              C.CL_CLEAN,
		"CL_SUCCESS":            C.CL_SUCCESS,
		"CL_VIRUS":              C.CL_VIRUS,
		"CL_ENULLARG":           C.CL_ENULLARG,
		"CL_EARG":               C.CL_EARG,
		"CL_EMALFDB":            C.CL_EMALFDB,
		"CL_ECVD":               C.CL_ECVD,
		"CL_EVERIFY":            C.CL_EVERIFY,
		"CL_EUNPACK":            C.CL_EUNPACK,
		"CL_EOPEN":              C.CL_EOPEN,
		"CL_ECREAT":             C.CL_ECREAT,
		"CL_EUNLINK":            C.CL_EUNLINK,
		"CL_ESTAT":              C.CL_ESTAT,
		"CL_EREAD":              C.CL_EREAD,
		"CL_ESEEK":              C.CL_ESEEK,
		"CL_EWRITE":             C.CL_EWRITE,
		"CL_EDUP":               C.CL_EDUP,
		"CL_EACCES":             C.CL_EACCES,
		"CL_ETMPFILE":           C.CL_ETMPFILE,
		"CL_ETMPDIR":            C.CL_ETMPDIR,
		"CL_EMAP":               C.CL_EMAP,
		"CL_EMEM":               C.CL_EMEM,
		"CL_ETIMEOUT":           C.CL_ETIMEOUT,
		"CL_BREAK":              C.CL_BREAK,
		"CL_EMAXREC":            C.CL_EMAXREC,
		"CL_EMAXSIZE":           C.CL_EMAXSIZE,
		"CL_EMAXFILES":          C.CL_EMAXFILES,
		"CL_EFORMAT":            C.CL_EFORMAT,
		"CL_EBYTECODE":          C.CL_EBYTECODE,
		"CL_EBYTECODE_TESTFAIL": C.CL_EBYTECODE_TESTFAIL,
		"CL_ELOCK":              C.CL_ELOCK,
		"CL_EBUSY":              C.CL_EBUSY,
		"CL_ESTATE":             C.CL_ESTATE,
		"CL_ELAST_ERROR":        C.CL_ELAST_ERROR,

		"CL_DB_PHISHING":          C.CL_DB_PHISHING,
		"CL_DB_PHISHING_URLS":     C.CL_DB_PHISHING_URLS,
		"CL_DB_PUA":               C.CL_DB_PUA,
		"CL_DB_CVDNOTMP":          C.CL_DB_CVDNOTMP,
		"CL_DB_OFFICIAL":          C.CL_DB_OFFICIAL,
		"CL_DB_PUA_MODE":          C.CL_DB_PUA_MODE,
		"CL_DB_PUA_INCLUDE":       C.CL_DB_PUA_INCLUDE,
		"CL_DB_PUA_EXCLUDE":       C.CL_DB_PUA_EXCLUDE,
		"CL_DB_COMPILED":          C.CL_DB_COMPILED,
		"CL_DB_DIRECTORY":         C.CL_DB_DIRECTORY,
		"CL_DB_OFFICIAL_ONLY":     C.CL_DB_OFFICIAL_ONLY,
		"CL_DB_BYTECODE":          C.CL_DB_BYTECODE,
		"CL_DB_SIGNED":            C.CL_DB_SIGNED,
		"CL_DB_BYTECODE_UNSIGNED": C.CL_DB_BYTECODE_UNSIGNED,
		"CL_DB_STDOPT":            C.CL_DB_STDOPT,

		"CL_SCAN_RAW":                     C.CL_SCAN_RAW,
		"CL_SCAN_ARCHIVE":                 C.CL_SCAN_ARCHIVE,
		"CL_SCAN_MAIL":                    C.CL_SCAN_MAIL,
		"CL_SCAN_OLE2":                    C.CL_SCAN_OLE2,
		"CL_SCAN_BLOCKENCRYPTED":          C.CL_SCAN_BLOCKENCRYPTED,
		"CL_SCAN_HTML":                    C.CL_SCAN_HTML,
		"CL_SCAN_PE":                      C.CL_SCAN_PE,
		"CL_SCAN_BLOCKBROKEN":             C.CL_SCAN_BLOCKBROKEN,
		"CL_SCAN_MAILURL":                 C.CL_SCAN_MAILURL,
		"CL_SCAN_BLOCKMAX":                C.CL_SCAN_BLOCKMAX,
		"CL_SCAN_ALGORITHMIC":             C.CL_SCAN_ALGORITHMIC,
		"CL_SCAN_PHISHING_BLOCKSSL":       C.CL_SCAN_PHISHING_BLOCKSSL,
		"CL_SCAN_PHISHING_BLOCKCLOAK":     C.CL_SCAN_PHISHING_BLOCKCLOAK,
		"CL_SCAN_ELF":                     C.CL_SCAN_ELF,
		"CL_SCAN_PDF":                     C.CL_SCAN_PDF,
		"CL_SCAN_STRUCTURED":              C.CL_SCAN_STRUCTURED,
		"CL_SCAN_STRUCTURED_SSN_NORMAL":   C.CL_SCAN_STRUCTURED_SSN_NORMAL,
		"CL_SCAN_STRUCTURED_SSN_STRIPPED": C.CL_SCAN_STRUCTURED_SSN_STRIPPED,
		"CL_SCAN_PARTIAL_MESSAGE":         C.CL_SCAN_PARTIAL_MESSAGE,
		"CL_SCAN_HEURISTIC_PRECEDENCE":    C.CL_SCAN_HEURISTIC_PRECEDENCE,
		"CL_SCAN_BLOCKMACROS":             C.CL_SCAN_BLOCKMACROS,
		"CL_SCAN_STDOPT":                  C.CL_SCAN_STDOPT,

		"CL_COUNTSIGS_OFFICIAL":   C.CL_COUNTSIGS_OFFICIAL,
		"CL_COUNTSIGS_UNOFFICIAL": C.CL_COUNTSIGS_UNOFFICIAL,
		"CL_COUNTSIGS_ALL":        C.CL_COUNTSIGS_ALL,

		"CL_BYTECODE_TRUST_ALL":     C.CL_BYTECODE_TRUST_ALL,
		"CL_BYTECODE_TRUST_SIGNED":  C.CL_BYTECODE_TRUST_SIGNED,
		"CL_BYTECODE_TRUST_NOTHING": C.CL_BYTECODE_TRUST_NOTHING,

		"CL_BYTECODE_MODE_AUTO":        C.CL_BYTECODE_MODE_AUTO,
		"CL_BYTECODE_MODE_JIT":         C.CL_BYTECODE_MODE_JIT,
		"CL_BYTECODE_MODE_INTERPRETER": C.CL_BYTECODE_MODE_INTERPRETER,
		"CL_BYTECODE_MODE_TEST":        C.CL_BYTECODE_MODE_TEST,
		"CL_BYTECODE_MODE_OFF":         C.CL_BYTECODE_MODE_OFF,

		"CL_MSG_INFO_VERBOSE": C.CL_MSG_INFO_VERBOSE,
		"CL_MSG_WARN":         C.CL_MSG_WARN,
		"CL_MSG_ERROR":        C.CL_MSG_ERROR,

		"CL_ENGINE_MAX_SCANSIZE":      C.CL_ENGINE_MAX_SCANSIZE,
		"CL_ENGINE_MAX_FILESIZE":      C.CL_ENGINE_MAX_FILESIZE,
		"CL_ENGINE_MAX_RECURSION":     C.CL_ENGINE_MAX_RECURSION,
		"CL_ENGINE_MAX_FILES":         C.CL_ENGINE_MAX_FILES,
		"CL_ENGINE_MIN_CC_COUNT":      C.CL_ENGINE_MIN_CC_COUNT,
		"CL_ENGINE_MIN_SSN_COUNT":     C.CL_ENGINE_MIN_SSN_COUNT,
		"CL_ENGINE_PUA_CATEGORIES":    C.CL_ENGINE_PUA_CATEGORIES,
		"CL_ENGINE_DB_OPTIONS":        C.CL_ENGINE_DB_OPTIONS,
		"CL_ENGINE_DB_VERSION":        C.CL_ENGINE_DB_VERSION,
		"CL_ENGINE_DB_TIME":           C.CL_ENGINE_DB_TIME,
		"CL_ENGINE_AC_ONLY":           C.CL_ENGINE_AC_ONLY,
		"CL_ENGINE_AC_MINDEPTH":       C.CL_ENGINE_AC_MINDEPTH,
		"CL_ENGINE_AC_MAXDEPTH":       C.CL_ENGINE_AC_MAXDEPTH,
		"CL_ENGINE_TMPDIR":            C.CL_ENGINE_TMPDIR,
		"CL_ENGINE_KEEPTMP":           C.CL_ENGINE_KEEPTMP,
		"CL_ENGINE_BYTECODE_SECURITY": C.CL_ENGINE_BYTECODE_SECURITY,
		"CL_ENGINE_BYTECODE_TIMEOUT":  C.CL_ENGINE_BYTECODE_TIMEOUT,
		"CL_ENGINE_BYTECODE_MODE":     C.CL_ENGINE_BYTECODE_MODE,

		"CL_INIT_DEFAULT":    C.CL_INIT_DEFAULT,
		"CL_COUNT_PRECISION": C.CL_COUNT_PRECISION,
	}
}
