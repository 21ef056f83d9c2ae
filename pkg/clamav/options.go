package clamav

import (
	"fmt"
	"sort"
	"strings"
)

// DBOptions is the cl_load option bitmask (CL_DB_*).
type DBOptions uint32

const (
	DBPhishing         DBOptions = 0x2
	DBPhishingURLs     DBOptions = 0x8
	DBPUA              DBOptions = 0x10
	DBCVDNoTmp         DBOptions = 0x20 // obsolete
	DBOfficial         DBOptions = 0x40 // internal
	DBPUAMode          DBOptions = 0x80
	DBPUAInclude       DBOptions = 0x100
	DBPUAExclude       DBOptions = 0x200
	DBCompiled         DBOptions = 0x400 // internal
	DBDirectory        DBOptions = 0x800 // internal
	DBOfficialOnly     DBOptions = 0x1000
	DBBytecode         DBOptions = 0x2000
	DBSigned           DBOptions = 0x4000 // internal
	DBBytecodeUnsigned DBOptions = 0x8000

	// DBStdOpt is the recommended database option set.
	DBStdOpt = DBPhishing | DBPhishingURLs | DBBytecode
)

var dbOptionNames = map[string]DBOptions{
	"phishing":          DBPhishing,
	"phishing_urls":     DBPhishingURLs,
	"pua":               DBPUA,
	"cvdnotmp":          DBCVDNoTmp,
	"official":          DBOfficial,
	"pua_mode":          DBPUAMode,
	"pua_include":       DBPUAInclude,
	"pua_exclude":       DBPUAExclude,
	"compiled":          DBCompiled,
	"directory":         DBDirectory,
	"official_only":     DBOfficialOnly,
	"bytecode":          DBBytecode,
	"signed":            DBSigned,
	"bytecode_unsigned": DBBytecodeUnsigned,
}

// ParseDBOptions turns flag names ("phishing", "bytecode", ...) into a mask.
// The name "stdopt" expands to DBStdOpt.
func ParseDBOptions(names []string) (DBOptions, error) {
	var out DBOptions
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name == "stdopt" {
			out |= DBStdOpt
			continue
		}
		flag, ok := dbOptionNames[name]
		if !ok {
			return 0, fmt.Errorf("clamav: unknown database option %q", name)
		}
		out |= flag
	}
	return out, nil
}

// Names lists the flag names set in o in ascending bit order.
func (o DBOptions) Names() []string {
	return flagNames(uint32(o), dbOptionNames)
}

func (o DBOptions) String() string {
	return formatFlags(uint32(o), dbOptionNames)
}

// ScanOptions is the scan option bitmask (CL_SCAN_*).
type ScanOptions uint32

const (
	ScanRaw                   ScanOptions = 0x0
	ScanArchive               ScanOptions = 0x1
	ScanMail                  ScanOptions = 0x2
	ScanOLE2                  ScanOptions = 0x4
	ScanBlockEncrypted        ScanOptions = 0x8
	ScanHTML                  ScanOptions = 0x10
	ScanPE                    ScanOptions = 0x20
	ScanBlockBroken           ScanOptions = 0x40
	ScanMailURL               ScanOptions = 0x80  // ignored
	ScanBlockMax              ScanOptions = 0x100 // ignored
	ScanAlgorithmic           ScanOptions = 0x200
	ScanPhishingBlockSSL      ScanOptions = 0x800 // ssl mismatches, not ssl by itself
	ScanPhishingBlockCloak    ScanOptions = 0x1000
	ScanELF                   ScanOptions = 0x2000
	ScanPDF                   ScanOptions = 0x4000
	ScanStructured            ScanOptions = 0x8000
	ScanStructuredSSNNormal   ScanOptions = 0x10000
	ScanStructuredSSNStripped ScanOptions = 0x20000
	ScanPartialMessage        ScanOptions = 0x40000
	ScanHeuristicPrecedence   ScanOptions = 0x80000
	ScanBlockMacros           ScanOptions = 0x100000

	// ScanStdOpt is the recommended scan option set.
	ScanStdOpt = ScanArchive | ScanMail | ScanOLE2 | ScanPDF | ScanHTML | ScanPE | ScanAlgorithmic | ScanELF
)

var scanOptionNames = map[string]ScanOptions{
	"archive":                 ScanArchive,
	"mail":                    ScanMail,
	"ole2":                    ScanOLE2,
	"blockencrypted":          ScanBlockEncrypted,
	"html":                    ScanHTML,
	"pe":                      ScanPE,
	"blockbroken":             ScanBlockBroken,
	"mailurl":                 ScanMailURL,
	"blockmax":                ScanBlockMax,
	"algorithmic":             ScanAlgorithmic,
	"phishing_blockssl":       ScanPhishingBlockSSL,
	"phishing_blockcloak":     ScanPhishingBlockCloak,
	"elf":                     ScanELF,
	"pdf":                     ScanPDF,
	"structured":              ScanStructured,
	"structured_ssn_normal":   ScanStructuredSSNNormal,
	"structured_ssn_stripped": ScanStructuredSSNStripped,
	"partial_message":         ScanPartialMessage,
	"heuristic_precedence":    ScanHeuristicPrecedence,
	"blockmacros":             ScanBlockMacros,
}

// ParseScanOptions turns flag names into a mask. "raw" contributes nothing
// and "stdopt" expands to ScanStdOpt.
func ParseScanOptions(names []string) (ScanOptions, error) {
	var out ScanOptions
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		switch name {
		case "", "raw":
			continue
		case "stdopt":
			out |= ScanStdOpt
			continue
		}
		flag, ok := scanOptionNames[name]
		if !ok {
			return 0, fmt.Errorf("clamav: unknown scan option %q", name)
		}
		out |= flag
	}
	return out, nil
}

func (o ScanOptions) Names() []string {
	return flagNames(uint32(o), scanOptionNames)
}

func (o ScanOptions) String() string {
	if o == ScanRaw {
		return "raw"
	}
	return formatFlags(uint32(o), scanOptionNames)
}

// CountSigsOptions selects which databases cl_countsigs includes.
type CountSigsOptions uint32

const (
	CountSigsOfficial   CountSigsOptions = 0x1
	CountSigsUnofficial CountSigsOptions = 0x2
	CountSigsAll                         = CountSigsOfficial | CountSigsUnofficial
)

// ParseCountSigsOptions accepts "official", "unofficial" or "all".
func ParseCountSigsOptions(s string) (CountSigsOptions, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "official":
		return CountSigsOfficial, nil
	case "unofficial":
		return CountSigsUnofficial, nil
	case "all", "":
		return CountSigsAll, nil
	default:
		return 0, fmt.Errorf("clamav: unknown countsigs scope %q", s)
	}
}

// BytecodeSecurity is the trust policy for bytecode signatures.
type BytecodeSecurity uint32

const (
	BytecodeTrustAll     BytecodeSecurity = 0
	BytecodeTrustSigned  BytecodeSecurity = 1
	BytecodeTrustNothing BytecodeSecurity = 2
)

var bytecodeSecurityNames = [...]string{"trust_all", "trust_signed", "trust_nothing"}

func (s BytecodeSecurity) Valid() bool {
	return s <= BytecodeTrustNothing
}

func (s BytecodeSecurity) String() string {
	if s.Valid() {
		return bytecodeSecurityNames[s]
	}
	return fmt.Sprintf("bytecode_security(%d)", uint32(s))
}

func ParseBytecodeSecurity(s string) (BytecodeSecurity, error) {
	for i, name := range bytecodeSecurityNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return BytecodeSecurity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: bytecode security %q", ErrValueOutOfRange, s)
}

// BytecodeMode selects how bytecode signatures are executed.
type BytecodeMode uint32

const (
	BytecodeModeAuto        BytecodeMode = 0 // JIT if possible, fallback to interpreter
	BytecodeModeJIT         BytecodeMode = 1
	BytecodeModeInterpreter BytecodeMode = 2
	BytecodeModeTest        BytecodeMode = 3 // both JIT and interpreter, compare results
	BytecodeModeOff         BytecodeMode = 4 // for query only, not settable
)

var bytecodeModeNames = [...]string{"auto", "jit", "interpreter", "test", "off"}

func (m BytecodeMode) Valid() bool {
	return m <= BytecodeModeOff
}

func (m BytecodeMode) String() string {
	if m.Valid() {
		return bytecodeModeNames[m]
	}
	return fmt.Sprintf("bytecode_mode(%d)", uint32(m))
}

func ParseBytecodeMode(s string) (BytecodeMode, error) {
	for i, name := range bytecodeModeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return BytecodeMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: bytecode mode %q", ErrValueOutOfRange, s)
}

// MsgLevel is the severity libclamav attaches to log messages. Values leave
// room for more levels between them.
type MsgLevel int32

const (
	MsgInfoVerbose MsgLevel = 32
	MsgWarn        MsgLevel = 64
	MsgError       MsgLevel = 128
)

func (l MsgLevel) String() string {
	switch l {
	case MsgInfoVerbose:
		return "info_verbose"
	case MsgWarn:
		return "warn"
	case MsgError:
		return "error"
	default:
		return fmt.Sprintf("cl_msg(%d)", int32(l))
	}
}

func flagNames[T ~uint32](mask uint32, table map[string]T) []string {
	type entry struct {
		name string
		bit  uint32
	}
	var set []entry
	for name, bit := range table {
		if b := uint32(bit); b != 0 && mask&b == b {
			set = append(set, entry{name, b})
		}
	}
	sort.Slice(set, func(i, j int) bool { return set[i].bit < set[j].bit })
	out := make([]string, len(set))
	for i, e := range set {
		out[i] = e.name
	}
	return out
}

func formatFlags[T ~uint32](mask uint32, table map[string]T) string {
	if mask == 0 {
		return "0"
	}
	names := flagNames(mask, table)
	var known uint32
	for _, n := range names {
		known |= uint32(table[n])
	}
	out := strings.Join(names, "|")
	if rest := mask &^ known; rest != 0 {
		if out != "" {
			out += "|"
		}
		out += fmt.Sprintf("0x%x", rest)
	}
	return out
}
