package clamav

import (
	"fmt"
	"strings"
)

// Field selects one tunable engine field (enum cl_engine_field). The numeric
// values are fixed by libclamav.
type Field uint32

const (
	FieldMaxScanSize      Field = iota // uint64_t
	FieldMaxFileSize                   // uint64_t
	FieldMaxRecursion                  // uint32_t
	FieldMaxFiles                      // uint32_t
	FieldMinCCCount                    // uint32_t
	FieldMinSSNCount                   // uint32_t
	FieldPUACategories                 // (char *)
	FieldDBOptions                     // uint32_t
	FieldDBVersion                     // uint32_t
	FieldDBTime                        // time_t
	FieldACOnly                        // uint32_t
	FieldACMinDepth                    // uint32_t
	FieldACMaxDepth                    // uint32_t
	FieldTmpDir                        // (char *)
	FieldKeepTmp                       // uint32_t
	FieldBytecodeSecurity              // uint32_t
	FieldBytecodeTimeout               // uint32_t
	FieldBytecodeMode                  // uint32_t

	fieldCount
)

// Kind is the native accessor family a field goes through.
type Kind int

const (
	KindNumber Kind = iota
	KindString
)

func (k Kind) String() string {
	if k == KindString {
		return "string"
	}
	return "number"
}

// valueType is the Go type a field is exposed as.
type valueType int

const (
	typeUint64 valueType = iota
	typeUint32
	typeTime
	typeBool
	typeString
	typeDBOptions
	typeSecurity
	typeMode
	typeMillis
)

type fieldDesc struct {
	name     string
	typ      valueType
	readOnly bool
}

var fieldTable = [fieldCount]fieldDesc{
	FieldMaxScanSize:      {name: "max_scansize", typ: typeUint64},
	FieldMaxFileSize:      {name: "max_filesize", typ: typeUint64},
	FieldMaxRecursion:     {name: "max_recursion", typ: typeUint32},
	FieldMaxFiles:         {name: "max_files", typ: typeUint32},
	FieldMinCCCount:       {name: "min_cc_count", typ: typeUint32},
	FieldMinSSNCount:      {name: "min_ssn_count", typ: typeUint32},
	FieldPUACategories:    {name: "pua_categories", typ: typeString},
	FieldDBOptions:        {name: "db_options", typ: typeDBOptions, readOnly: true},
	FieldDBVersion:        {name: "db_version", typ: typeUint32, readOnly: true},
	FieldDBTime:           {name: "db_time", typ: typeTime, readOnly: true},
	FieldACOnly:           {name: "ac_only", typ: typeUint32},
	FieldACMinDepth:       {name: "ac_mindepth", typ: typeUint32},
	FieldACMaxDepth:       {name: "ac_maxdepth", typ: typeUint32},
	FieldTmpDir:           {name: "tmpdir", typ: typeString},
	FieldKeepTmp:          {name: "keeptmp", typ: typeBool},
	FieldBytecodeSecurity: {name: "bytecode_security", typ: typeSecurity},
	FieldBytecodeTimeout:  {name: "bytecode_timeout", typ: typeMillis},
	FieldBytecodeMode:     {name: "bytecode_mode", typ: typeMode},
}

// Fields lists every engine field in selector order.
func Fields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// ParseField looks a field up by its libclamav name, e.g. "max_scansize".
func ParseField(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, d := range fieldTable {
		if d.name == name {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
}

func (f Field) Valid() bool {
	return f < fieldCount
}

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("cl_engine_field(%d)", uint32(f))
	}
	return fieldTable[f].name
}

// Kind reports whether the field is read and written as a number or a string.
func (f Field) Kind() Kind {
	if f.Valid() && fieldTable[f].typ == typeString {
		return KindString
	}
	return KindNumber
}

// ReadOnly reports fields libclamav refuses to set. db_options, db_version
// and db_time only change through Load and ApplySettings.
func (f Field) ReadOnly() bool {
	return f.Valid() && fieldTable[f].readOnly
}

func (f Field) desc() (fieldDesc, error) {
	if !f.Valid() {
		return fieldDesc{}, fmt.Errorf("%w: %d", ErrUnknownField, uint32(f))
	}
	return fieldTable[f], nil
}

// FieldValues holds one value per field as returned by Engine.Get.
type FieldValues map[Field]any
