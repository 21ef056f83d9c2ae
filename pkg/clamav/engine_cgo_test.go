//go:build cgo && !windows

package clamav

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffi-clamav/clamav-go/pkg/clamav/internal/backend"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine()
	require.NoError(t, err)
	t.Cleanup(func() { _ = e.Close() })
	return e
}

// testDBDir returns a directory with signature databases, skipping the test
// when none is available.
func testDBDir(t *testing.T) string {
	t.Helper()
	dir := os.Getenv("CLAMAV_DB_DIR")
	if dir == "" {
		dir, _ = DefaultDBDir()
	}
	for _, pattern := range []string{"*.cvd", "*.cld"} {
		if m, _ := filepath.Glob(filepath.Join(dir, pattern)); len(m) > 0 {
			return dir
		}
	}
	t.Skipf("no signature database found in %q; set CLAMAV_DB_DIR", dir)
	return ""
}

func TestEngineDefaults(t *testing.T) {
	e := newTestEngine(t)

	values, err := e.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, uint64(100*1024*1024), values[FieldMaxScanSize])
	assert.Equal(t, uint64(25*1024*1024), values[FieldMaxFileSize])
	assert.Equal(t, uint32(16), values[FieldMaxRecursion])
	assert.Equal(t, uint32(10000), values[FieldMaxFiles])
	assert.Equal(t, uint32(3), values[FieldMinCCCount])
	assert.Equal(t, uint32(3), values[FieldMinSSNCount])
	assert.Equal(t, NewOptionalStringUnset(), values[FieldPUACategories])
	assert.Equal(t, DBOptions(0), values[FieldDBOptions])
	assert.Equal(t, uint32(0), values[FieldDBVersion])
	assert.True(t, values[FieldDBTime].(time.Time).Equal(time.Unix(0, 0)))
	assert.Equal(t, uint32(0), values[FieldACOnly])
	assert.Equal(t, uint32(2), values[FieldACMinDepth])
	assert.Equal(t, uint32(3), values[FieldACMaxDepth])
	assert.Equal(t, NewOptionalStringUnset(), values[FieldTmpDir])
	assert.Equal(t, false, values[FieldKeepTmp])
	assert.Equal(t, BytecodeTrustSigned, values[FieldBytecodeSecurity])
	assert.Equal(t, 60*time.Second, values[FieldBytecodeTimeout])
	assert.Equal(t, BytecodeModeAuto, values[FieldBytecodeMode])
}

// settableValues holds a non-default value for every field libclamav lets a
// caller set, keyed by field and typed as Get returns it.
func settableValues(t *testing.T) map[Field]any {
	return map[Field]any{
		FieldMaxScanSize:      uint64(1 << 33),
		FieldMaxFileSize:      uint64(64 << 20),
		FieldMaxRecursion:     uint32(8),
		FieldMaxFiles:         uint32(5000),
		FieldMinCCCount:       uint32(5),
		FieldMinSSNCount:      uint32(7),
		FieldPUACategories:    NewOptionalStringSet("Spy"),
		FieldACOnly:           uint32(1),
		FieldACMinDepth:       uint32(3),
		FieldACMaxDepth:       uint32(5),
		FieldTmpDir:           NewOptionalStringSet(t.TempDir()),
		FieldKeepTmp:          true,
		FieldBytecodeSecurity: BytecodeTrustNothing,
		FieldBytecodeTimeout:  1500 * time.Millisecond,
		FieldBytecodeMode:     BytecodeModeInterpreter,
	}
}

// setTyped stores want through the field's typed setter and returns what the
// setter reports as stored, in the shape Get uses.
func setTyped(e *Engine, f Field, want any) (any, error) {
	switch f {
	case FieldMaxScanSize:
		return e.SetMaxScanSize(want.(uint64))
	case FieldMaxFileSize:
		return e.SetMaxFileSize(want.(uint64))
	case FieldMaxRecursion:
		return e.SetMaxRecursion(want.(uint32))
	case FieldMaxFiles:
		return e.SetMaxFiles(want.(uint32))
	case FieldMinCCCount:
		return e.SetMinCCCount(want.(uint32))
	case FieldMinSSNCount:
		return e.SetMinSSNCount(want.(uint32))
	case FieldPUACategories:
		v, err := e.SetPUACategories(want.(OptionalString).String())
		return NewOptionalStringSet(v), err
	case FieldACOnly:
		return e.SetACOnly(want.(uint32))
	case FieldACMinDepth:
		return e.SetACMinDepth(want.(uint32))
	case FieldACMaxDepth:
		return e.SetACMaxDepth(want.(uint32))
	case FieldTmpDir:
		v, err := e.SetTmpDir(want.(OptionalString).String())
		return NewOptionalStringSet(v), err
	case FieldKeepTmp:
		return e.SetKeepTmp(want.(bool))
	case FieldBytecodeSecurity:
		return e.SetBytecodeSecurity(want.(BytecodeSecurity))
	case FieldBytecodeTimeout:
		return e.SetBytecodeTimeout(want.(time.Duration))
	case FieldBytecodeMode:
		return e.SetBytecodeMode(want.(BytecodeMode))
	}
	return nil, ErrUnknownField
}

func TestEngineTypedRoundTrip(t *testing.T) {
	values := settableValues(t)
	for _, f := range Fields() {
		want, ok := values[f]
		if !ok {
			assert.True(t, f.ReadOnly(), "%s has no round-trip value", f)
			continue
		}
		t.Run(f.String(), func(t *testing.T) {
			e := newTestEngine(t)

			stored, err := setTyped(e, f, want)
			require.NoError(t, err)
			assert.Equal(t, want, stored)

			got, err := e.Get(f)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEngineGenericRoundTrip(t *testing.T) {
	for f, want := range settableValues(t) {
		t.Run(f.String(), func(t *testing.T) {
			e := newTestEngine(t)

			in := want
			if o, ok := want.(OptionalString); ok {
				in = o.String()
			}
			require.NoError(t, e.Set(f, in))
			got, err := e.Get(f)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestEngineSettingTransfer(t *testing.T) {
	src := newTestEngine(t)
	dst := newTestEngine(t)

	for f, want := range settableValues(t) {
		_, err := setTyped(src, f, want)
		require.NoError(t, err, f.String())
	}

	s, err := src.Settings()
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, dst.ApplySettings(s))

	want, err := src.Snapshot()
	require.NoError(t, err)
	got, err := dst.Snapshot()
	require.NoError(t, err)
	for _, f := range Fields() {
		assert.Equal(t, want[f], got[f], f.String())
	}

	require.NoError(t, s.Close())
	assert.ErrorIs(t, dst.ApplySettings(s), ErrClosed)
}

func TestEngineReadOnlyFieldsRejected(t *testing.T) {
	e := newTestEngine(t)

	for _, f := range []Field{FieldDBOptions, FieldDBVersion, FieldDBTime} {
		require.True(t, f.ReadOnly(), f.String())
	}

	_, err := e.SetDBOptions(DBStdOpt)
	assert.True(t, IsCode(err, CodeEArg), "%v", err)
	opts, err := e.DBOptions()
	require.NoError(t, err)
	assert.Equal(t, DBOptions(0), opts)

	err = e.Set(FieldDBVersion, 1)
	assert.True(t, IsCode(err, CodeEArg), "%v", err)
}

func TestEngineCloseIsIdempotent(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)

	copied := *e
	require.NoError(t, e.Close())
	require.NoError(t, copied.Close())
	assert.True(t, e.Closed())

	_, err = e.MaxFiles()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestEngineAdopt(t *testing.T) {
	require.NoError(t, Init())
	ptr := backend.EngineNew()
	require.NotNil(t, ptr)

	e, err := AdoptEngine(ptr)
	require.NoError(t, err)
	require.NoError(t, Wrap(func() Code { return Code(backend.EngineAddref(ptr)) }))

	// The extra reference keeps the engine alive for one more free.
	require.NoError(t, e.Close())
	require.NoError(t, nativeErr(backend.EngineFree(ptr)))

	_, err = AdoptEngine(nil)
	assert.ErrorIs(t, err, ErrAllocationFailed)
}

func TestCompileEmptyEngine(t *testing.T) {
	e := newTestEngine(t)
	require.NoError(t, e.Compile())
}

func TestLoadMissingPath(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Load(filepath.Join(t.TempDir(), "missing"), DBStdOpt)
	require.Error(t, err)
	assert.Equal(t, CategoryIO, func() Category { c, _ := CodeOf(err); return c.Category() }())
}

func TestLoadCompileScan(t *testing.T) {
	dir := testDBDir(t)
	e := newTestEngine(t)

	require.NoError(t, e.SetSigLoadHook(func(kind, name string) bool {
		return name == "Eicar-Test-Signature"
	}))

	sigs, err := e.Load(dir, DBStdOpt)
	require.NoError(t, err)
	assert.Positive(t, sigs)
	require.NoError(t, e.Compile())

	version, err := e.DBVersion()
	require.NoError(t, err)
	assert.Positive(t, version)

	clean := filepath.Join(t.TempDir(), "clean.txt")
	require.NoError(t, os.WriteFile(clean, []byte("hello"), 0o600))

	var pre int
	require.NoError(t, e.SetPreScanHook(func(int) Code { pre++; return CodeClean }))
	v, err := e.ScanFile(clean, ScanStdOpt)
	require.NoError(t, err)
	assert.False(t, v.Infected)
	assert.Equal(t, 1, pre)
}

func TestHeaderConstantsMatch(t *testing.T) {
	c := backend.HeaderConstants()

	for _, code := range append(Codes(), CodeELastError) {
		assert.EqualValues(t, c[code.String()], code, code.String())
	}
	for _, f := range Fields() {
		assert.Contains(t, c, "CL_ENGINE_"+strings.ToUpper(f.String()))
		assert.EqualValues(t, c["CL_ENGINE_"+strings.ToUpper(f.String())], f, f.String())
	}
	for name, flag := range dbOptionNames {
		assert.EqualValues(t, c["CL_DB_"+strings.ToUpper(name)], flag, name)
	}
	for name, flag := range scanOptionNames {
		assert.EqualValues(t, c["CL_SCAN_"+strings.ToUpper(name)], flag, name)
	}
	assert.EqualValues(t, c["CL_DB_STDOPT"], DBStdOpt)
	assert.EqualValues(t, c["CL_SCAN_STDOPT"], ScanStdOpt)
	assert.EqualValues(t, c["CL_COUNTSIGS_ALL"], CountSigsAll)
	assert.EqualValues(t, c["CL_BYTECODE_MODE_OFF"], BytecodeModeOff)
	assert.EqualValues(t, c["CL_BYTECODE_TRUST_NOTHING"], BytecodeTrustNothing)
	assert.EqualValues(t, c["CL_MSG_ERROR"], MsgError)
	assert.EqualValues(t, c["CL_COUNT_PRECISION"], backend.CountPrecision)
}

func TestLibraryInfo(t *testing.T) {
	require.NoError(t, Init())
	require.NoError(t, Init())
	assert.NotEmpty(t, Version())
	assert.Positive(t, FLevel())
	dir, err := DefaultDBDir()
	require.NoError(t, err)
	assert.NotEmpty(t, dir)
}

func TestWatchDBDir(t *testing.T) {
	dir := t.TempDir()
	st, err := WatchDBDir(dir)
	require.NoError(t, err)
	defer st.Close()

	changed, err := st.Changed()
	require.NoError(t, err)
	assert.False(t, changed)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "local.hdb"), []byte("44d88612fea8a8f36de82e1278abb02f:68:Eicar-Test-Signature\n"), 0o600))
	changed, err = st.Changed()
	require.NoError(t, err)
	assert.True(t, changed)

	require.NoError(t, st.Close())
	require.NoError(t, st.Close())
}

func TestCountSigsLocalDB(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "local.hdb")
	require.NoError(t, os.WriteFile(db, []byte("44d88612fea8a8f36de82e1278abb02f:68:Eicar-Test-Signature\n"), 0o600))

	n, err := CountSigs(dir, CountSigsAll)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), n)
}

// helloEngine returns a compiled engine whose only signature matches the
// five bytes "hello", and an open descriptor holding them.
func helloEngine(t *testing.T) (*Engine, int) {
	t.Helper()
	dir := t.TempDir()
	db := filepath.Join(dir, "local.hdb")
	require.NoError(t, os.WriteFile(db, []byte("5d41402abc4b2a76b9719d911017c592:5:Test.Hello\n"), 0o600))

	e := newTestEngine(t)
	sigs, err := e.Load(dir, DBStdOpt)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), sigs)
	require.NoError(t, e.Compile())

	target := filepath.Join(t.TempDir(), "hello.txt")
	require.NoError(t, os.WriteFile(target, []byte("hello"), 0o600))
	f, err := os.Open(target)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return e, int(f.Fd())
}

func TestScanLocalHashSignature(t *testing.T) {
	e, fd := helloEngine(t)

	var post []string
	require.NoError(t, e.SetPostScanHook(func(fd int, result Code, virus string) Code {
		if result == CodeVirus {
			post = append(post, virus)
		}
		return CodeClean
	}))

	v, err := e.ScanDescriptor(fd, ScanStdOpt)
	require.NoError(t, err)
	assert.True(t, v.Infected)
	assert.Contains(t, v.Virus, "Test.Hello")
	assert.Contains(t, post, v.Virus)
}

func TestPostScanHookWhitelists(t *testing.T) {
	e, fd := helloEngine(t)

	require.NoError(t, e.SetPostScanHook(func(fd int, result Code, virus string) Code {
		if result == CodeVirus {
			return CodeBreak
		}
		return CodeClean
	}))

	v, err := e.ScanDescriptor(fd, ScanStdOpt)
	require.NoError(t, err)
	assert.False(t, v.Infected)
	assert.Empty(t, v.Virus)
}

func TestPostScanHookPanicKeepsDetection(t *testing.T) {
	e, fd := helloEngine(t)

	require.NoError(t, e.SetPostScanHook(func(int, Code, string) Code {
		panic("hook failure")
	}))

	v, err := e.ScanDescriptor(fd, ScanStdOpt)
	require.NoError(t, err)
	assert.True(t, v.Infected)
	assert.Contains(t, v.Virus, "Test.Hello")
}
