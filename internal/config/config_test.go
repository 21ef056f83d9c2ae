package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ffi-clamav/clamav-go/pkg/clamav"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DefaultConfigPath)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoaderDefaults(t *testing.T) {
	t.Setenv(envDBDir, "")
	loader := Loader{ConfigPath: filepath.Join(t.TempDir(), "missing.yml")}
	cfg, err := loader.Load(Overrides{})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultRuntimeConfig(), cfg)
	db, err := cfg.DatabaseOptions()
	require.NoError(t, err)
	assert.Equal(t, clamav.DBStdOpt, db)
	scan, err := cfg.ScanMask()
	require.NoError(t, err)
	assert.Equal(t, clamav.ScanStdOpt, scan)
}

func TestLoaderLoadWithFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
dbDir: /srv/clamav
dbOptions: stdopt, pua
scanOptions:
  - archive
  - pdf
logLevel: debug
engine:
  max_files: 5000
  max_scansize: 209715200
  tmpdir: /var/tmp
  keeptmp: true
  bytecode_timeout: 2s
  bytecode_mode: interpreter
`)

	t.Setenv(EnvName(clamav.FieldMaxFiles), "7000")
	t.Setenv(envScanOptions, "raw")

	cfg, err := Loader{ConfigPath: path}.Load(Overrides{})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "/srv/clamav", cfg.DBDir)
	assert.Equal(t, []string{"stdopt", "pua"}, cfg.DBOptions)
	assert.Equal(t, []string{"raw"}, cfg.ScanOptions)
	assert.Equal(t, "debug", cfg.LogLevel)

	e := cfg.Engine
	require.NotNil(t, e.MaxFiles)
	assert.Equal(t, uint32(7000), *e.MaxFiles)
	require.NotNil(t, e.MaxScanSize)
	assert.Equal(t, uint64(200*1024*1024), *e.MaxScanSize)
	require.NotNil(t, e.TmpDir)
	assert.Equal(t, "/var/tmp", *e.TmpDir)
	require.NotNil(t, e.KeepTmp)
	assert.True(t, *e.KeepTmp)
	require.NotNil(t, e.BytecodeTimeout)
	assert.Equal(t, 2*time.Second, *e.BytecodeTimeout)
	assert.Nil(t, e.MaxRecursion)
}

func TestOverridesWinOverEnv(t *testing.T) {
	t.Setenv(envDBDir, "/from/env")
	t.Setenv(EnvName(clamav.FieldBytecodeTimeout), "5s")

	limit := uint32(3)
	debug := true
	cfg, err := Loader{ConfigPath: filepath.Join(t.TempDir(), "none.yml")}.Load(Overrides{
		DBDir:  "/from/flag",
		Debug:  &debug,
		Engine: EngineConfig{MaxRecursion: &limit},
	})
	require.NoError(t, err)

	assert.Equal(t, "/from/flag", cfg.DBDir)
	assert.True(t, cfg.Debug)
	require.NotNil(t, cfg.Engine.MaxRecursion)
	assert.Equal(t, uint32(3), *cfg.Engine.MaxRecursion)
	require.NotNil(t, cfg.Engine.BytecodeTimeout)
	assert.Equal(t, 5*time.Second, *cfg.Engine.BytecodeTimeout)

	limit = 9
	assert.Equal(t, uint32(3), *cfg.Engine.MaxRecursion, "merge must copy values")
}

func TestLoaderRejectsBadEnv(t *testing.T) {
	t.Setenv(EnvName(clamav.FieldMaxFiles), "lots")
	_, err := Loader{ConfigPath: filepath.Join(t.TempDir(), "none.yml")}.Load(Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLAMAV_MAX_FILES")
}

func TestLoaderRejectsBadBoolEnv(t *testing.T) {
	t.Setenv(EnvName(clamav.FieldKeepTmp), "ture")
	_, err := Loader{ConfigPath: filepath.Join(t.TempDir(), "none.yml")}.Load(Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLAMAV_KEEPTMP")

	t.Setenv(EnvName(clamav.FieldKeepTmp), "")
	t.Setenv("CLAMAV_DEBUG", "maybe")
	_, err = Loader{ConfigPath: filepath.Join(t.TempDir(), "none.yml")}.Load(Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLAMAV_DEBUG")
}

func TestParseBool(t *testing.T) {
	for _, v := range []string{"true", "TRUE", "1", "yes", "on"} {
		b, err := parseBool(v)
		require.NoError(t, err, v)
		assert.True(t, b, v)
	}
	for _, v := range []string{"false", "0", "No", "off"} {
		b, err := parseBool(v)
		require.NoError(t, err, v)
		assert.False(t, b, v)
	}
	_, err := parseBool("ture")
	assert.Error(t, err)
}

func TestLoaderRejectsBadYAML(t *testing.T) {
	path := writeConfig(t, "engine:\n  max_files: [1, 2]\n")
	_, err := Loader{ConfigPath: path}.Load(Overrides{})
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	cfg.DBOptions = []string{"everything"}
	assert.Error(t, cfg.Validate())

	cfg = DefaultRuntimeConfig()
	mode := "turbo"
	cfg.Engine.BytecodeMode = &mode
	assert.ErrorIs(t, cfg.Validate(), clamav.ErrValueOutOfRange)

	cfg = DefaultRuntimeConfig()
	cfg.LogLevel = "loud"
	assert.Error(t, cfg.Validate())
}

func TestEnvName(t *testing.T) {
	assert.Equal(t, "CLAMAV_BYTECODE_SECURITY", EnvName(clamav.FieldBytecodeSecurity))
	assert.Equal(t, "CLAMAV_TMPDIR", EnvName(clamav.FieldTmpDir))
}

func TestParseOptionList(t *testing.T) {
	assert.Equal(t, []string{"archive", "pdf", "elf"}, ParseOptionList("archive, pdf\nelf"))
	assert.Nil(t, ParseOptionList("  "))
}

func TestApplyOnClosedEngineStopsAtFirstField(t *testing.T) {
	limit := uint32(4)
	mode := "jit"
	cfg := EngineConfig{MaxRecursion: &limit, BytecodeMode: &mode}

	err := cfg.Apply(&clamav.Engine{})
	require.Error(t, err)
	assert.ErrorIs(t, err, clamav.ErrClosed)
	assert.Contains(t, err.Error(), "max_recursion")
}

func TestApplyRejectsBadEnumBeforeNative(t *testing.T) {
	sec := "trust_everyone"
	err := EngineConfig{BytecodeSecurity: &sec}.Apply(&clamav.Engine{})
	assert.ErrorIs(t, err, clamav.ErrValueOutOfRange)
}
