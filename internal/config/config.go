package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ffi-clamav/clamav-go/pkg/clamav"
)

const (
	DefaultConfigPath = "clamav.yml"

	envPrefix      = "CLAMAV_"
	envDBDir       = envPrefix + "DB_DIR"
	envDBOptions   = envPrefix + "DB_OPTIONS"
	envScanOptions = envPrefix + "SCAN_OPTIONS"
	envLogLevel    = envPrefix + "LOG_LEVEL"
	envDebug       = envPrefix + "DEBUG"
)

// Loader merges configuration coming from files, environment variables, and CLI flags.
type Loader struct {
	ConfigPath string
}

// RuntimeConfig contains the fully merged settings used by the CLI commands.
type RuntimeConfig struct {
	DBDir       string
	DBOptions   []string
	ScanOptions []string
	LogLevel    string
	Debug       bool
	Engine      EngineConfig
}

// EngineConfig holds an optional value per settable engine field. Nil
// fields keep the libclamav default.
type EngineConfig struct {
	MaxScanSize      *uint64        `yaml:"max_scansize"`
	MaxFileSize      *uint64        `yaml:"max_filesize"`
	MaxRecursion     *uint32        `yaml:"max_recursion"`
	MaxFiles         *uint32        `yaml:"max_files"`
	MinCCCount       *uint32        `yaml:"min_cc_count"`
	MinSSNCount      *uint32        `yaml:"min_ssn_count"`
	PUACategories    *string        `yaml:"pua_categories"`
	ACOnly           *uint32        `yaml:"ac_only"`
	ACMinDepth       *uint32        `yaml:"ac_mindepth"`
	ACMaxDepth       *uint32        `yaml:"ac_maxdepth"`
	TmpDir           *string        `yaml:"tmpdir"`
	KeepTmp          *bool          `yaml:"keeptmp"`
	BytecodeSecurity *string        `yaml:"bytecode_security"`
	BytecodeTimeout  *time.Duration `yaml:"bytecode_timeout"`
	BytecodeMode     *string        `yaml:"bytecode_mode"`
}

// Overrides captures values coming from the config file, env vars or CLI flags.
type Overrides struct {
	DBDir       string
	DBOptions   []string
	ScanOptions []string
	LogLevel    string
	Debug       *bool
	Engine      EngineConfig
}

// DefaultRuntimeConfig returns the baseline configuration when no overrides are provided.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBOptions:   []string{"stdopt"},
		ScanOptions: []string{"stdopt"},
		LogLevel:    "info",
	}
}

// Load resolves the final runtime configuration.
func (l Loader) Load(override Overrides) (RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()
	path := l.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}

	if fileExists(path) {
		fileOv, err := loadFromFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", path, err)
		}
		cfg.apply(fileOv)
	}

	envOv, err := overridesFromEnv()
	if err != nil {
		return cfg, err
	}
	cfg.apply(envOv)
	cfg.apply(override)

	return cfg, nil
}

// Validate checks option names and enumerated engine values without touching
// libclamav.
func (c RuntimeConfig) Validate() error {
	if _, err := c.DatabaseOptions(); err != nil {
		return err
	}
	if _, err := c.ScanMask(); err != nil {
		return err
	}
	if c.Engine.BytecodeSecurity != nil {
		if _, err := clamav.ParseBytecodeSecurity(*c.Engine.BytecodeSecurity); err != nil {
			return err
		}
	}
	if c.Engine.BytecodeMode != nil {
		if _, err := clamav.ParseBytecodeMode(*c.Engine.BytecodeMode); err != nil {
			return err
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log level must be debug, info, warn or error (got %q)", c.LogLevel)
	}
	return nil
}

// DatabaseOptions resolves the configured database option names.
func (c RuntimeConfig) DatabaseOptions() (clamav.DBOptions, error) {
	return clamav.ParseDBOptions(c.DBOptions)
}

// ScanMask resolves the configured scan option names.
func (c RuntimeConfig) ScanMask() (clamav.ScanOptions, error) {
	return clamav.ParseScanOptions(c.ScanOptions)
}

// ResolveDBDir returns the configured database directory, falling back to
// the one libclamav was built with.
func (c RuntimeConfig) ResolveDBDir() (string, error) {
	if c.DBDir != "" {
		return c.DBDir, nil
	}
	return clamav.DefaultDBDir()
}

func (c *RuntimeConfig) apply(src Overrides) {
	if src.DBDir != "" {
		c.DBDir = src.DBDir
	}

	if len(src.DBOptions) > 0 {
		c.DBOptions = cleanList(src.DBOptions)
	}

	if len(src.ScanOptions) > 0 {
		c.ScanOptions = cleanList(src.ScanOptions)
	}

	if src.LogLevel != "" {
		c.LogLevel = src.LogLevel
	}

	if src.Debug != nil {
		c.Debug = *src.Debug
	}

	c.Engine.merge(src.Engine)
}

func (e *EngineConfig) merge(src EngineConfig) {
	mergePtr(&e.MaxScanSize, src.MaxScanSize)
	mergePtr(&e.MaxFileSize, src.MaxFileSize)
	mergePtr(&e.MaxRecursion, src.MaxRecursion)
	mergePtr(&e.MaxFiles, src.MaxFiles)
	mergePtr(&e.MinCCCount, src.MinCCCount)
	mergePtr(&e.MinSSNCount, src.MinSSNCount)
	mergePtr(&e.PUACategories, src.PUACategories)
	mergePtr(&e.ACOnly, src.ACOnly)
	mergePtr(&e.ACMinDepth, src.ACMinDepth)
	mergePtr(&e.ACMaxDepth, src.ACMaxDepth)
	mergePtr(&e.TmpDir, src.TmpDir)
	mergePtr(&e.KeepTmp, src.KeepTmp)
	mergePtr(&e.BytecodeSecurity, src.BytecodeSecurity)
	mergePtr(&e.BytecodeTimeout, src.BytecodeTimeout)
	mergePtr(&e.BytecodeMode, src.BytecodeMode)
}

func mergePtr[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

func loadFromFile(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}

	type rawConfig struct {
		DBDir       string       `yaml:"dbDir"`
		DBOptions   optionList   `yaml:"dbOptions"`
		ScanOptions optionList   `yaml:"scanOptions"`
		LogLevel    string       `yaml:"logLevel"`
		Debug       *bool        `yaml:"debug"`
		Engine      EngineConfig `yaml:"engine"`
	}

	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Overrides{}, err
	}

	return Overrides{
		DBDir:       raw.DBDir,
		DBOptions:   raw.DBOptions,
		ScanOptions: raw.ScanOptions,
		LogLevel:    raw.LogLevel,
		Debug:       raw.Debug,
		Engine:      raw.Engine,
	}, nil
}

func overridesFromEnv() (Overrides, error) {
	ov := Overrides{}

	if value := os.Getenv(envDBDir); value != "" {
		ov.DBDir = value
	}

	if value := os.Getenv(envDBOptions); value != "" {
		ov.DBOptions = ParseOptionList(value)
	}

	if value := os.Getenv(envScanOptions); value != "" {
		ov.ScanOptions = ParseOptionList(value)
	}

	if value := os.Getenv(envLogLevel); value != "" {
		ov.LogLevel = value
	}

	if value := os.Getenv(envDebug); value != "" {
		parsed, err := parseBool(value)
		if err != nil {
			return ov, fmt.Errorf("%s: %w", envDebug, err)
		}
		ov.Debug = &parsed
	}

	eng, err := engineFromEnv()
	if err != nil {
		return ov, err
	}
	ov.Engine = eng
	return ov, nil
}

// engineFromEnv reads CLAMAV_<FIELD> for every settable engine field, for
// example CLAMAV_MAX_FILES or CLAMAV_BYTECODE_TIMEOUT.
func engineFromEnv() (EngineConfig, error) {
	var e EngineConfig
	var firstErr error
	lookup := func(f clamav.Field) (string, bool) {
		v := os.Getenv(EnvName(f))
		return v, v != ""
	}
	u64 := func(f clamav.Field, dst **uint64) {
		if v, ok := lookup(f); ok && firstErr == nil {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				firstErr = fmt.Errorf("%s: %w", EnvName(f), err)
				return
			}
			*dst = &n
		}
	}
	u32 := func(f clamav.Field, dst **uint32) {
		if v, ok := lookup(f); ok && firstErr == nil {
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				firstErr = fmt.Errorf("%s: %w", EnvName(f), err)
				return
			}
			n32 := uint32(n)
			*dst = &n32
		}
	}
	str := func(f clamav.Field, dst **string) {
		if v, ok := lookup(f); ok {
			*dst = &v
		}
	}

	u64(clamav.FieldMaxScanSize, &e.MaxScanSize)
	u64(clamav.FieldMaxFileSize, &e.MaxFileSize)
	u32(clamav.FieldMaxRecursion, &e.MaxRecursion)
	u32(clamav.FieldMaxFiles, &e.MaxFiles)
	u32(clamav.FieldMinCCCount, &e.MinCCCount)
	u32(clamav.FieldMinSSNCount, &e.MinSSNCount)
	str(clamav.FieldPUACategories, &e.PUACategories)
	u32(clamav.FieldACOnly, &e.ACOnly)
	u32(clamav.FieldACMinDepth, &e.ACMinDepth)
	u32(clamav.FieldACMaxDepth, &e.ACMaxDepth)
	str(clamav.FieldTmpDir, &e.TmpDir)
	if v, ok := lookup(clamav.FieldKeepTmp); ok && firstErr == nil {
		b, err := parseBool(v)
		if err != nil {
			firstErr = fmt.Errorf("%s: %w", EnvName(clamav.FieldKeepTmp), err)
		} else {
			e.KeepTmp = &b
		}
	}
	str(clamav.FieldBytecodeSecurity, &e.BytecodeSecurity)
	if v, ok := lookup(clamav.FieldBytecodeTimeout); ok && firstErr == nil {
		d, err := time.ParseDuration(v)
		if err != nil {
			firstErr = fmt.Errorf("%s: %w", EnvName(clamav.FieldBytecodeTimeout), err)
		} else {
			e.BytecodeTimeout = &d
		}
	}
	str(clamav.FieldBytecodeMode, &e.BytecodeMode)

	return e, firstErr
}

// EnvName is the environment variable that overrides f.
func EnvName(f clamav.Field) string {
	return envPrefix + strings.ToUpper(f.String())
}

// ParseOptionList splits comma or whitespace separated option names.
func ParseOptionList(input string) []string {
	return cleanList(strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\n' || r == '\r' || r == '\t'
	}))
}

func parseBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", value)
}

func cleanList(values []string) []string {
	var out []string
	for _, v := range values {
		candidate := strings.TrimSpace(v)
		if candidate != "" {
			out = append(out, candidate)
		}
	}
	return out
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// optionList enables YAML fields that can be specified as a scalar or sequence.
type optionList []string

func (o *optionList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var out []string
		for _, node := range value.Content {
			out = append(out, strings.TrimSpace(node.Value))
		}
		*o = cleanList(out)
	case yaml.ScalarNode:
		*o = ParseOptionList(value.Value)
	default:
		return fmt.Errorf("unsupported YAML type for option list")
	}
	return nil
}
