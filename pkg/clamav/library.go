package clamav

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ffi-clamav/clamav-go/pkg/clamav/internal/backend"
)

var (
	initOnce sync.Once
	initErr  error
)

// Init performs the process-wide libclamav initialisation. It runs at most
// once; later calls return the first result. NewEngine calls it implicitly.
func Init() error {
	initOnce.Do(func() {
		if initErr = requireBuilt(); initErr != nil {
			return
		}
		backend.SetMessageHandler(dispatchMessage)
		initErr = Wrap(func() Code { return Code(backend.Init(0)) })
		if initErr == nil {
			currentLogger().Debug(context.Background(), "libclamav initialised", "version", backend.RetVer(), "flevel", backend.RetFLevel())
		}
	})
	return initErr
}

// DefaultDBDir returns the database directory libclamav was compiled with.
func DefaultDBDir() (string, error) {
	if err := requireBuilt(); err != nil {
		return "", err
	}
	return backend.RetDBDir(), nil
}

// CountSigs counts the signatures in a database file or directory without
// loading them into an engine.
func CountSigs(path string, opts CountSigsOptions) (uint32, error) {
	if err := Init(); err != nil {
		return 0, err
	}
	n, err := WrapValue(func() (uint32, Code) {
		n, rc := backend.CountSigs(path, uint32(opts))
		return n, Code(rc)
	})
	if err != nil {
		return 0, fmt.Errorf("countsigs %s: %w", path, err)
	}
	return n, nil
}

// VerifyCVD checks the digital signature and integrity of a .cvd file.
func VerifyCVD(path string) error {
	if err := Init(); err != nil {
		return err
	}
	if err := Wrap(func() Code { return Code(backend.CVDVerify(path)) }); err != nil {
		return fmt.Errorf("verify %s: %w", path, err)
	}
	return nil
}

// CVDInfo is the header of a ClamAV virus database container.
type CVDInfo struct {
	Time    string
	Version uint32
	Sigs    uint32
	FLevel  uint32
	MD5     string
	DSig    string
	Builder string
	// STime is the build time as recorded in seconds since the epoch.
	STime time.Time
}

// ReadCVDHeader reads and parses the header of the .cvd file at path.
func ReadCVDHeader(path string) (*CVDInfo, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	cvd, ok := backend.CVDHead(path)
	if !ok {
		return nil, fmt.Errorf("read header %s: %w", path, NewError(CodeECVD))
	}
	return cvdInfo(cvd), nil
}

// ParseCVDHeader parses a raw 512 byte header line.
func ParseCVDHeader(head string) (*CVDInfo, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	cvd, ok := backend.CVDParse(head)
	if !ok {
		return nil, NewError(CodeECVD)
	}
	return cvdInfo(cvd), nil
}

func cvdInfo(c *backend.CVD) *CVDInfo {
	return &CVDInfo{
		Time:    c.Time,
		Version: c.Version,
		Sigs:    c.Sigs,
		FLevel:  c.FLevel,
		MD5:     c.MD5,
		DSig:    c.DSig,
		Builder: c.Builder,
		STime:   time.Unix(int64(c.STime), 0),
	}
}

// EnableDebug turns on libclamav's debug messages. They are delivered at
// MsgDebug level through the message handler or the package logger.
func EnableDebug() {
	backend.Debug()
}
