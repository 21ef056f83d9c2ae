package clamav

import (
	"fmt"
	"unsafe"

	"github.com/ffi-clamav/clamav-go/pkg/clamav/internal/backend"
)

// DirStat records the state of a database directory so that updates can be
// detected and engines reloaded.
type DirStat struct {
	dir string
	own *owner
}

// WatchDBDir snapshots the database files in dir.
func WatchDBDir(dir string) (*DirStat, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	st, rc := backend.StatIniDir(dir)
	if err := nativeErr(rc); err != nil {
		return nil, fmt.Errorf("stat %s: %w", dir, err)
	}
	if st == nil {
		return nil, ErrAllocationFailed
	}
	return &DirStat{dir: dir, own: newOwner(st, releaseStat)}, nil
}

// Dir returns the watched directory.
func (d *DirStat) Dir() string { return d.dir }

// Changed reports whether any database file was added, removed or modified
// since the snapshot was taken.
func (d *DirStat) Changed() (bool, error) {
	var changed bool
	err := d.handle().use(func(p unsafe.Pointer) error {
		switch rc := backend.StatChkDir(p); rc {
		case 0:
			changed = false
		case 1:
			changed = true
		default:
			return fmt.Errorf("stat %s: %w", d.dir, nativeErr(rc))
		}
		return nil
	})
	return changed, err
}

// Close frees the snapshot. It is safe to call more than once.
func (d *DirStat) Close() error {
	if d == nil {
		return nil
	}
	return d.own.close()
}

func (d *DirStat) handle() *owner {
	if d == nil {
		return nil
	}
	return d.own
}
