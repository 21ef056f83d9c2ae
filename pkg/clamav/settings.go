package clamav

import "unsafe"

// Settings is a detached copy of an engine's configuration, obtained from
// Engine.Settings and consumed by Engine.ApplySettings. It has no accessors
// of its own.
type Settings struct {
	own *owner
}

func newSettings(ptr unsafe.Pointer) *Settings {
	return &Settings{own: newOwner(ptr, releaseSettings)}
}

// Close frees the native snapshot. It is safe to call more than once.
func (s *Settings) Close() error {
	if s == nil {
		return nil
	}
	return s.own.close()
}

// Closed reports whether Close has already run.
func (s *Settings) Closed() bool {
	return s == nil || s.own.closed()
}
