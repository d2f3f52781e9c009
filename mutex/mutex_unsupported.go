//go:build nonativesync

package mutex

import "errors"

var _ backend = (*nativeMutex)(nil)

var errNoBackend = errors.New("native synchronization support excluded from build (nonativesync)")

// nativeMutex under nonativesync has no backing primitive. Init reports the
// configuration instead of degrading, and any use after a failed Init
// panics: a build without native synchronization must never pretend to
// provide mutual exclusion through a no-op lock path.
type nativeMutex struct{}

func (n *nativeMutex) init() error { return errNoBackend }

func (n *nativeMutex) lock() {
	panic("mutex: Lock on a build without native synchronization support")
}

func (n *nativeMutex) unlock() {
	panic("mutex: Unlock on a build without native synchronization support")
}

func (n *nativeMutex) destroy() {
	panic("mutex: Destroy on a build without native synchronization support")
}
