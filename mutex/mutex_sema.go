//go:build !windows && !linux && !nonativesync

package mutex

import "sync"

var _ backend = (*nativeMutex)(nil)

// nativeMutex delegates to the runtime's semaphore-backed mutex, which
// parks and wakes threads through the platform's native primitive (Mach
// semaphores on darwin, _umtx_op on FreeBSD). x/sys exposes no portable
// pthread wrapper without cgo, so the runtime mutex is the native
// delegation target on these systems.
type nativeMutex struct {
	mu sync.Mutex
}

func (n *nativeMutex) init() error { return nil }

func (n *nativeMutex) lock() { n.mu.Lock() }

func (n *nativeMutex) unlock() { n.mu.Unlock() }

func (n *nativeMutex) destroy() {}
