// Package mutex provides a mutual-exclusion primitive backed by the host
// operating system's native synchronization facility.
//
// The backend is chosen at compile time: a Win32 mutex object on Windows, a
// futex on Linux, and the runtime's semaphore-backed mutex on other POSIX
// systems. Building with the nonativesync tag excludes every native backend;
// Init then fails deterministically and the mutex is unusable.
//
// A Mutex coordinates OS-level threads. It is non-reentrant and has no
// timeout or cancellation support. Wake order among blocked waiters is
// whatever the platform provides and is unspecified.
package mutex

import "fmt"

// Mutex is an exclusive-ownership lock wrapping a single native
// synchronization primitive for its entire lifetime. The zero value is
// uninitialized: call Init before any other operation. A Mutex must not be
// copied after Init; the backing native resource has single-owner semantics.
type Mutex struct {
	noCopy noCopy
	native nativeMutex
}

// Init prepares the native primitive backing m. It must be called exactly
// once per Mutex, before any other operation. The returned error matches
// ErrInitFailed when the platform call fails or when the build excludes
// native synchronization support.
func (m *Mutex) Init() error {
	if err := m.native.init(); err != nil {
		return fmt.Errorf("%w: %v", ErrInitFailed, err)
	}
	return nil
}

// Lock blocks the calling thread until m is free, then acquires it.
// Lock is not reentrant: a second Lock by the current holder deadlocks.
func (m *Mutex) Lock() {
	m.native.lock()
}

// Unlock releases m, allowing one blocked waiter to proceed. Calling Unlock
// without holding m violates the native primitive's contract and leaves the
// mutex in an undefined state; this is a caller obligation, not checked
// internally.
func (m *Mutex) Unlock() {
	m.native.unlock()
}

// Destroy releases the native resources backing m. Call it exactly once,
// after all locking activity has ceased. Any operation on m after Destroy,
// including a second Destroy, is undefined.
func (m *Mutex) Destroy() {
	m.native.destroy()
}

// Do runs fn while holding m. The lock is released when fn returns, on the
// panic path included.
func (m *Mutex) Do(fn func()) {
	m.Lock()
	defer m.Unlock()
	fn()
}

// noCopy triggers go vet's copylocks check on Mutex values.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
