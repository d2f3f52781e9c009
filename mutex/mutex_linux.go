//go:build linux && !nonativesync

package mutex

import (
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

var _ backend = (*nativeMutex)(nil)

const (
	futexUnlocked  = 0
	futexLocked    = 1
	futexContended = 2

	// FUTEX_WAIT/FUTEX_WAKE ORed with FUTEX_PRIVATE_FLAG (0x80), per
	// <linux/futex.h>; x/sys/unix does not export these operation codes.
	futexWaitPrivate = 0x80
	futexWakePrivate = 0x81
)

// nativeMutex is a futex-backed lock: an atomic state word for the
// uncontended path, FUTEX_WAIT/FUTEX_WAKE for sleeping and wakeup. The
// futex is the kernel primitive underneath pthread_mutex_t on Linux.
type nativeMutex struct {
	state uint32
}

func (n *nativeMutex) init() error {
	atomic.StoreUint32(&n.state, futexUnlocked)
	return nil
}

func (n *nativeMutex) lock() {
	if atomic.CompareAndSwapUint32(&n.state, futexUnlocked, futexLocked) {
		return
	}
	for atomic.SwapUint32(&n.state, futexContended) != futexUnlocked {
		futexWait(&n.state, futexContended)
	}
}

func (n *nativeMutex) unlock() {
	if atomic.SwapUint32(&n.state, futexUnlocked) == futexContended {
		futexWake(&n.state, 1)
	}
}

// destroy has no kernel object to release; the futex word is plain memory.
// Destroying while waiters are blocked is undefined, matching the
// pthread_mutex_destroy contract.
func (n *nativeMutex) destroy() {}

// futexWait sleeps until the word at addr changes from val. EINTR and a
// raced value change (EAGAIN) simply return to the caller's retry loop.
func futexWait(addr *uint32, val uint32) {
	_, _, _ = unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(futexWaitPrivate),
		uintptr(val), 0, 0, 0)
}

// futexWake wakes up to count threads blocked on addr.
func futexWake(addr *uint32, count uint32) {
	_, _, _ = unix.Syscall6(unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(futexWakePrivate),
		uintptr(count), 0, 0, 0)
}
