//go:build windows && !nonativesync

package mutex

import "golang.org/x/sys/windows"

var _ backend = (*nativeMutex)(nil)

// nativeMutex wraps an unnamed auto-reset event object, initially signaled.
// Acquiring consumes the signal, releasing restores it, and the kernel
// handles blocking and wakeup. An event is used rather than a Win32 mutex
// object because mutex-object ownership is per-thread, and a goroutine may
// migrate threads between lock and unlock.
type nativeMutex struct {
	handle windows.Handle
}

func (n *nativeMutex) init() error {
	h, err := windows.CreateEvent(nil, 0, 1, nil)
	if err != nil {
		return err
	}
	n.handle = h
	return nil
}

func (n *nativeMutex) lock() {
	_, _ = windows.WaitForSingleObject(n.handle, windows.INFINITE)
}

func (n *nativeMutex) unlock() {
	_ = windows.SetEvent(n.handle)
}

func (n *nativeMutex) destroy() {
	_ = windows.CloseHandle(n.handle)
	n.handle = 0
}
