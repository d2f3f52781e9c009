package mutex

// backend is the minimal contract every platform variant satisfies. Exactly
// one concrete nativeMutex is compiled in per target; selection happens
// entirely through build tags, never at runtime.
type backend interface {
	init() error
	lock()
	unlock()
	destroy()
}
