package mutex

import "errors"

var (
	// ErrInitFailed indicates the native synchronization primitive could not
	// be prepared: either the underlying platform call failed, or the build
	// excludes native synchronization support (nonativesync build tag).
	ErrInitFailed = errors.New("mutex: initialization failed")
)
