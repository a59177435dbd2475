//go:build !((darwin || freebsd || linux || windows) && (amd64 || arm64))

package invoke

import "errors"

// NativeCaller is not supported on this platform. Calling it invokes
// DefaultExitFn.
type NativeCaller struct{}

func (NativeCaller) Call(fn uintptr, args ...uintptr) uintptr {
	DefaultExitFn(errors.New("native calls are not supported on this platform"))
	return 0
}
