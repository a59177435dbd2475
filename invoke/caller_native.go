//go:build (darwin || freebsd || linux || windows) && (amd64 || arm64)

package invoke

import "github.com/ebitengine/purego"

// NativeCaller calls functions in the current process using purego.
type NativeCaller struct{}

func (NativeCaller) Call(fn uintptr, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}
