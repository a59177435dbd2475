package invoke

// Caller calls the native function at fn with the C calling convention
// of the current platform. Each argument is passed as an integer or
// pointer register value, and the function's integer return register
// is returned.
type Caller interface {
	Call(fn uintptr, args ...uintptr) uintptr
}

// CallerFunc adapts a function to the Caller interface.
type CallerFunc func(fn uintptr, args ...uintptr) uintptr

func (o CallerFunc) Call(fn uintptr, args ...uintptr) uintptr {
	return o(fn, args...)
}
