//go:build !monodebug

package mono

const debugAssertions = false

func assertf(bool, string, ...interface{}) {}
