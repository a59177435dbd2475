//go:build monodebug

package mono

import "fmt"

const debugAssertions = true

func assertf(ok bool, format string, args ...interface{}) {
	if !ok {
		panic(fmt.Sprintf("mono: "+format, args...))
	}
}
