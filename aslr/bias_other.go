//go:build !linux && !darwin && !windows

package aslr

import "os"

func pageSize() int {
	return os.Getpagesize()
}

func mainImageBias() (uintptr, error) {
	return 0, ErrUnsupported
}

func namedImageBias(name string) (uintptr, error) {
	return 0, ErrUnsupported
}
