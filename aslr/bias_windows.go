package aslr

import (
	"fmt"

	"golang.org/x/sys/windows"
)

func pageSize() int {
	return windows.Getpagesize()
}

func mainImageBias() (uintptr, error) {
	return moduleBias(nil)
}

func namedImageBias(name string) (uintptr, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, err
	}

	return moduleBias(namePtr)
}

func moduleBias(name *uint16) (uintptr, error) {
	var module windows.Handle

	err := windows.GetModuleHandleEx(windows.GET_MODULE_HANDLE_EX_FLAG_UNCHANGED_REFCOUNT, name, &module)
	if err != nil {
		return 0, fmt.Errorf("failed to get module handle - %w", err)
	}

	return peBiasFromImageBase(uintptr(module))
}
