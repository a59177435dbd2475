package aslr

import (
	"fmt"
	"strings"
	"sync"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

const libSystemPath = "/usr/lib/libSystem.B.dylib"

var (
	dyldOnce sync.Once
	dyldErr  error

	dyldImageCount          func() uint32
	dyldGetImageName        func(index uint32) string
	dyldGetImageVmaddrSlide func(index uint32) uintptr
)

func loadDyldFuncs() error {
	dyldOnce.Do(func() {
		lib, err := purego.Dlopen(libSystemPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err != nil {
			dyldErr = fmt.Errorf("failed to open %s - %w", libSystemPath, err)
			return
		}

		funcs := []struct {
			name string
			fptr interface{}
		}{
			{name: "_dyld_image_count", fptr: &dyldImageCount},
			{name: "_dyld_get_image_name", fptr: &dyldGetImageName},
			{name: "_dyld_get_image_vmaddr_slide", fptr: &dyldGetImageVmaddrSlide},
		}

		for _, fn := range funcs {
			sym, err := purego.Dlsym(lib, fn.name)
			if err != nil {
				dyldErr = fmt.Errorf("failed to find %s - %w", fn.name, err)
				return
			}

			purego.RegisterFunc(fn.fptr, sym)
		}
	})

	return dyldErr
}

func pageSize() int {
	return unix.Getpagesize()
}

func mainImageBias() (uintptr, error) {
	err := loadDyldFuncs()
	if err != nil {
		return 0, err
	}

	return dyldGetImageVmaddrSlide(0), nil
}

func namedImageBias(name string) (uintptr, error) {
	err := loadDyldFuncs()
	if err != nil {
		return 0, err
	}

	count := dyldImageCount()
	for i := uint32(0); i < count; i++ {
		path := dyldGetImageName(i)
		if path == name || strings.HasSuffix(path, "/"+name) {
			return dyldGetImageVmaddrSlide(i), nil
		}
	}

	return 0, fmt.Errorf("image '%s' is not loaded", name)
}
