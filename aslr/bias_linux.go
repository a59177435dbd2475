package aslr

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Auxiliary vector entry types from the ELF ABI.
const (
	atPhdr  = 3
	atPhnum = 5
)

func pageSize() int {
	return unix.Getpagesize()
}

func mainImageBias() (uintptr, error) {
	auxv, err := unix.Auxv()
	if err != nil {
		return 0, fmt.Errorf("failed to read auxiliary vector - %w", err)
	}

	var phdr uintptr
	var phnum int
	for _, entry := range auxv {
		switch entry[0] {
		case atPhdr:
			phdr = entry[1]
		case atPhnum:
			phnum = int(entry[1])
		}
	}

	if phdr == 0 || phnum == 0 {
		return 0, fmt.Errorf("auxiliary vector lacks AT_PHDR or AT_PHNUM - %w", ErrUnsupported)
	}

	return elfBiasFromProgHeaders(phdr, phnum)
}

func namedImageBias(name string) (uintptr, error) {
	f, err := os.Open("/proc/self/maps")
	if err != nil {
		return 0, fmt.Errorf("failed to open process maps - %w", err)
	}
	defer f.Close()

	mappings, err := parseMaps(f)
	if err != nil {
		return 0, fmt.Errorf("failed to parse process maps - %w", err)
	}

	base, err := imageBaseFromMaps(mappings, name)
	if err != nil {
		return 0, err
	}

	return elfBiasFromImageBase(base)
}
