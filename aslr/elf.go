package aslr

import (
	"bytes"
	"debug/elf"
	"fmt"
	"unsafe"

	"gitlab.com/stephen-fox/monokit/memory"
)

type progHeader struct {
	typ   elf.ProgType
	off   uint64
	vaddr uint64
}

func readProgHeaders(phdrAddr uintptr, num int) []progHeader {
	headers := make([]progHeader, 0, num)

	for i := 0; i < num; i++ {
		if memory.PointerSize == 8 {
			prog := memory.At[elf.Prog64](phdrAddr + uintptr(i)*unsafe.Sizeof(elf.Prog64{}))
			headers = append(headers, progHeader{
				typ:   elf.ProgType(prog.Type),
				off:   prog.Off,
				vaddr: prog.Vaddr,
			})
		} else {
			prog := memory.At[elf.Prog32](phdrAddr + uintptr(i)*unsafe.Sizeof(elf.Prog32{}))
			headers = append(headers, progHeader{
				typ:   elf.ProgType(prog.Type),
				off:   uint64(prog.Off),
				vaddr: uint64(prog.Vaddr),
			})
		}
	}

	return headers
}

func elfHeaderSize() uintptr {
	if memory.PointerSize == 8 {
		return unsafe.Sizeof(elf.Header64{})
	}

	return unsafe.Sizeof(elf.Header32{})
}

// elfBiasFromProgHeaders computes the load bias of an image from the
// in-memory address of its program headers, as reported by AT_PHDR.
func elfBiasFromProgHeaders(phdrAddr uintptr, num int) (uintptr, error) {
	headers := readProgHeaders(phdrAddr, num)

	for _, header := range headers {
		if header.typ == elf.PT_PHDR {
			return phdrAddr - uintptr(header.vaddr), nil
		}
	}

	// Without PT_PHDR, assume the program headers immediately follow
	// the ELF header at the start of the first segment.
	for _, header := range headers {
		if header.typ == elf.PT_LOAD && header.off == 0 {
			return phdrAddr - elfHeaderSize() - uintptr(header.vaddr), nil
		}
	}

	return 0, fmt.Errorf("program headers at 0x%x contain neither PT_PHDR nor a PT_LOAD at offset 0",
		phdrAddr)
}

// elfBiasFromImageBase computes the load bias of an image whose ELF
// header is mapped at base.
func elfBiasFromImageBase(base uintptr) (uintptr, error) {
	if !bytes.Equal(memory.Bytes(base, len(elf.ELFMAG)), []byte(elf.ELFMAG)) {
		return 0, fmt.Errorf("no elf header at 0x%x", base)
	}

	var phoff uintptr
	var phnum int
	if memory.PointerSize == 8 {
		header := memory.At[elf.Header64](base)
		phoff = uintptr(header.Phoff)
		phnum = int(header.Phnum)
	} else {
		header := memory.At[elf.Header32](base)
		phoff = uintptr(header.Phoff)
		phnum = int(header.Phnum)
	}

	lowest := ^uint64(0)
	for _, header := range readProgHeaders(base+phoff, phnum) {
		if header.typ == elf.PT_LOAD && header.vaddr < lowest {
			lowest = header.vaddr
		}
	}

	if lowest == ^uint64(0) {
		return 0, fmt.Errorf("elf image at 0x%x has no PT_LOAD segments", base)
	}

	pageSize := uint64(pageSize())

	return base - uintptr(lowest&^(pageSize-1)), nil
}
