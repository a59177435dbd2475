package aslr

import (
	"debug/elf"
	"runtime"
	"testing"
	"unsafe"

	"gitlab.com/stephen-fox/monokit/memory"
)

// fakeELF64 mirrors the start of a mapped 64-bit ELF image whose program
// headers immediately follow the ELF header.
type fakeELF64 struct {
	header elf.Header64
	progs  [3]elf.Prog64
}

func newFakeELF64(withPhdr bool) *fakeELF64 {
	image := &fakeELF64{}
	copy(image.header.Ident[:], elf.ELFMAG)
	image.header.Phoff = uint64(unsafe.Sizeof(elf.Header64{}))
	image.header.Phnum = uint16(len(image.progs))

	image.progs[0] = elf.Prog64{
		Type:  uint32(elf.PT_PHDR),
		Off:   image.header.Phoff,
		Vaddr: 0x400000 + image.header.Phoff,
	}
	if !withPhdr {
		image.progs[0].Type = uint32(elf.PT_NOTE)
	}

	image.progs[1] = elf.Prog64{
		Type:  uint32(elf.PT_LOAD),
		Off:   0,
		Vaddr: 0x400000,
	}
	image.progs[2] = elf.Prog64{
		Type:  uint32(elf.PT_LOAD),
		Off:   0x1000,
		Vaddr: 0x401000,
	}

	return image
}

func TestElfBiasFromProgHeaders(t *testing.T) {
	if memory.PointerSize != 8 {
		t.Skip("synthetic headers are 64-bit")
	}

	for _, withPhdr := range []bool{true, false} {
		image := newFakeELF64(withPhdr)
		base := memory.AddressOf(image)
		phdrAddr := memory.AddressOf(&image.progs[0])

		bias, err := elfBiasFromProgHeaders(phdrAddr, len(image.progs))
		if err != nil {
			t.Fatal(err)
		}

		exp := base - 0x400000
		if bias != exp {
			t.Fatalf("withPhdr %t: expected 0x%x - got 0x%x", withPhdr, exp, bias)
		}

		runtime.KeepAlive(image)
	}
}

func TestElfBiasFromProgHeaders_NoUsableHeaders(t *testing.T) {
	if memory.PointerSize != 8 {
		t.Skip("synthetic headers are 64-bit")
	}

	progs := []elf.Prog64{{Type: uint32(elf.PT_NOTE)}}

	_, err := elfBiasFromProgHeaders(memory.AddressOf(&progs[0]), len(progs))
	if err == nil {
		t.Fatal("expected an error")
	}

	runtime.KeepAlive(progs)
}

func TestElfBiasFromImageBase(t *testing.T) {
	if memory.PointerSize != 8 {
		t.Skip("synthetic headers are 64-bit")
	}

	image := newFakeELF64(true)
	base := memory.AddressOf(image)

	bias, err := elfBiasFromImageBase(base)
	if err != nil {
		t.Fatal(err)
	}

	exp := base - 0x400000
	if bias != exp {
		t.Fatalf("expected 0x%x - got 0x%x", exp, bias)
	}

	image.header.Ident[0] = 0

	_, err = elfBiasFromImageBase(base)
	if err == nil {
		t.Fatal("expected an error for a missing elf magic")
	}

	runtime.KeepAlive(image)
}
