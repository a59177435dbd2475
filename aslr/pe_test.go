package aslr

import (
	"runtime"
	"testing"

	"gitlab.com/stephen-fox/monokit/memory"
)

func newFakePE(magic uint16, imageBase uint64) []uint64 {
	buf := make([]uint64, 64)
	base := memory.AddressOf(&buf[0])

	const ntOffset = 0x80

	memory.Write[uint16](base, 0x5a4d)
	memory.Write[uint32](base+peNTHeaderOffsetField, ntOffset)
	memory.Write[uint32](base+ntOffset, 0x00004550)

	optionalHeader := base + ntOffset + 4 + peFileHeaderSize
	memory.Write[uint16](optionalHeader, magic)

	if magic == peMagic64 {
		memory.Write[uint64](optionalHeader+24, imageBase)
	} else {
		memory.Write[uint32](optionalHeader+28, uint32(imageBase))
	}

	return buf
}

func TestPeBiasFromImageBase(t *testing.T) {
	for _, magic := range []uint16{peMagic32, peMagic64} {
		buf := newFakePE(magic, 0x10000)
		base := memory.AddressOf(&buf[0])

		bias, err := peBiasFromImageBase(base)
		if err != nil {
			t.Fatal(err)
		}

		if bias != base-0x10000 {
			t.Fatalf("magic 0x%x: expected 0x%x - got 0x%x", magic, base-0x10000, bias)
		}

		runtime.KeepAlive(buf)
	}
}

func TestPeBiasFromImageBase_Invalid(t *testing.T) {
	buf := newFakePE(0x1234, 0x10000)
	base := memory.AddressOf(&buf[0])

	_, err := peBiasFromImageBase(base)
	if err == nil {
		t.Fatal("expected an error for an unknown magic")
	}

	memory.Write[uint16](base, 0)

	_, err = peBiasFromImageBase(base)
	if err == nil {
		t.Fatal("expected an error for a missing dos header")
	}

	runtime.KeepAlive(buf)
}
