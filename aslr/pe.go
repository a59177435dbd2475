package aslr

import (
	"fmt"

	"gitlab.com/stephen-fox/monokit/memory"
)

const (
	peNTHeaderOffsetField = 0x3c
	peFileHeaderSize      = 20
	peMagic32             = 0x10b
	peMagic64             = 0x20b
)

// peBiasFromImageBase computes the load bias of a PE image mapped at
// base by subtracting the preferred ImageBase from its optional header.
func peBiasFromImageBase(base uintptr) (uintptr, error) {
	if memory.Read[uint16](base) != 0x5a4d {
		return 0, fmt.Errorf("no dos header at 0x%x", base)
	}

	ntHeaders := base + uintptr(memory.Read[uint32](base+peNTHeaderOffsetField))
	if memory.Read[uint32](ntHeaders) != 0x00004550 {
		return 0, fmt.Errorf("no pe signature at 0x%x", ntHeaders)
	}

	optionalHeader := ntHeaders + 4 + peFileHeaderSize

	var imageBase uint64
	switch magic := memory.Read[uint16](optionalHeader); magic {
	case peMagic64:
		imageBase = memory.Read[uint64](optionalHeader + 24)
	case peMagic32:
		imageBase = uint64(memory.Read[uint32](optionalHeader + 28))
	default:
		return 0, fmt.Errorf("unknown optional header magic 0x%x", magic)
	}

	return base - uintptr(imageBase), nil
}
