package invoke

import (
	"fmt"

	"gitlab.com/stephen-fox/monokit/memory"
)

// Symbol names looked up by OffsetsFromTable.
const (
	StringConstructorSymbol = "string_constructor"
	ArrayClassSlotSymbol    = "array_class_slot"
	ArrayAllocatorSymbol    = "array_allocator"
)

// Offsets are the link-time offsets an Invoker calls through.
type Offsets struct {
	// StringConstructor is the offset of the first
	// String.CreateString(sbyte*) function.
	StringConstructor uint64

	// ArrayClassSlot is the offset of a global variable holding
	// a pointer to a pointer to the array class descriptor.
	ArrayClassSlot uint64

	// ArrayAllocator is the offset of the runtime's array
	// allocation function.
	ArrayAllocator uint64
}

// OffsetsFromTableOrExit calls OffsetsFromTable. If an error occurs,
// DefaultExitFn is invoked.
func OffsetsFromTableOrExit(table *memory.AddressTable) Offsets {
	offsets, err := OffsetsFromTable(table)
	if err != nil {
		DefaultExitFn(err)
	}

	return offsets
}

// OffsetsFromTable reads Offsets from the current context of table.
func OffsetsFromTable(table *memory.AddressTable) (Offsets, error) {
	var offsets Offsets

	fields := []struct {
		symbol string
		dst    *uint64
	}{
		{symbol: StringConstructorSymbol, dst: &offsets.StringConstructor},
		{symbol: ArrayClassSlotSymbol, dst: &offsets.ArrayClassSlot},
		{symbol: ArrayAllocatorSymbol, dst: &offsets.ArrayAllocator},
	}

	for _, field := range fields {
		offset, err := table.Offset(field.symbol)
		if err != nil {
			return Offsets{}, fmt.Errorf("failed to get invoker offsets - %w", err)
		}

		*field.dst = offset
	}

	return offsets, nil
}
