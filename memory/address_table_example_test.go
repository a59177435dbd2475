package memory

import "fmt"

func ExampleAddressTable() {
	offsets := NewAddressTable("ios-2.3.1").
		AddSymbolInContext("array_allocator", 0x101dd74e8, "ios-2.3.1").
		AddSymbolInContext("array_allocator", 0x101de1a30, "ios-2.4.0")

	offset := offsets.OffsetOrExit("array_allocator")
	fmt.Printf("2.3.1 array_allocator: 0x%x\n", offset)

	offsets.SetContext("ios-2.4.0")

	offset = offsets.OffsetOrExit("array_allocator")
	fmt.Printf("2.4.0 array_allocator: 0x%x\n", offset)

	// Output:
	// 2.3.1 array_allocator: 0x101dd74e8
	// 2.4.0 array_allocator: 0x101de1a30
}
