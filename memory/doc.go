// Package memory provides functionality for reading and writing memory
// belonging to the current process.
//
// Addresses are plain uintptr values. They usually come from a foreign
// runtime's heap or from an operator-supplied offset that has been
// rebased by the aslr package. None of the functions in this package
// check that an address is mapped, aligned, or holds the type the
// caller claims it does. A bad address crashes the process.
//
// Organizing offsets
//
// Offsets discovered by reverse engineering are specific to one build
// of a target program. The AddressTable type tracks offsets per context
// (for example, per game version), and can be loaded from a TOML file
// using LoadAddressTable:
//
//	context = "ios-2.3.1"
//
//	[contexts."ios-2.3.1"]
//	string_constructor = "sub_101DD8AF8"
//	array_class_slot   = "qword_1026E0F20"
//	array_allocator    = 0x101DD74E8
//
// String values are parsed by conv.ParseOffset, which understands the
// names disassemblers give to addresses.
package memory
