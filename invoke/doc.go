// Package invoke calls functions exported by a Unity IL2CPP runtime whose
// locations were found by hand in a disassembler.
//
// Two functions are supported:
//	- String.CreateString(sbyte*), which turns native text into a
//	  managed string
//	- the runtime's array allocator, which creates a T[] given a class
//	  descriptor and a length
//
// Each call resolves its target from a link-time offset through an
// aslr.Resolver at the time of the call. Nothing checks that the
// offsets are correct. A wrong offset calls unrelated code, which
// usually crashes the process.
//
// Finding the offsets
//
// The runtime contains two functions named String.CreateString taking
// a pointer. The one that comes first in the binary has the signature
// used here. Calling the second one is undefined.
//
// The array allocator and the array class slot can both be found in
// String.Split(char[] separator, int count). Near the start of the
// function there is a sequence like the following (arm64):
//
//	ADRP  X8, #qword_1026E0F20@PAGE
//	NOP
//	LDR   X19, [X8,#qword_1026E0F20@PAGEOFF]  <- array class slot
//	MOV   X0, X19
//	BL    sub_101DD8AF8
//	MOV   X0, X19
//	MOV   W1, #0
//	...
//	B     sub_101DD74E8                        <- array allocator
//
// Both operands can be copied into an offsets file as-is. Refer to
// memory.LoadAddressTable.
package invoke
