// Package aslr rebases link-time offsets onto a running image.
//
// Offsets found in a disassembler are relative to the address the image
// was linked at. When address space layout randomization is enabled, the
// loader slides the image by a random amount (the load bias) that is
// fixed for the lifetime of the process. The Resolver adds that bias to
// an offset to produce the address the offset refers to at runtime.
//
// The bias is obtained from a BiasSource. MainImage and Image query the
// platform's loader: dyld on darwin, the auxiliary vector and
// /proc/self/maps on linux, and the module list on windows. Static
// returns a fixed value, which is useful when working with offsets
// outside of the target process.
package aslr
