package memory

import "unsafe"

// PointerSize is the size of a pointer in bytes for the current process.
const PointerSize = int(unsafe.Sizeof(uintptr(0)))

// At reinterprets addr as a *T. It does not copy anything; writes
// through the returned pointer modify the memory at addr.
func At[T any](addr uintptr) *T {
	return (*T)(unsafe.Pointer(addr))
}

// FieldAt returns a *T pointing at offset bytes past the start of
// the object at objAddr. This mirrors reading a field whose offset
// was taken from a class dump, e.g. "public string username; // 0xC8".
func FieldAt[T any](objAddr uintptr, offset uintptr) *T {
	return At[T](objAddr + offset)
}

// Read loads a T from addr.
func Read[T any](addr uintptr) T {
	return *At[T](addr)
}

// Write stores v at addr.
func Write[T any](addr uintptr, v T) {
	*At[T](addr) = v
}

// ReadPointer loads a pointer-sized value from addr.
func ReadPointer(addr uintptr) uintptr {
	return Read[uintptr](addr)
}

// Deref follows a chain of pointers starting at addr. Each element of
// hops is added to the current address before it is dereferenced, so
// Deref(a, 0, 0) is equivalent to **(void ***)a.
func Deref(addr uintptr, hops ...uintptr) uintptr {
	for _, hop := range hops {
		addr = ReadPointer(addr + hop)
	}

	return addr
}

// Bytes returns a []byte of length n backed by the memory at addr.
func Bytes(addr uintptr, n int) []byte {
	if n == 0 {
		return nil
	}

	return unsafe.Slice((*byte)(unsafe.Pointer(addr)), n)
}

// AddressOf returns the address of the value p points to.
func AddressOf[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}
