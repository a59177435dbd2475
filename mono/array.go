package mono

import (
	"unsafe"

	"gitlab.com/stephen-fox/monokit/memory"
)

type arrayHeader struct {
	Object
	bounds    uintptr
	maxLength int32
	vector    [0]uintptr
}

const (
	// ArrayBoundsOffset is the offset of an array's bounds pointer.
	ArrayBoundsOffset = unsafe.Offsetof(arrayHeader{}.bounds)

	// ArrayLengthOffset is the offset of an array's int32 length.
	ArrayLengthOffset = unsafe.Offsetof(arrayHeader{}.maxLength)

	// ArrayDataOffset is the offset of an array's first element.
	ArrayDataOffset = unsafe.Offsetof(arrayHeader{}.vector)
)

// Array is a managed T[]. The elements are stored inline, immediately
// after the header.
//
// Len is the only bound on the elements. Reading or writing past it is
// undefined.
type Array[T any] arrayHeader

// ArrayAt reinterprets addr as an *Array[T].
func ArrayAt[T any](addr uintptr) *Array[T] {
	return memory.At[Array[T]](addr)
}

// Addr returns the address of the array object.
func (o *Array[T]) Addr() uintptr {
	return memory.AddressOf(o)
}

// Bounds returns the address of the array's bounds descriptor. It is
// zero for single-dimension, zero-based arrays.
func (o *Array[T]) Bounds() uintptr {
	return o.bounds
}

// Len returns the number of elements in the array.
func (o *Array[T]) Len() int {
	if debugAssertions {
		assertf(o.maxLength >= 0, "array at 0x%x has negative length %d",
			o.Addr(), o.maxLength)
	}

	return int(o.maxLength)
}

// Data returns a pointer to the first element.
func (o *Array[T]) Data() *T {
	return (*T)(unsafe.Add(unsafe.Pointer(o), ArrayDataOffset))
}

// Slice returns a []T of length Len backed by the array's storage.
// Writes to the slice modify the array.
func (o *Array[T]) Slice() []T {
	return unsafe.Slice(o.Data(), o.Len())
}

// At returns the element at index i.
func (o *Array[T]) At(i int) T {
	return *o.elem(i)
}

// Set stores v at index i.
func (o *Array[T]) Set(i int, v T) {
	*o.elem(i) = v
}

func (o *Array[T]) elem(i int) *T {
	if debugAssertions {
		assertf(i >= 0 && i < o.Len(), "index %d out of range for array at 0x%x with length %d",
			i, o.Addr(), o.maxLength)
	}

	var zero T

	return (*T)(unsafe.Add(unsafe.Pointer(o), ArrayDataOffset+uintptr(i)*unsafe.Sizeof(zero)))
}
