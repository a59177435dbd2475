package mono

import (
	"unsafe"

	"gitlab.com/stephen-fox/monokit/memory"
)

type listHeader struct {
	Object
	items   uintptr
	size    int32
	version int32
}

const (
	ListItemsOffset   = unsafe.Offsetof(listHeader{}.items)
	ListSizeOffset    = unsafe.Offsetof(listHeader{}.size)
	ListVersionOffset = unsafe.Offsetof(listHeader{}.version)
)

// List is a managed List`1<T>. It wraps a backing *Array[T] whose
// length is the list's capacity. Only the first Size elements of the
// backing array are in the list.
//
// The runtime increments the version every time it adds or removes an
// element. Reads of the size and version are not atomic with respect
// to each other, or to the runtime's own threads.
type List[T any] listHeader

// ListAt reinterprets addr as a *List[T].
func ListAt[T any](addr uintptr) *List[T] {
	return memory.At[List[T]](addr)
}

// Addr returns the address of the list object.
func (o *List[T]) Addr() uintptr {
	return memory.AddressOf(o)
}

// Items returns the backing array. All of its elements are exposed,
// including unused capacity past Size.
func (o *List[T]) Items() *Array[T] {
	return ArrayAt[T](o.items)
}

// Size returns the number of elements in the list.
func (o *List[T]) Size() int {
	if debugAssertions {
		assertf(o.size >= 0 && int(o.size) <= o.Items().Len(),
			"list at 0x%x has size %d outside of capacity %d",
			o.Addr(), o.size, o.Items().Len())
	}

	return int(o.size)
}

// Cap returns the length of the backing array.
func (o *List[T]) Cap() int {
	return o.Items().Len()
}

// Version returns the list's mutation counter.
func (o *List[T]) Version() int32 {
	return o.version
}

// Values returns the backing array's elements clamped to
// min(Size, Cap).
func (o *List[T]) Values() []T {
	values := o.Items().Slice()

	size := o.Size()
	if size < len(values) {
		values = values[:size]
	}

	return values
}

// Watch returns a VersionMark recording the list's current version.
func (o *List[T]) Watch() VersionMark {
	return VersionMark{version: o.version}
}

// Changed reports whether the list has been modified since mark
// was taken.
func (o *List[T]) Changed(mark VersionMark) bool {
	current := o.version

	if debugAssertions {
		// Signed difference so that wrap-around is not reported.
		assertf(current-mark.version >= 0,
			"list at 0x%x version went backwards from %d to %d",
			o.Addr(), mark.version, current)
	}

	return current != mark.version
}

// VersionMark is a list version captured by List.Watch.
type VersionMark struct {
	version int32
}

// Version returns the captured version.
func (o VersionMark) Version() int32 {
	return o.version
}
