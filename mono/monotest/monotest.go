// Package monotest builds synthetic runtime objects for testing code that
// uses the mono overlays.
//
// Objects are laid out exactly as the runtime lays them out, in memory
// allocated from the Go heap. A Heap keeps that memory reachable, so
// objects remain valid for as long as the Heap is.
package monotest

import (
	"unsafe"

	"gitlab.com/stephen-fox/monokit/memory"
	"gitlab.com/stephen-fox/monokit/mono"
	_ "go4.org/unsafe/assume-no-moving-gc"
	"golang.org/x/text/encoding/unicode"
)

// FakeClass is written to the class pointer of objects created by a
// Heap, which makes stray reads of it easy to spot.
const FakeClass uintptr = 0xc1a55

// Heap allocates zeroed, pointer-aligned memory for synthetic objects.
// The zero value is ready to use.
//
// Heap memory is not scanned by the garbage collector. Go pointers
// stored in it must point at memory that is kept alive some other way,
// such as another object from the same Heap.
type Heap struct {
	blocks [][]uintptr
}

// Alloc returns the address of size bytes of zeroed memory.
func (o *Heap) Alloc(size uintptr) uintptr {
	words := (size + unsafe.Sizeof(uintptr(0)) - 1) / unsafe.Sizeof(uintptr(0))
	if words == 0 {
		words = 1
	}

	block := make([]uintptr, words)
	o.blocks = append(o.blocks, block)

	return memory.AddressOf(&block[0])
}

// Pointer allocates a pointer-sized slot holding target and returns
// the slot's address.
func (o *Heap) Pointer(target uintptr) uintptr {
	slot := o.Alloc(unsafe.Sizeof(uintptr(0)))
	memory.Write(slot, target)
	return slot
}

// NewArray creates an array holding elems.
func NewArray[T any](heap *Heap, elems ...T) *mono.Array[T] {
	arr := NewArrayLen[T](heap, len(elems))
	copy(arr.Slice(), elems)
	return arr
}

// NewArrayLen creates an array of length zero-valued elements.
func NewArrayLen[T any](heap *Heap, length int) *mono.Array[T] {
	var zero T

	addr := heap.Alloc(mono.ArrayDataOffset + uintptr(length)*unsafe.Sizeof(zero))
	memory.Write(addr, FakeClass)
	memory.Write(addr+mono.ArrayLengthOffset, int32(length))

	return mono.ArrayAt[T](addr)
}

// NewString creates a string from s. A terminating zero code unit is
// written after the last unit, as the runtime does.
func NewString(heap *Heap, s string) *mono.String {
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder().String(s)
	if err != nil {
		panic(err)
	}

	units := make([]uint16, len(encoded)/2)
	for i := range units {
		units[i] = uint16(encoded[2*i]) | uint16(encoded[2*i+1])<<8
	}

	return NewStringUTF16(heap, units)
}

// NewStringUTF16 creates a string from raw code units.
func NewStringUTF16(heap *Heap, units []uint16) *mono.String {
	addr := heap.Alloc(mono.StringCharsOffset + uintptr(len(units)+1)*2)
	memory.Write(addr, FakeClass)
	memory.Write(addr+mono.StringLengthOffset, int32(len(units)))

	for i, unit := range units {
		memory.Write(addr+mono.StringCharsOffset+uintptr(i)*2, unit)
	}

	return mono.StringAt(addr)
}

// NewList creates a list with a backing array of length capacity whose
// first elements are elems. capacity must be at least len(elems).
func NewList[T any](heap *Heap, capacity int, elems ...T) *mono.List[T] {
	if capacity < len(elems) {
		panic("monotest: list capacity is smaller than its element count")
	}

	items := NewArrayLen[T](heap, capacity)
	copy(items.Slice(), elems)

	addr := heap.Alloc(mono.ListVersionOffset + 4)
	memory.Write(addr, FakeClass)
	memory.Write(addr+mono.ListItemsOffset, items.Addr())
	memory.Write(addr+mono.ListSizeOffset, int32(len(elems)))

	return mono.ListAt[T](addr)
}

// SetListSize overwrites a list's size field.
func SetListSize[T any](list *mono.List[T], size int) {
	memory.Write(list.Addr()+mono.ListSizeOffset, int32(size))
}

// BumpListVersion adds delta to a list's version, as the runtime does
// when the list is modified.
func BumpListVersion[T any](list *mono.List[T], delta int32) {
	memory.Write(list.Addr()+mono.ListVersionOffset, list.Version()+delta)
}

// NewDictionary creates a dictionary with slot arrays of length capacity.
// The pairs are placed in the first len(keys) slots, chained into
// buckets by hash. keys and values must have the same length, and
// capacity must be at least that length.
func NewDictionary[K, V any](heap *Heap, capacity int, hash func(K) int32, keys []K, values []V) *mono.Dictionary[K, V] {
	if len(keys) != len(values) {
		panic("monotest: keys and values differ in length")
	}

	buckets := NewArrayLen[int32](heap, capacity)
	links := NewArrayLen[mono.Link](heap, capacity)
	keyArr := NewArrayLen[K](heap, capacity)
	valueArr := NewArrayLen[V](heap, capacity)

	bucketSlots := buckets.Slice()
	for i := range bucketSlots {
		bucketSlots[i] = -1
	}

	for slot := range keys {
		hashCode := hash(keys[slot]) & 0x7fffffff
		bucket := int(hashCode) % capacity

		links.Set(slot, mono.Link{
			HashCode: hashCode,
			Next:     bucketSlots[bucket],
		})
		bucketSlots[bucket] = int32(slot)

		keyArr.Set(slot, keys[slot])
		valueArr.Set(slot, values[slot])
	}

	emptySlot := int32(-1)

	addr := heap.Alloc(mono.DictionarySizeOffset + 4)
	memory.Write(addr, FakeClass)
	memory.Write(addr+mono.DictionaryTableOffset, buckets.Addr())
	memory.Write(addr+mono.DictionaryLinkSlotsOffset, links.Addr())
	memory.Write(addr+mono.DictionaryKeysOffset, keyArr.Addr())
	memory.Write(addr+mono.DictionaryValuesOffset, valueArr.Addr())
	memory.Write(addr+mono.DictionaryTouchedSlotsOffset, int32(len(keys)))
	memory.Write(addr+mono.DictionaryEmptySlotOffset, emptySlot)
	memory.Write(addr+mono.DictionarySizeOffset, int32(len(keys)))

	return mono.DictionaryAt[K, V](addr)
}
