package mono

import (
	"unsafe"

	"gitlab.com/stephen-fox/monokit/memory"
)

// Link is an entry in a dictionary's collision chains. Next is the slot
// index of the following entry in the same bucket, or -1.
type Link struct {
	HashCode int32
	Next     int32
}

type dictionaryHeader struct {
	Object
	table        uintptr
	linkSlots    uintptr
	keys         uintptr
	values       uintptr
	touchedSlots int32
	emptySlot    int32
	count        int32
}

const (
	DictionaryTableOffset        = unsafe.Offsetof(dictionaryHeader{}.table)
	DictionaryLinkSlotsOffset    = unsafe.Offsetof(dictionaryHeader{}.linkSlots)
	DictionaryKeysOffset         = unsafe.Offsetof(dictionaryHeader{}.keys)
	DictionaryValuesOffset       = unsafe.Offsetof(dictionaryHeader{}.values)
	DictionaryTouchedSlotsOffset = unsafe.Offsetof(dictionaryHeader{}.touchedSlots)
	DictionaryEmptySlotOffset    = unsafe.Offsetof(dictionaryHeader{}.emptySlot)
	DictionarySizeOffset         = unsafe.Offsetof(dictionaryHeader{}.count)
)

// Dictionary is a managed Dictionary`2<K, V>.
//
// Keys and values live in parallel arrays indexed by slot. A slot may be
// unused or hold a removed entry, so NumKeys and NumValues (the arrays'
// capacity) are usually larger than Size (the number of live entries).
// Telling live slots from dead ones requires the runtime's own
// bookkeeping, which this type does not interpret.
type Dictionary[K, V any] dictionaryHeader

// DictionaryAt reinterprets addr as a *Dictionary[K, V].
func DictionaryAt[K, V any](addr uintptr) *Dictionary[K, V] {
	return memory.At[Dictionary[K, V]](addr)
}

// Addr returns the address of the dictionary object.
func (o *Dictionary[K, V]) Addr() uintptr {
	return memory.AddressOf(o)
}

// Buckets returns the bucket table. Each element is the slot index of
// the first entry in that bucket.
func (o *Dictionary[K, V]) Buckets() *Array[int32] {
	return ArrayAt[int32](o.table)
}

// LinkSlots returns the collision chain array.
func (o *Dictionary[K, V]) LinkSlots() *Array[Link] {
	return ArrayAt[Link](o.linkSlots)
}

// Keys returns the key array.
func (o *Dictionary[K, V]) Keys() *Array[K] {
	return ArrayAt[K](o.keys)
}

// Values returns the value array.
func (o *Dictionary[K, V]) Values() *Array[V] {
	return ArrayAt[V](o.values)
}

// NumKeys returns the capacity of the key array. It is not the number
// of entries in the dictionary.
func (o *Dictionary[K, V]) NumKeys() int {
	return o.Keys().Len()
}

// NumValues returns the capacity of the value array. It is not the
// number of entries in the dictionary.
func (o *Dictionary[K, V]) NumValues() int {
	return o.Values().Len()
}

// Size returns the number of live key/value pairs.
func (o *Dictionary[K, V]) Size() int {
	if debugAssertions {
		assertf(o.count >= 0, "dictionary at 0x%x has negative size %d",
			o.Addr(), o.count)
	}

	return int(o.count)
}

// TouchedSlots returns the number of slots that have ever held an entry.
func (o *Dictionary[K, V]) TouchedSlots() int {
	return int(o.touchedSlots)
}

// EmptySlot returns the head of the free slot list, or -1 if it is empty.
func (o *Dictionary[K, V]) EmptySlot() int {
	return int(o.emptySlot)
}
