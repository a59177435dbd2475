// Package obscured reads and writes the 32-bit "Obscured" scalars used by
// Anti-Cheat Toolkit.
//
// An obscured scalar occupies 8 bytes: a 4-byte key chosen by the game,
// followed by the value's 32-bit pattern XORed with that key. Floats are
// XORed as their IEEE 754 bit patterns, so every float, including -0 and
// NaNs with payloads, survives a round trip unchanged.
//
// Writing a new value re-reads the key and leaves it as-is. This assumes
// the game does not rotate the key between the read and the write. If it
// does, the value written will decode incorrectly.
package obscured

import (
	"math"
	"unsafe"

	"gitlab.com/stephen-fox/monokit/memory"
)

// Size is the number of bytes an obscured scalar occupies.
const Size = 8

// Mask XORs bits with key. It is its own inverse.
func Mask(bits uint32, key uint32) uint32 {
	return bits ^ key
}

// Int is an ObscuredInt.
type Int struct {
	Key    int32
	Masked int32
}

// IntAt reinterprets addr as an *Int.
func IntAt(addr uintptr) *Int {
	return memory.At[Int](addr)
}

// Get returns the real value.
func (o *Int) Get() int32 {
	return int32(Mask(uint32(o.Masked), uint32(o.Key)))
}

// Set stores v, masked with the current key.
func (o *Int) Set(v int32) {
	o.Masked = int32(Mask(uint32(v), uint32(o.Key)))
}

// Uint is an ObscuredUInt.
type Uint struct {
	Key    uint32
	Masked uint32
}

// UintAt reinterprets addr as a *Uint.
func UintAt(addr uintptr) *Uint {
	return memory.At[Uint](addr)
}

// Get returns the real value.
func (o *Uint) Get() uint32 {
	return Mask(o.Masked, o.Key)
}

// Set stores v, masked with the current key.
func (o *Uint) Set(v uint32) {
	o.Masked = Mask(v, o.Key)
}

// Float is an ObscuredFloat. Its key and payload are raw 32-bit
// patterns even though the value it holds is a float.
type Float struct {
	Key    uint32
	Masked uint32
}

// FloatAt reinterprets addr as a *Float.
func FloatAt(addr uintptr) *Float {
	return memory.At[Float](addr)
}

// Get returns the real value.
func (o *Float) Get() float32 {
	return math.Float32frombits(Mask(o.Masked, o.Key))
}

// Set stores v, masked with the current key.
func (o *Float) Set(v float32) {
	o.Masked = Mask(math.Float32bits(v), o.Key)
}

// DecodeInt returns the real value of the ObscuredInt at addr.
func DecodeInt(addr uintptr) int32 {
	return IntAt(addr).Get()
}

// EncodeInt sets the ObscuredInt at addr to v.
func EncodeInt(addr uintptr, v int32) {
	IntAt(addr).Set(v)
}

// DecodeUint returns the real value of the ObscuredUInt at addr.
func DecodeUint(addr uintptr) uint32 {
	return UintAt(addr).Get()
}

// EncodeUint sets the ObscuredUInt at addr to v.
func EncodeUint(addr uintptr, v uint32) {
	UintAt(addr).Set(v)
}

// DecodeFloat returns the real value of the ObscuredFloat at addr.
func DecodeFloat(addr uintptr) float32 {
	return FloatAt(addr).Get()
}

// EncodeFloat sets the ObscuredFloat at addr to v.
func EncodeFloat(addr uintptr, v float32) {
	FloatAt(addr).Set(v)
}

var (
	_ [Size]byte = [unsafe.Sizeof(Int{})]byte{}
	_ [Size]byte = [unsafe.Sizeof(Uint{})]byte{}
	_ [Size]byte = [unsafe.Sizeof(Float{})]byte{}
)
