package mono

import (
	"unsafe"

	"gitlab.com/stephen-fox/monokit/memory"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

type stringHeader struct {
	Object
	length int32
	chars  [0]uint16
}

const (
	// StringLengthOffset is the offset of a string's int32 length.
	StringLengthOffset = unsafe.Offsetof(stringHeader{}.length)

	// StringCharsOffset is the offset of a string's first UTF-16
	// code unit.
	StringCharsOffset = unsafe.Offsetof(stringHeader{}.chars)
)

var utf16LE = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// String is a managed System.String: a length followed by that many
// UTF-16 code units. The runtime usually writes a terminating zero
// after the last unit, but the length is what counts. A string may
// contain zero code units.
type String stringHeader

// StringAt reinterprets addr as a *String.
func StringAt(addr uintptr) *String {
	return memory.At[String](addr)
}

// Addr returns the address of the string object.
func (o *String) Addr() uintptr {
	return memory.AddressOf(o)
}

// Len returns the number of UTF-16 code units in the string.
func (o *String) Len() int {
	if debugAssertions {
		assertf(o.length >= 0, "string at 0x%x has negative length %d",
			o.Addr(), o.length)
	}

	return int(o.length)
}

// Chars returns a pointer to the first code unit.
func (o *String) Chars() *uint16 {
	return (*uint16)(unsafe.Add(unsafe.Pointer(o), StringCharsOffset))
}

// UTF16 returns the code units as a []uint16 backed by the
// string's storage.
func (o *String) UTF16() []uint16 {
	return unsafe.Slice(o.Chars(), o.Len())
}

// Bytes returns the Len()*2 bytes of little-endian UTF-16 backed by the
// string's storage.
func (o *String) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(o.Chars())), o.Len()*2)
}

// String decodes the string into Go's UTF-8 representation. Exactly
// Len code units are decoded. Malformed UTF-16, such as an unpaired
// surrogate, is replaced with U+FFFD.
func (o *String) String() string {
	raw := o.Bytes()
	if len(raw) == 0 {
		return ""
	}

	// The decoder substitutes U+FFFD for invalid input instead of failing.
	decoded, _ := utf16LE.NewDecoder().Bytes(raw)

	return string(decoded)
}

// Narrow converts the string to one byte per character using ISO 8859-1.
// Characters outside of that charset are replaced with 0x1a. This is
// lossy for anything other than Latin-1 text.
func (o *String) Narrow() []byte {
	narrowed, _ := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).String(o.String())

	return []byte(narrowed)
}
