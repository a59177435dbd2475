package mono_test

import (
	"bytes"
	"runtime"
	"testing"

	"gitlab.com/stephen-fox/monokit/memory"
	"gitlab.com/stephen-fox/monokit/mono"
	"gitlab.com/stephen-fox/monokit/mono/monotest"
)

func TestStringAt_HandBuiltBuffer(t *testing.T) {
	buf := make([]uint64, 8)
	addr := memory.AddressOf(&buf[0])

	memory.Write(addr+mono.StringLengthOffset, int32(3))
	copy(memory.Bytes(addr+mono.StringCharsOffset, 6), []byte{'c', 0, 'a', 0, 't', 0})

	str := mono.StringAt(addr)

	if str.Len() != 3 {
		t.Fatalf("expected length 3 - got %d", str.Len())
	}

	if str.String() != "cat" {
		t.Fatalf("expected 'cat' - got '%s'", str.String())
	}

	runtime.KeepAlive(buf)
}

func TestString_EmbeddedZero(t *testing.T) {
	var heap monotest.Heap
	defer runtime.KeepAlive(&heap)

	str := monotest.NewStringUTF16(&heap, []uint16{'c', 'a', 0, 't'})

	if str.Len() != 4 {
		t.Fatalf("expected length 4 - got %d", str.Len())
	}

	exp := "ca\x00t"
	if str.String() != exp {
		t.Fatalf("expected %q - got %q", exp, str.String())
	}
}

func TestString_LengthBoundsDecode(t *testing.T) {
	var heap monotest.Heap
	defer runtime.KeepAlive(&heap)

	str := monotest.NewString(&heap, "catalog")

	// Shrink the length without touching the code units that follow.
	memory.Write(str.Addr()+mono.StringLengthOffset, int32(3))

	if str.String() != "cat" {
		t.Fatalf("expected 'cat' - got '%s'", str.String())
	}
}

func TestString_NonASCII(t *testing.T) {
	var heap monotest.Heap
	defer runtime.KeepAlive(&heap)

	exp := "héllo, 世界 🎮"
	str := monotest.NewString(&heap, exp)

	// U+1F3AE is a surrogate pair.
	if str.Len() != 12 {
		t.Fatalf("expected 12 code units - got %d", str.Len())
	}

	if str.String() != exp {
		t.Fatalf("expected '%s' - got '%s'", exp, str.String())
	}
}

func TestString_UnpairedSurrogate(t *testing.T) {
	var heap monotest.Heap
	defer runtime.KeepAlive(&heap)

	str := monotest.NewStringUTF16(&heap, []uint16{'a', 0xd800, 'b'})

	if str.String() != "a�b" {
		t.Fatalf("expected replacement character - got %q", str.String())
	}
}

func TestString_UTF16AndBytes(t *testing.T) {
	var heap monotest.Heap
	defer runtime.KeepAlive(&heap)

	str := monotest.NewString(&heap, "hi")

	units := str.UTF16()
	if len(units) != 2 || units[0] != 'h' || units[1] != 'i' {
		t.Fatalf("unexpected code units: %v", units)
	}

	if *str.Chars() != 'h' {
		t.Fatalf("expected first code unit 'h' - got 0x%x", *str.Chars())
	}

	if !bytes.Equal(str.Bytes(), []byte{'h', 0, 'i', 0}) {
		t.Fatalf("unexpected bytes: 0x%x", str.Bytes())
	}
}

func TestString_Empty(t *testing.T) {
	var heap monotest.Heap
	defer runtime.KeepAlive(&heap)

	str := monotest.NewString(&heap, "")

	if str.Len() != 0 || str.String() != "" || len(str.Narrow()) != 0 {
		t.Fatalf("expected an empty string - got %q", str.String())
	}
}

func TestString_Narrow(t *testing.T) {
	var heap monotest.Heap
	defer runtime.KeepAlive(&heap)

	str := monotest.NewString(&heap, "café €5")

	exp := []byte("caf\xe9 \x1a5")
	if !bytes.Equal(str.Narrow(), exp) {
		t.Fatalf("expected %q - got %q", exp, str.Narrow())
	}
}
