package memory

import (
	"runtime"
	"testing"
)

type player struct {
	health   int32
	shield   int32
	username uintptr
}

func TestReadWrite(t *testing.T) {
	buf := make([]uint64, 2)
	addr := AddressOf(&buf[0])

	Write[uint32](addr+4, 0xdeadbeef)

	if v := Read[uint32](addr + 4); v != 0xdeadbeef {
		t.Fatalf("expected 0xdeadbeef - got 0x%x", v)
	}

	if buf[0] != 0xdeadbeef00000000 {
		t.Fatalf("expected 0xdeadbeef00000000 - got 0x%x", buf[0])
	}

	runtime.KeepAlive(buf)
}

func TestFieldAt(t *testing.T) {
	p := &player{health: 100, shield: 50}
	addr := AddressOf(p)

	*FieldAt[int32](addr, 4) = 75

	if p.shield != 75 {
		t.Fatalf("expected shield to be 75 - got %d", p.shield)
	}

	runtime.KeepAlive(p)
}

func TestDeref(t *testing.T) {
	target := new(uint64)
	*target = 0x4141

	inner := []uintptr{AddressOf(target)}
	outer := []uintptr{0, AddressOf(&inner[0])}

	res := Deref(AddressOf(&outer[0]), uintptr(PointerSize), 0)
	if res != AddressOf(target) {
		t.Fatalf("expected 0x%x - got 0x%x", AddressOf(target), res)
	}

	if v := Read[uint64](res); v != 0x4141 {
		t.Fatalf("expected 0x4141 - got 0x%x", v)
	}

	if Deref(0x1234) != 0x1234 {
		t.Fatal("expected no hops to return the address unchanged")
	}

	runtime.KeepAlive(target)
	runtime.KeepAlive(inner)
	runtime.KeepAlive(outer)
}

func TestBytes(t *testing.T) {
	buf := []byte("hello")

	b := Bytes(AddressOf(&buf[0]), 5)
	if string(b) != "hello" {
		t.Fatalf("expected 'hello' - got '%s'", b)
	}

	if Bytes(0, 0) != nil {
		t.Fatal("expected a nil slice for zero length")
	}

	runtime.KeepAlive(buf)
}
