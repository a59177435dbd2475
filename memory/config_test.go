package memory

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const exampleTableTOML = `
context = "ios-2.3.1"

[contexts."ios-2.3.1"]
string_constructor = "sub_101DD8AF8"
array_class_slot   = "#qword_1026E0F20@PAGEOFF"
array_allocator    = 0x101DD74E8

[contexts."ios-2.4.0"]
array_allocator = "0x101DE1A30"
`

func TestDecodeAddressTable(t *testing.T) {
	table, err := DecodeAddressTable(strings.NewReader(exampleTableTOML))
	if err != nil {
		t.Fatal(err)
	}

	if table.CurrentContext() != "ios-2.3.1" {
		t.Fatalf("expected context 'ios-2.3.1' - got '%s'", table.CurrentContext())
	}

	exp := map[string]uint64{
		"string_constructor": 0x101dd8af8,
		"array_class_slot":   0x1026e0f20,
		"array_allocator":    0x101dd74e8,
	}

	for symbol, expOffset := range exp {
		offset, err := table.Offset(symbol)
		if err != nil {
			t.Fatal(err)
		}

		if offset != expOffset {
			t.Fatalf("%s: expected 0x%x - got 0x%x", symbol, expOffset, offset)
		}
	}

	table.SetContext("ios-2.4.0")

	offset, err := table.Offset("array_allocator")
	if err != nil {
		t.Fatal(err)
	}

	if offset != 0x101de1a30 {
		t.Fatalf("expected 0x101de1a30 - got 0x%x", offset)
	}
}

func TestDecodeAddressTable_SingleContextSelected(t *testing.T) {
	table, err := DecodeAddressTable(strings.NewReader(`
[contexts.only]
foo = 0x10
`))
	if err != nil {
		t.Fatal(err)
	}

	if table.CurrentContext() != "only" {
		t.Fatalf("expected context 'only' - got '%s'", table.CurrentContext())
	}
}

func TestDecodeAddressTable_Errors(t *testing.T) {
	inputs := []string{
		`[contexts.a]
foo = "not an offset"`,
		`[contexts.a]
foo = -1`,
		`[contexts.a]
foo = 1.5`,
		`context = "b"
[contexts.a]
foo = 1`,
		`this is not toml`,
	}

	for _, input := range inputs {
		_, err := DecodeAddressTable(strings.NewReader(input))
		if err == nil {
			t.Fatalf("expected an error for:\n%s", input)
		}
	}
}

func TestLoadAddressTable(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "offsets.toml")

	err := os.WriteFile(filePath, []byte(exampleTableTOML), 0600)
	if err != nil {
		t.Fatal(err)
	}

	table, err := LoadAddressTable(filePath)
	if err != nil {
		t.Fatal(err)
	}

	if len(table.Contexts()) != 2 {
		t.Fatalf("expected 2 contexts - got %v", table.Contexts())
	}

	_, err = LoadAddressTable(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
