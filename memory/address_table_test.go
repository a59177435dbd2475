package memory

import (
	"reflect"
	"testing"
)

func TestAddressTable_Offset(t *testing.T) {
	table := NewAddressTable("a").
		AddSymbolInContext("foo", 0x10, "a").
		AddSymbolInContext("foo", 0x20, "b").
		AddSymbolInContext("bar", 0x30, "b")

	offset, err := table.Offset("foo")
	if err != nil {
		t.Fatal(err)
	}

	if offset != 0x10 {
		t.Fatalf("expected 0x10 - got 0x%x", offset)
	}

	_, err = table.Offset("bar")
	if err == nil {
		t.Fatal("expected an error for a symbol missing from the current context")
	}

	table.SetContext("c")

	_, err = table.Offset("foo")
	if err == nil {
		t.Fatal("expected an error for a missing context")
	}
}

func TestAddressTable_Delete(t *testing.T) {
	table := NewAddressTable("a").
		AddSymbolInContext("foo", 0x10, "a").
		AddSymbolInContext("bar", 0x20, "a").
		AddSymbolInContext("foo", 0x30, "b")

	table.DeleteSymbolInAllContexts("foo")

	if !reflect.DeepEqual(table.Symbols(), []string{"bar"}) {
		t.Fatalf("expected only 'bar' to remain - got %v", table.Symbols())
	}

	table.DeleteSymbolFromContext("bar", "a")

	if len(table.Symbols()) != 0 {
		t.Fatalf("expected no symbols - got %v", table.Symbols())
	}

	table.DeleteContext("b")

	if !reflect.DeepEqual(table.Contexts(), []string{"a"}) {
		t.Fatalf("expected only context 'a' to remain - got %v", table.Contexts())
	}
}

func TestAddressTable_OffsetOrExit(t *testing.T) {
	original := DefaultExitFn
	defer func() {
		DefaultExitFn = original
	}()

	var exitErr error
	DefaultExitFn = func(err error) {
		exitErr = err
	}

	NewAddressTable("a").OffsetOrExit("missing")

	if exitErr == nil {
		t.Fatal("expected DefaultExitFn to be called")
	}
}
