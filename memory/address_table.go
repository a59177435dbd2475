package memory

import (
	"fmt"
	"sort"
)

// NewAddressTable creates a new instance of an *AddressTable with
// the specified initial context. Refer to AddressTable's documentation
// for more information.
func NewAddressTable(initialContext string) *AddressTable {
	return &AddressTable{
		currentContext:            initialContext,
		contextToSymbolsToOffsets: make(map[string]map[string]uint64),
	}
}

// AddressTable helps organize link-time offsets of symbols in different
// contexts. A context is typically a build of the target program, such
// as "ios-2.3.1" or "android-arm64-2.4.0".
//
// Offsets found in one build of a Unity game are almost never valid in
// the next build. Rather than commenting out constants whenever the
// target updates, track the offsets for each build in an AddressTable
// and switch between them by changing the current context.
//
// Offsets stored here are link-time values. They must be rebased onto
// the running image (refer to the aslr package) before use.
type AddressTable struct {
	currentContext            string
	contextToSymbolsToOffsets map[string]map[string]uint64
}

// SetContext sets the current context to the specified value.
func (o *AddressTable) SetContext(context string) *AddressTable {
	o.currentContext = context
	return o
}

// DeleteContext deletes the specified context.
func (o *AddressTable) DeleteContext(context string) *AddressTable {
	delete(o.contextToSymbolsToOffsets, context)
	return o
}

// AddSymbolInContext adds or sets the offset of a symbol for
// the specified context.
func (o *AddressTable) AddSymbolInContext(symbolName string, offset uint64, context string) *AddressTable {
	symbolsToOffsets := o.contextToSymbolsToOffsets[context]
	if symbolsToOffsets == nil {
		symbolsToOffsets = make(map[string]uint64)
	}

	symbolsToOffsets[symbolName] = offset
	o.contextToSymbolsToOffsets[context] = symbolsToOffsets

	return o
}

// DeleteSymbolFromContext deletes a symbol from the specified context.
func (o *AddressTable) DeleteSymbolFromContext(symbolName string, context string) *AddressTable {
	symbolsToOffsets, hasIt := o.contextToSymbolsToOffsets[context]
	if hasIt {
		delete(symbolsToOffsets, symbolName)
	}
	return o
}

// DeleteSymbolInAllContexts deletes the specified symbol from all contexts.
func (o *AddressTable) DeleteSymbolInAllContexts(symbolName string) *AddressTable {
	for _, symbolsToOffsets := range o.contextToSymbolsToOffsets {
		delete(symbolsToOffsets, symbolName)
	}
	return o
}

// CurrentContext returns the current context.
func (o *AddressTable) CurrentContext() string {
	return o.currentContext
}

// Contexts returns the names of all contexts in sorted order.
func (o *AddressTable) Contexts() []string {
	contexts := make([]string, 0, len(o.contextToSymbolsToOffsets))
	for context := range o.contextToSymbolsToOffsets {
		contexts = append(contexts, context)
	}

	sort.Strings(contexts)

	return contexts
}

// Symbols returns the names of the symbols in the current context
// in sorted order.
func (o *AddressTable) Symbols() []string {
	symbolsToOffsets := o.contextToSymbolsToOffsets[o.currentContext]

	symbols := make([]string, 0, len(symbolsToOffsets))
	for symbol := range symbolsToOffsets {
		symbols = append(symbols, symbol)
	}

	sort.Strings(symbols)

	return symbols
}

// OffsetOrExit returns the offset of the specified symbol for the
// currently selected context.
//
// If the context or the symbol do not exist, then DefaultExitFn is invoked.
func (o *AddressTable) OffsetOrExit(symbolName string) uint64 {
	offset, err := o.Offset(symbolName)
	if err != nil {
		DefaultExitFn(err)
	}

	return offset
}

// Offset returns the offset of the specified symbol for the
// currently selected context.
func (o *AddressTable) Offset(symbolName string) (uint64, error) {
	symbolsToOffsets, hasIt := o.contextToSymbolsToOffsets[o.currentContext]
	if !hasIt {
		return 0, fmt.Errorf("the current context ('%s') is not in the lookup table",
			o.currentContext)
	}

	offset, hasIt := symbolsToOffsets[symbolName]
	if !hasIt {
		return 0, fmt.Errorf("failed to find the symbol '%s' in the table for '%s'",
			symbolName, o.currentContext)
	}

	return offset, nil
}
