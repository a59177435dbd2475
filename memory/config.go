package memory

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"gitlab.com/stephen-fox/monokit/conv"
)

// AddressTableFile is the on-disk representation of an AddressTable.
type AddressTableFile struct {
	// Context is the initially selected context. If empty,
	// and the file contains exactly one context, that context
	// is selected.
	Context string `toml:"context"`

	// Contexts maps a context name to its symbols. Each symbol
	// value is either a TOML integer or a string understood by
	// conv.ParseOffset.
	Contexts map[string]map[string]interface{} `toml:"contexts"`
}

// LoadAddressTableOrExit calls LoadAddressTable. If an error occurs,
// DefaultExitFn is invoked.
func LoadAddressTableOrExit(filePath string) *AddressTable {
	table, err := LoadAddressTable(filePath)
	if err != nil {
		DefaultExitFn(err)
	}

	return table
}

// LoadAddressTable parses the TOML file at filePath into an *AddressTable.
// Refer to the package documentation for the file's format.
func LoadAddressTable(filePath string) (*AddressTable, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open address table file - %w", err)
	}
	defer f.Close()

	table, err := DecodeAddressTable(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode '%s' - %w", filePath, err)
	}

	return table, nil
}

// DecodeAddressTable decodes TOML from r into an *AddressTable.
func DecodeAddressTable(r io.Reader) (*AddressTable, error) {
	var file AddressTableFile

	_, err := toml.NewDecoder(r).Decode(&file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse toml - %w", err)
	}

	initialContext := file.Context
	if initialContext == "" && len(file.Contexts) == 1 {
		for context := range file.Contexts {
			initialContext = context
		}
	}

	table := NewAddressTable(initialContext)

	for context, symbols := range file.Contexts {
		for symbol, rawValue := range symbols {
			offset, err := offsetFromTOML(rawValue)
			if err != nil {
				return nil, fmt.Errorf("failed to parse offset of '%s' in context '%s' - %w",
					symbol, context, err)
			}

			table.AddSymbolInContext(symbol, offset, context)
		}
	}

	if initialContext != "" {
		if _, hasIt := table.contextToSymbolsToOffsets[initialContext]; !hasIt {
			return nil, fmt.Errorf("selected context '%s' has no symbols", initialContext)
		}
	}

	return table, nil
}

func offsetFromTOML(rawValue interface{}) (uint64, error) {
	switch v := rawValue.(type) {
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("offset cannot be negative (%d)", v)
		}

		return uint64(v), nil
	case string:
		return conv.ParseOffset(v)
	default:
		return 0, fmt.Errorf("unsupported offset type %T", rawValue)
	}
}
