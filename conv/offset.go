// Package conv converts between the textual forms offsets take in
// disassemblers and the integer offsets used by the rest of monokit.
package conv

import (
	"fmt"
	"strconv"
	"strings"
)

// namePrefixes are the auto-generated name prefixes IDA and Ghidra
// attach to addresses, such as "sub_101DD74E8" or "DAT_1026e0f20".
var namePrefixes = []string{
	// IDA.
	"sub_",
	"nullsub_",
	"j_",
	"loc_",
	"locret_",
	"off_",
	"unk_",
	"byte_",
	"word_",
	"dword_",
	"qword_",
	"xmmword_",
	"stru_",
	"asc_",
	"flt_",
	"dbl_",
	// Ghidra.
	"FUN_",
	"LAB_",
	"DAT_",
	"PTR_",
}

// arm64 relocation operators that IDA appends to ADRP/LDR operands.
var operatorSuffixes = []string{
	"@PAGEOFF",
	"@PAGE",
}

// ParseOffsetOrExit calls ParseOffset. If an error occurs,
// DefaultExitFn is invoked.
func ParseOffsetOrExit(str string) uint64 {
	offset, err := ParseOffset(str)
	if err != nil {
		DefaultExitFn(err)
	}

	return offset
}

// ParseOffset parses an offset copied out of a disassembler.
//
// The following forms are accepted, and are always interpreted
// as hexadecimal:
//	0x101DD74E8
//	101DD74E8
//	sub_101DD74E8
//	#qword_1026E0F20@PAGEOFF
//	FUN_101dd74e8
func ParseOffset(str string) (uint64, error) {
	trimmed := strings.TrimSpace(str)
	trimmed = strings.TrimPrefix(trimmed, "#")

	for _, suffix := range operatorSuffixes {
		if strings.HasSuffix(trimmed, suffix) {
			trimmed = strings.TrimSuffix(trimmed, suffix)
			break
		}
	}

	for _, prefix := range namePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			trimmed = strings.TrimPrefix(trimmed, prefix)
			break
		}
	}

	if strings.HasPrefix(trimmed, "0x") || strings.HasPrefix(trimmed, "0X") {
		trimmed = trimmed[2:]
	}

	if trimmed == "" {
		return 0, fmt.Errorf("offset string '%s' contains no hex digits", str)
	}

	offset, err := strconv.ParseUint(trimmed, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse offset string '%s' - %w", str, err)
	}

	return offset, nil
}

// FormatOffset formats offset as a 0x-prefixed hex string.
func FormatOffset(offset uint64) string {
	return "0x" + strconv.FormatUint(offset, 16)
}
