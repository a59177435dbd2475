package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadHex(t *testing.T) {
	exp := []byte{0xa2, 0x31, 0x5c, 0x6d, 0xe1, 0xeb, 0x88, 0x0c}

	inputs := []string{
		"a2 31 5c 6d  e1 eb 88 0c",
		"a2315c6de1eb880c\n",
		"0xa2315c6d 0xe1eb880c",
		"0Xa2315c6d,0xe1eb880c",
		`"\xa2\x31\x5c\x6d\xe1\xeb\x88\x0c"`,
		"0xa2 0x31 0x5c 0x6d 0xe1 0xeb 0x88 0x0c",
	}

	for _, input := range inputs {
		res, err := readHex(strings.NewReader(input))
		if err != nil {
			t.Fatalf("%q - %s", input, err)
		}

		if !bytes.Equal(res, exp) {
			t.Fatalf("%q: expected % x - got % x", input, exp, res)
		}
	}
}

func TestReadHex_Invalid(t *testing.T) {
	for _, input := range []string{"a2 3", "zz", "0x0xa2"} {
		_, err := readHex(strings.NewReader(input))
		if err == nil {
			t.Fatalf("expected an error for %q", input)
		}
	}
}
