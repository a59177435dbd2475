package main

import (
	"encoding/binary"
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"gitlab.com/stephen-fox/monokit/obscured"
)

const (
	typeArg    = "t"
	encodeArg  = "e"
	verboseArg = "v"
	helpArg    = "h"

	intType   = "int"
	uintType  = "uint"
	floatType = "float"

	appName = "obscure"
	usage   = appName + `
Decodes an Anti-Cheat Toolkit obscured scalar from the 8 bytes it occupies
in memory: a 4-byte key followed by the 4-byte masked value, both little
endian. The bytes can be copied out of a memory viewer and supplied via
stdin, as a single command line argument, or as several command line
arguments.

When -` + encodeArg + ` is specified, the bytes are re-encoded with the new value using
the same key, and printed in the same format.

usage:
` + appName + ` [options] [hex-string]

examples:
` + appName + ` "a2 31 5c 6d  e1 eb 88 0c"
` + appName + ` -` + typeArg + ` ` + floatType + ` -` + encodeArg + ` 25 a2315c6d a2319c2b

options:
`
)

func main() {
	log.SetFlags(0)

	scalarType := flag.String(
		typeArg,
		intType,
		fmt.Sprintf("The scalar type ('%s', '%s', '%s')", intType, uintType, floatType))
	newValue := flag.String(
		encodeArg,
		"",
		"Encode this value with the existing key")
	verbose := flag.Bool(
		verboseArg,
		false,
		"Enable verbose logging")
	help := flag.Bool(
		helpArg,
		false,
		"Display this help page")

	flag.Parse()

	if *help {
		os.Stderr.WriteString(usage)
		flag.PrintDefaults()
		os.Exit(1)
	}

	var source io.Reader
	switch flag.NArg() {
	case 0:
		source = os.Stdin
	default:
		source = strings.NewReader(strings.Join(flag.Args(), " "))
	}

	raw, err := readHex(source)
	if err != nil {
		log.Fatalf("fatal: failed to read scalar bytes - %s", err)
	}

	if len(raw) != obscured.Size {
		log.Fatalf("fatal: expected %d bytes - got %d", obscured.Size, len(raw))
	}

	var scalar [2]uint32
	scalar[0] = binary.LittleEndian.Uint32(raw[0:4])
	scalar[1] = binary.LittleEndian.Uint32(raw[4:8])

	if *verbose {
		log.Printf("key: 0x%08x, masked: 0x%08x", scalar[0], scalar[1])
	}

	switch *scalarType {
	case intType:
		s := &obscured.Int{Key: int32(scalar[0]), Masked: int32(scalar[1])}
		if *newValue == "" {
			fmt.Println(s.Get())
			return
		}

		v, err := strconv.ParseInt(*newValue, 0, 32)
		if err != nil {
			log.Fatalf("fatal: failed to parse new value - %s", err)
		}

		s.Set(int32(v))
		printScalar(uint32(s.Key), uint32(s.Masked))
	case uintType:
		s := &obscured.Uint{Key: scalar[0], Masked: scalar[1]}
		if *newValue == "" {
			fmt.Println(s.Get())
			return
		}

		v, err := strconv.ParseUint(*newValue, 0, 32)
		if err != nil {
			log.Fatalf("fatal: failed to parse new value - %s", err)
		}

		s.Set(uint32(v))
		printScalar(s.Key, s.Masked)
	case floatType:
		s := &obscured.Float{Key: scalar[0], Masked: scalar[1]}
		if *newValue == "" {
			fmt.Printf("%v (bits: 0x%08x)\n", s.Get(), math.Float32bits(s.Get()))
			return
		}

		v, err := strconv.ParseFloat(*newValue, 32)
		if err != nil {
			log.Fatalf("fatal: failed to parse new value - %s", err)
		}

		s.Set(float32(v))
		printScalar(s.Key, s.Masked)
	default:
		log.Fatalf("fatal: unknown scalar type: '%s'", *scalarType)
	}
}

// readHex decodes whitespace, comma, or quote separated hex. Each field
// may carry a "0x" prefix, and "\x" escapes are allowed anywhere.
func readHex(r io.Reader) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	fields := strings.FieldsFunc(string(raw), func(c rune) bool {
		switch c {
		case '"', ',', ' ', '\t', '\r', '\n':
			return true
		}

		return false
	})

	var hexASCII strings.Builder
	for _, field := range fields {
		field = strings.ReplaceAll(field, "\\x", "")

		if strings.HasPrefix(field, "0x") || strings.HasPrefix(field, "0X") {
			field = field[2:]
		}

		hexASCII.WriteString(field)
	}

	return hex.DecodeString(hexASCII.String())
}

func printScalar(key uint32, masked uint32) {
	out := make([]byte, obscured.Size)
	binary.LittleEndian.PutUint32(out[0:4], key)
	binary.LittleEndian.PutUint32(out[4:8], masked)

	fmt.Printf("% x\n", out)
}
