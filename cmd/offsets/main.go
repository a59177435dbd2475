package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"gitlab.com/stephen-fox/monokit/aslr"
	"gitlab.com/stephen-fox/monokit/conv"
	"gitlab.com/stephen-fox/monokit/memory"
	"go.uber.org/zap"
)

const (
	contextArg      = "c"
	biasArg         = "b"
	symbolArg       = "s"
	listContextsArg = "l"
	verboseArg      = "v"
	helpArg         = "h"

	appName = "offsets"
	usage   = appName + `
DESCRIPTION
  Rebases the offsets in an offsets file onto a load bias, printing the
  address each symbol will have in a running process. The bias can be
  found in a debugger, or computed as the runtime address of any symbol
  minus its offset.

USAGE
  ` + appName + ` [options] OFFSETS-FILE

EXAMPLES:
  List the contexts in a file:
    $ ` + appName + ` -` + listContextsArg + ` offsets.toml

  Resolve every symbol of a context:
    $ ` + appName + ` -` + contextArg + ` ios-2.3.1 -` + biasArg + ` 0x4c000 offsets.toml
    array_allocator     0x101dd74e8  0x101e234e8
    array_class_slot    0x1026e0f20  0x10272cf20
    string_constructor  0x101dd8af8  0x101e24af8

OPTIONS
`
)

func main() {
	log.SetFlags(0)

	err := mainWithError()
	if err != nil {
		log.Fatalln("fatal:", err)
	}
}

func mainWithError() error {
	help := flag.Bool(
		helpArg,
		false,
		"Display this information")

	context := flag.String(
		contextArg,
		"",
		"The context to use (defaults to the file's context)")

	biasStr := flag.String(
		biasArg,
		"0",
		"The load bias to add to each offset, in hex")

	symbol := flag.String(
		symbolArg,
		"",
		"Only resolve the specified symbol")

	listContexts := flag.Bool(
		listContextsArg,
		false,
		"List the contexts in the file and exit")

	verbose := flag.Bool(
		verboseArg,
		false,
		"Enable verbose logging")

	flag.Parse()

	if *help {
		os.Stderr.WriteString(usage)
		flag.PrintDefaults()
		os.Exit(1)
	}

	if flag.NArg() != 1 {
		return errors.New("please specify an offsets file")
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to create logger - %w", err)
		}
		defer logger.Sync()

		aslr.SetLogger(logger)
	}

	table, err := memory.LoadAddressTable(flag.Arg(0))
	if err != nil {
		return err
	}

	if *listContexts {
		for _, c := range table.Contexts() {
			if c == table.CurrentContext() {
				fmt.Println(c, "(default)")
			} else {
				fmt.Println(c)
			}
		}

		return nil
	}

	if *context != "" {
		table.SetContext(*context)
	}

	if table.CurrentContext() == "" {
		return fmt.Errorf("the file has multiple contexts, please specify one using -%s",
			contextArg)
	}

	bias, err := conv.ParseOffset(*biasStr)
	if err != nil {
		return fmt.Errorf("failed to parse bias - %w", err)
	}

	resolver := &aslr.Resolver{Source: aslr.Static(uintptr(bias))}

	symbols := table.Symbols()
	if *symbol != "" {
		symbols = []string{*symbol}
	}

	if len(symbols) == 0 {
		return fmt.Errorf("context '%s' has no symbols", table.CurrentContext())
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	for _, s := range symbols {
		offset, err := table.Offset(s)
		if err != nil {
			return err
		}

		addr, err := resolver.Resolve(offset)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\t%s\t0x%x\n", s, conv.FormatOffset(offset), addr)
	}

	return w.Flush()
}
