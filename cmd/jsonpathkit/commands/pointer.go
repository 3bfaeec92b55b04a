package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
	"github.com/jsonpathkit/jsonpathkit/pointer"
)

// PointerFlags holds flags for the pointer command.
type PointerFlags struct {
	Query           string
	QueryFile       string
	File            string
	Output          string
	Pretty          bool
	NoUnicodeEscape bool
	URIDecode       bool
}

// SetupPointerFlags builds the pointer subcommand's FlagSet.
func SetupPointerFlags() (*flag.FlagSet, *PointerFlags) {
	fs := flag.NewFlagSet("pointer", flag.ContinueOnError)
	flags := &PointerFlags{}

	fs.StringVar(&flags.Query, "q", "", "RFC 6901 JSON Pointer (relative pointers are not accepted)")
	fs.StringVar(&flags.Query, "query", "", "RFC 6901 JSON Pointer (relative pointers are not accepted)")
	fs.StringVar(&flags.QueryFile, "r", "", "file containing the pointer")
	fs.StringVar(&flags.QueryFile, "query-file", "", "file containing the pointer")
	fs.StringVar(&flags.File, "f", "", "document file to resolve against ('-' for stdin)")
	fs.StringVar(&flags.File, "file", "", "document file to resolve against ('-' for stdin)")
	fs.StringVar(&flags.Output, "o", "", "output file (default stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file (default stdout)")
	fs.BoolVar(&flags.Pretty, "pretty", false, "indent JSON output")
	fs.BoolVar(&flags.NoUnicodeEscape, "no-unicode-escape", false, "emit non-ASCII runes literally")
	fs.BoolVar(&flags.URIDecode, "uri-decode", false, "percent-decode the pointer before resolving")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: jsonpathkit pointer [flags]\n\n")
		Writef(output, "Resolve an RFC 6901 JSON Pointer against a JSON or YAML document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  jsonpathkit pointer -q /store/book/0 -f catalog.json\n")
	}
	return fs, flags
}

// HandlePointer executes the pointer command. It returns (exitCode, error).
func HandlePointer(args []string) (int, error) {
	fs, flags := SetupPointerFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess, nil
		}
		return ExitUsage, err
	}
	if flags.File == "" {
		fs.Usage()
		return ExitUsage, errors.New("pointer command requires -f/--file")
	}

	query, err := ReadQuery(flags.Query, flags.QueryFile)
	if err != nil {
		fs.Usage()
		return ExitUsage, err
	}

	doc, err := ReadDocument(flags.File)
	if err != nil {
		return ExitDomain, err
	}

	var popts []pointer.Option
	if flags.URIDecode {
		popts = append(popts, pointer.WithURIDecode())
	}
	p, err := pointer.Parse(query, popts...)
	if err != nil {
		return ExitDomain, err
	}
	value, err := pointer.Resolve(p, doc)
	if err != nil {
		return ExitDomain, err
	}

	encoded := jsonvalue.Encode(value, jsonvalue.EncodeOptions{
		Pretty:          flags.Pretty,
		NoUnicodeEscape: flags.NoUnicodeEscape,
	})
	if err := WriteOutput(flags.Output, []byte(encoded)); err != nil {
		return ExitDomain, fmt.Errorf("writing output: %w", err)
	}
	return ExitSuccess, nil
}
