package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
	"github.com/jsonpathkit/jsonpathkit/patch"
)

// PatchFlags holds flags for the patch command.
type PatchFlags struct {
	Query           string
	QueryFile       string
	File            string
	Output          string
	Pretty          bool
	NoUnicodeEscape bool
}

// SetupPatchFlags builds the patch subcommand's FlagSet.
func SetupPatchFlags() (*flag.FlagSet, *PatchFlags) {
	fs := flag.NewFlagSet("patch", flag.ContinueOnError)
	flags := &PatchFlags{}

	fs.StringVar(&flags.Query, "q", "", "JSON Patch document (a JSON or YAML array of operations)")
	fs.StringVar(&flags.Query, "query", "", "JSON Patch document (a JSON or YAML array of operations)")
	fs.StringVar(&flags.QueryFile, "r", "", "file containing the JSON Patch document")
	fs.StringVar(&flags.QueryFile, "query-file", "", "file containing the JSON Patch document")
	fs.StringVar(&flags.File, "f", "", "document file to patch ('-' for stdin)")
	fs.StringVar(&flags.File, "file", "", "document file to patch ('-' for stdin)")
	fs.StringVar(&flags.Output, "o", "", "output file (default stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file (default stdout)")
	fs.BoolVar(&flags.Pretty, "pretty", false, "indent JSON output")
	fs.BoolVar(&flags.NoUnicodeEscape, "no-unicode-escape", false, "emit non-ASCII runes literally")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: jsonpathkit patch [flags]\n\n")
		Writef(output, "Apply an RFC 6902 JSON Patch document to a JSON or YAML document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  jsonpathkit patch -r ops.json -f catalog.json\n")
	}
	return fs, flags
}

// HandlePatch executes the patch command. It returns (exitCode, error).
func HandlePatch(args []string) (int, error) {
	fs, flags := SetupPatchFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess, nil
		}
		return ExitUsage, err
	}
	if flags.File == "" {
		fs.Usage()
		return ExitUsage, errors.New("patch command requires -f/--file")
	}

	opsText, err := ReadQuery(flags.Query, flags.QueryFile)
	if err != nil {
		fs.Usage()
		return ExitUsage, err
	}

	doc, err := ReadDocument(flags.File)
	if err != nil {
		return ExitDomain, err
	}

	ops, err := decodeOperations([]byte(opsText))
	if err != nil {
		return ExitDomain, err
	}

	result, err := patch.Apply(ops, doc)
	if err != nil {
		return ExitDomain, err
	}

	encoded := jsonvalue.Encode(result, jsonvalue.EncodeOptions{
		Pretty:          flags.Pretty,
		NoUnicodeEscape: flags.NoUnicodeEscape,
	})
	if err := WriteOutput(flags.Output, []byte(encoded)); err != nil {
		return ExitDomain, fmt.Errorf("writing output: %w", err)
	}
	return ExitSuccess, nil
}

// decodeOperations decodes a JSON or YAML array of patch operations.
func decodeOperations(data []byte) ([]patch.Operation, error) {
	decoded, err := jsonvalue.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding patch document: %w", err)
	}
	arr, ok := decoded.([]any)
	if !ok {
		return nil, errors.New("patch document must be an array of operations")
	}
	ops := make([]patch.Operation, len(arr))
	for i, item := range arr {
		obj, ok := item.(*jsonvalue.Object)
		if !ok {
			return nil, fmt.Errorf("operation %d: expected an object", i)
		}
		op, _ := obj.Get("op")
		opStr, _ := op.(string)
		path, _ := obj.Get("path")
		pathStr, _ := path.(string)
		from, _ := obj.Get("from")
		fromStr, _ := from.(string)
		value, _ := obj.Get("value")
		ops[i] = patch.Operation{Op: patch.OpKind(opStr), Path: pathStr, From: fromStr, Value: value}
	}
	return ops, nil
}
