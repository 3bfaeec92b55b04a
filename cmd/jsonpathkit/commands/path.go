package commands

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jsonpathkit/jsonpathkit/internal/cliutil"
	"github.com/jsonpathkit/jsonpathkit/jsonpath"
	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
)

// PathFlags holds flags for the path command.
type PathFlags struct {
	Query           string
	QueryFile       string
	File            string
	Output          string
	Strict          bool
	Pretty          bool
	Table           bool
	Debug           bool
	NoUnicodeEscape bool
}

// SetupPathFlags builds the path subcommand's FlagSet.
func SetupPathFlags() (*flag.FlagSet, *PathFlags) {
	fs := flag.NewFlagSet("path", flag.ContinueOnError)
	flags := &PathFlags{}

	fs.StringVar(&flags.Query, "q", "", "JSONPath query expression")
	fs.StringVar(&flags.Query, "query", "", "JSONPath query expression")
	fs.StringVar(&flags.QueryFile, "r", "", "file containing the JSONPath query expression")
	fs.StringVar(&flags.QueryFile, "query-file", "", "file containing the JSONPath query expression")
	fs.StringVar(&flags.File, "f", "", "document file to query ('-' for stdin)")
	fs.StringVar(&flags.File, "file", "", "document file to query ('-' for stdin)")
	fs.StringVar(&flags.Output, "o", "", "output file (default stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file (default stdout)")
	fs.BoolVar(&flags.Strict, "strict", false, "reject non-standard extensions")
	fs.BoolVar(&flags.Pretty, "pretty", false, "indent JSON output")
	fs.BoolVar(&flags.Table, "table", false, "render matches as a location/value table instead of JSON")
	fs.BoolVar(&flags.Debug, "debug", false, "surface regex compilation failures")
	fs.BoolVar(&flags.NoUnicodeEscape, "no-unicode-escape", false, "emit non-ASCII runes literally")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: jsonpathkit path [flags]\n\n")
		Writef(output, "Evaluate a JSONPath query against a JSON or YAML document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  jsonpathkit path -q '$.store.book[*].author' -f catalog.json\n")
		Writef(output, "  cat catalog.yaml | jsonpathkit path -q '$..price' -f -\n")
	}
	return fs, flags
}

// HandlePath executes the path command. It returns (exitCode, error).
func HandlePath(args []string) (int, error) {
	fs, flags := SetupPathFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess, nil
		}
		return ExitUsage, err
	}
	if flags.File == "" {
		fs.Usage()
		return ExitUsage, errors.New("path command requires -f/--file")
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

	opts := []jsonpath.Option{}
	if flags.Strict {
		opts = append(opts, jsonpath.WithStrict())
	}
	if flags.Debug {
		handler := slog.NewTextHandler(os.Stderr, nil)
		opts = append(opts, jsonpath.WithDebug(), jsonpath.WithLogger(jsonpath.NewSlogAdapter(slog.New(handler))))
	}
	compiled, err := jsonpath.Compile(query, opts...)
	if err != nil {
		return ExitDomain, err
	}

	nodes, err := compiled.FindAll(doc)
	if err != nil {
		return ExitDomain, err
	}

	if flags.Table {
		rows := make([][2]string, len(nodes))
		for i, n := range nodes {
			rows[i] = [2]string{n.Location(), jsonvalue.Encode(n.Value, jsonvalue.EncodeOptions{NoUnicodeEscape: flags.NoUnicodeEscape})}
		}
		if err := WriteOutput(flags.Output, []byte(strings.TrimSuffix(cliutil.RenderTable(rows), "\n"))); err != nil {
			return ExitDomain, fmt.Errorf("writing output: %w", err)
		}
		return ExitSuccess, nil
	}

	values := make([]any, len(nodes))
	for i, n := range nodes {
		values[i] = n.Value
	}
	encoded := jsonvalue.Encode(values, jsonvalue.EncodeOptions{
		Pretty:          flags.Pretty,
		NoUnicodeEscape: flags.NoUnicodeEscape,
	})
	if err := WriteOutput(flags.Output, []byte(encoded)); err != nil {
		return ExitDomain, fmt.Errorf("writing output: %w", err)
	}
	return ExitSuccess, nil
}
