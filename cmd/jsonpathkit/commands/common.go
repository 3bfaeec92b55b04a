// Package commands provides CLI command handlers for jsonpathkit.
package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/jsonpathkit/jsonpathkit/internal/cliutil"
	"github.com/jsonpathkit/jsonpathkit/internal/fileutil"
	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Exit codes per the CLI's documented contract: 0 success, 1 a domain
// error (syntax/type/index, decode, or patch failure), 2 an argument
// parsing error.
const (
	ExitSuccess = 0
	ExitDomain  = 1
	ExitUsage   = 2
)

// Writef writes formatted output to w, logging to stderr if the write itself fails.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// ReadDocument reads and decodes a JSON or YAML document from path, or from
// stdin when path is StdinFilePath.
func ReadDocument(path string) (any, error) {
	var data []byte
	var err error
	if path == StdinFilePath {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	return jsonvalue.Decode(data)
}

// ReadQuery returns the query text from either an inline flag value or a file.
func ReadQuery(inline, file string) (string, error) {
	if inline != "" {
		return inline, nil
	}
	if file == "" {
		return "", fmt.Errorf("one of -q/--query or -r/--query-file is required")
	}
	if file == StdinFilePath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading query from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("reading query file: %w", err)
	}
	return string(data), nil
}

// WriteOutput writes data to path, or to stdout when path is empty.
func WriteOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(path, data, fileutil.ReadableByAll)
}
