package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jsonpathkit/jsonpathkit"
	"github.com/jsonpathkit/jsonpathkit/cmd/jsonpathkit/commands"
	"github.com/jsonpathkit/jsonpathkit/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(commands.ExitUsage)
	}

	command := os.Args[1]
	var code int
	var err error

	switch command {
	case "version", "-v", "--version":
		fmt.Println(jsonpathkit.BuildInfo())
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "path":
		code, err = commands.HandlePath(os.Args[2:])
	case "pointer":
		code, err = commands.HandlePointer(os.Args[2:])
	case "patch":
		code, err = commands.HandlePatch(os.Args[2:])
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if runErr := mcpserver.Run(ctx); runErr != nil {
			commands.Writef(os.Stderr, "Error: %v\n", runErr)
			os.Exit(commands.ExitDomain)
		}
		return
	default:
		commands.Writef(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(commands.ExitUsage)
	}

	if err != nil {
		commands.Writef(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}

func printUsage() {
	fmt.Println(`jsonpathkit - RFC 9535 JSONPath, RFC 6901 Pointer, and RFC 6902 Patch

Usage:
  jsonpathkit <command> [flags]

Commands:
  path       Evaluate a JSONPath query against a document
  pointer    Resolve an RFC 6901 JSON Pointer against a document
  patch      Apply a JSON Patch document to a document
  mcp        Start an MCP server over stdio
  version    Show version information
  help       Show this help message

Examples:
  jsonpathkit path -q '$.store.book[*].author' -f catalog.json
  jsonpathkit pointer -q /store/book/0 -f catalog.json
  jsonpathkit patch -r ops.json -f catalog.json

Run 'jsonpathkit <command> --help' for more information on a command.`)
}
