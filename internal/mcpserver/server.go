// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes jsonpathkit's query, pointer, and patch engines as MCP tools over
// stdio.
package mcpserver

import (
	"context"
	"regexp"

	jsonpathkit "github.com/jsonpathkit/jsonpathkit"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `jsonpathkit MCP server — evaluates RFC 9535 JSONPath queries, resolves RFC 6901 JSON Pointers and Relative JSON Pointers, and applies RFC 6902 JSON Patch documents.

Configuration: defaults are configurable via JSONPATHKIT_* environment variables.

Key settings:
- JSONPATHKIT_MAX_RECURSION_DEPTH (default: 100) — descendant-segment recursion bound
- JSONPATHKIT_REGEX_CACHE_SIZE (default: 300) — compiled-pattern cache capacity
- JSONPATHKIT_STRICT (default: false) — reject non-standard extensions by default`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or ctx is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "jsonpathkit", Version: jsonpathkit.Version()},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "query",
		Description: "Evaluate a JSONPath query (RFC 9535, with optional non-standard extensions) against a JSON or YAML document. Returns matched values and their normalized locations. Use strict=true to reject non-standard extensions.",
	}, handleQuery)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "pointer_resolve",
		Description: "Resolve an RFC 6901 JSON Pointer, or an IETF Relative JSON Pointer anchored to a base pointer, against a JSON or YAML document.",
	}, handlePointerResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "patch_apply",
		Description: "Apply an RFC 6902 JSON Patch document (add, remove, replace, move, copy, test operations) to a JSON or YAML document and return the result.",
	}, handlePatchApply)
}

// sanitizeError strips absolute filesystem paths from error messages to
// avoid leaking local directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
