package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsonpathkit/jsonpathkit/jsonpath"
	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
)

type queryInput struct {
	Document string `json:"document" jsonschema:"The JSON or YAML document to query"`
	Path     string `json:"path" jsonschema:"The JSONPath query expression"`
	Strict   bool   `json:"strict,omitempty" jsonschema:"Reject non-standard extensions"`
}

type queryMatch struct {
	Location string `json:"location"`
	Value    any    `json:"value"`
}

type queryOutput struct {
	Matches []queryMatch `json:"matches"`
	Count   int          `json:"count"`
}

func handleQuery(_ context.Context, _ *mcp.CallToolRequest, input queryInput) (*mcp.CallToolResult, queryOutput, error) {
	doc, err := jsonvalue.Decode([]byte(input.Document))
	if err != nil {
		return errResult(err), queryOutput{}, nil
	}

	opts := []jsonpath.Option{
		jsonpath.WithMaxRecursionDepth(cfg.DefaultMaxRecursionDepth),
		jsonpath.WithRegexCacheCapacity(cfg.DefaultRegexCacheSize),
	}
	if input.Strict || cfg.StrictByDefault {
		opts = append(opts, jsonpath.WithStrict())
	}
	path, err := jsonpath.Compile(input.Path, opts...)
	if err != nil {
		return errResult(err), queryOutput{}, nil
	}

	nodes, err := path.FindAll(doc)
	if err != nil {
		return errResult(err), queryOutput{}, nil
	}

	out := queryOutput{Matches: make([]queryMatch, len(nodes)), Count: len(nodes)}
	for i, n := range nodes {
		out.Matches[i] = queryMatch{Location: n.Location(), Value: n.Value}
	}
	return nil, out, nil
}
