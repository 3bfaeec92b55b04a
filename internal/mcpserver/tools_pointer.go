package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
	"github.com/jsonpathkit/jsonpathkit/pointer"
)

type pointerResolveInput struct {
	Document string `json:"document" jsonschema:"The JSON or YAML document to resolve against"`
	Pointer  string `json:"pointer" jsonschema:"An RFC 6901 JSON Pointer, e.g. /foo/0"`
	Base     string `json:"base,omitempty" jsonschema:"Base pointer a Relative JSON Pointer in 'pointer' is anchored to"`
}

type pointerResolveOutput struct {
	Value any `json:"value"`
}

func handlePointerResolve(_ context.Context, _ *mcp.CallToolRequest, input pointerResolveInput) (*mcp.CallToolResult, pointerResolveOutput, error) {
	doc, err := jsonvalue.Decode([]byte(input.Document))
	if err != nil {
		return errResult(err), pointerResolveOutput{}, nil
	}

	if input.Base != "" {
		base, err := pointer.Parse(input.Base)
		if err != nil {
			return errResult(err), pointerResolveOutput{}, nil
		}
		rel, err := pointer.ParseRelative(input.Pointer)
		if err != nil {
			return errResult(err), pointerResolveOutput{}, nil
		}
		val, err := rel.Resolve(base, doc)
		if err != nil {
			return errResult(err), pointerResolveOutput{}, nil
		}
		return nil, pointerResolveOutput{Value: val}, nil
	}

	p, err := pointer.Parse(input.Pointer)
	if err != nil {
		return errResult(err), pointerResolveOutput{}, nil
	}
	val, err := pointer.Resolve(p, doc)
	if err != nil {
		return errResult(err), pointerResolveOutput{}, nil
	}
	return nil, pointerResolveOutput{Value: val}, nil
}
