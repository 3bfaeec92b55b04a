package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/jsonpathkit/jsonpathkit/jsonvalue"
	"github.com/jsonpathkit/jsonpathkit/patch"
)

type patchOperationInput struct {
	Op    string `json:"op" jsonschema:"One of add, remove, replace, move, copy, test"`
	Path  string `json:"path" jsonschema:"RFC 6901 JSON Pointer target"`
	From  string `json:"from,omitempty" jsonschema:"Source pointer for move and copy"`
	Value any    `json:"value,omitempty" jsonschema:"Value for add, replace, and test"`
}

type patchApplyInput struct {
	Document   string                `json:"document" jsonschema:"The JSON or YAML document to patch"`
	Operations []patchOperationInput `json:"operations" jsonschema:"The JSON Patch operations to apply, in order"`
}

type patchApplyOutput struct {
	Result any `json:"result"`
}

func handlePatchApply(_ context.Context, _ *mcp.CallToolRequest, input patchApplyInput) (*mcp.CallToolResult, patchApplyOutput, error) {
	doc, err := jsonvalue.Decode([]byte(input.Document))
	if err != nil {
		return errResult(err), patchApplyOutput{}, nil
	}

	ops := make([]patch.Operation, len(input.Operations))
	for i, o := range input.Operations {
		ops[i] = patch.Operation{Op: patch.OpKind(o.Op), Path: o.Path, From: o.From, Value: o.Value}
	}

	result, err := patch.Apply(ops, doc)
	if err != nil {
		return errResult(err), patchApplyOutput{}, nil
	}
	return nil, patchApplyOutput{Result: result}, nil
}
