package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/componentry/barrelgen/pkg/barrel"
)

// ToolNameGenerate is the barrel generation tool name.
const ToolNameGenerate = "barrel_generate"

const generateToolDescription = `Scan a directory of TypeScript/TSX UI component sources and render a barrel
(re-export) file, classifying each export as a value or a type. Set dry_run
to preview the render without writing the output file.`

// ErrEmptyDir indicates the dir input was missing.
var ErrEmptyDir = errors.New("dir is required")

// GenerateInput is the input schema for the barrel_generate tool.
type GenerateInput struct {
	Dir                 string `json:"dir"                             jsonschema:"directory of component source files"`
	Output              string `json:"output,omitempty"                jsonschema:"output file name (default index.ts)"`
	Ext                 string `json:"ext,omitempty"                   jsonschema:"literal extension for generated module specifiers (e.g. .js)"`
	SingleLineThreshold int    `json:"single_line_threshold,omitempty" jsonschema:"maximum export count rendered on a single line (default 3)"`
	NoSort              bool   `json:"no_sort,omitempty"               jsonschema:"keep directory enumeration order instead of sorting"`
	DryRun              bool   `json:"dry_run,omitempty"               jsonschema:"render without writing the output file"`
}

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// handleGenerate processes barrel_generate tool calls.
func handleGenerate(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input GenerateInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	if input.Dir == "" {
		return errorResult(ErrEmptyDir)
	}

	opts := barrel.Options{
		Dir:                 input.Dir,
		Output:              input.Output,
		NoSort:              input.NoSort,
		SingleLineThreshold: input.SingleLineThreshold,
		DryRun:              input.DryRun,
		Stdout:              io.Discard,
		Stderr:              io.Discard,
	}

	if input.Ext != "" {
		opts.ExtMode = barrel.ExtModeOverride
		opts.Ext = input.Ext
	}

	res, err := barrel.Generate(ctx, opts)
	if err != nil {
		return errorResult(fmt.Errorf("generate barrel: %w", err))
	}

	return jsonResult(res)
}

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}
