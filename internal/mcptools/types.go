package mcptools

import "github.com/dusk-indust/sowbuilder/internal/sow"

// --- MCP Tool Types ---
// open_builder returns the placeholder document the widget starts from;
// generate_sow validates the form fields and returns the rendered SOW.

// OpenBuilderInput is the input for the open_builder MCP tool. It has no
// fields.
type OpenBuilderInput struct{}

// GenerateSOWInput is the input for the generate_sow MCP tool.
type GenerateSOWInput = sow.Request

// DocumentOutput is the result of both tools: an empty placeholder for
// open_builder, a generated document for generate_sow.
type DocumentOutput = sow.Payload
