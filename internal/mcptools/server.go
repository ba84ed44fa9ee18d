package mcptools

import (
	"context"
	"errors"
	"io"

	"github.com/dusk-indust/sowbuilder/internal/sow"
	"github.com/dusk-indust/sowbuilder/internal/widget"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// version is reported as serverInfo.version. The CLI passes its own
// linker-set version through SetVersion.
var version = "dev"

// SetVersion sets the version reported by servers created afterwards.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

const instructions = "Call open_builder to show the SOW builder form. " +
	"Call generate_sow with project_name, goal and deliverables (one per line) " +
	"to produce a Statement of Work; client, timeline_weeks (1-104) and constraints are optional."

// NewSOWMCPServer creates an MCP server with open_builder, generate_sow and
// the builder widget resource registered.
func NewSOWMCPServer(svc *SOWService) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "sowbuilder",
		Version: version,
	}, &mcp.ServerOptions{Instructions: instructions})

	server.AddReceivingMiddleware(recoverPanics(svc.logger))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "open_builder",
		Description: "Open the Statement of Work builder. Returns an empty document and shows a form that collects the project fields.",
		Meta:        widgetMeta("Opening SOW builder…", "SOW builder ready"),
	}, svc.OpenBuilder)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_sow",
		Description: "Generate a Statement of Work (SOW) from project fields. Returns the document as ordered sections and as Markdown.",
		InputSchema: generateSOWInputSchema(),
		Meta:        widgetMeta("Generating SOW…", "SOW generated"),
	}, svc.GenerateSOW)

	server.AddResource(&mcp.Resource{
		URI:         widget.URI,
		Name:        "sow-builder",
		Description: "Interactive form for building a Statement of Work.",
		MIMEType:    widget.MIMEType,
	}, readWidget)

	return server
}

// RunIO runs the MCP server over newline-delimited JSON on in and out,
// blocking until in is closed or the context is cancelled. The CLI passes
// stdin and stdout.
func RunIO(ctx context.Context, server *mcp.Server, in io.ReadCloser, out io.WriteCloser) error {
	err := server.Run(ctx, &mcp.IOTransport{Reader: in, Writer: out})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func readWidget(_ context.Context, _ *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      widget.URI,
			MIMEType: widget.MIMEType,
			Text:     widget.HTML(),
		}},
	}, nil
}

func widgetMeta(invoking, invoked string) mcp.Meta {
	return mcp.Meta{
		"openai/outputTemplate":          widget.URI,
		"openai/toolInvocation/invoking": invoking,
		"openai/toolInvocation/invoked":  invoked,
		"openai/widgetAccessible":        true,
	}
}

// generateSOWInputSchema describes sow.Request, including the bounds that
// sow.Validate enforces.
func generateSOWInputSchema() *jsonschema.Schema {
	text := func(desc string) *jsonschema.Schema {
		return &jsonschema.Schema{Type: "string", MinLength: ptr(1), Description: desc}
	}
	optional := func(desc string) *jsonschema.Schema {
		return &jsonschema.Schema{Types: []string{"null", "string"}, Description: desc}
	}
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"project_name": text("project name"),
			"client":       optional("client name"),
			"goal":         text("what the project should achieve"),
			"deliverables": text("deliverables, one per line"),
			"timeline_weeks": {
				Types:       []string{"null", "integer"},
				Minimum:     ptr(float64(sow.MinTimelineWeeks)),
				Maximum:     ptr(float64(sow.MaxTimelineWeeks)),
				Description: "target timeline in weeks",
			},
			"constraints": optional("constraints or notes, free-form"),
		},
		Required: []string{"project_name", "goal", "deliverables"},
	}
}

func ptr[T any](v T) *T { return &v }
