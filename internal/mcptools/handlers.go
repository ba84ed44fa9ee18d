package mcptools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dusk-indust/sowbuilder/internal/sow"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const builderReadyMessage = "SOW builder ready. Fill in the fields to generate a Statement of Work."

// SOWService handles MCP tool calls. It holds no per-call state, so one
// instance can back any number of concurrent sessions.
type SOWService struct {
	logger *slog.Logger
	now    func() time.Time
	render func(sow.Input) sow.Document
}

// NewSOWService creates a SOWService that logs to logger. A nil logger
// discards output.
func NewSOWService(logger *slog.Logger) *SOWService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SOWService{
		logger: logger,
		now:    time.Now,
		render: sow.Render,
	}
}

// SetClock replaces the clock used for generated_at.
func (s *SOWService) SetClock(now func() time.Time) {
	s.now = now
}

// OpenBuilder returns the empty placeholder document.
func (s *SOWService) OpenBuilder(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ OpenBuilderInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	out := sow.PayloadOf(sow.Empty{})
	return textResult(builderReadyMessage, out), out, nil
}

// GenerateSOW validates input and renders the Statement of Work. Invalid
// input fails with a *sow.ValidationError before anything is rendered.
func (s *SOWService) GenerateSOW(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GenerateSOWInput,
) (*mcp.CallToolResult, DocumentOutput, error) {
	in, err := sow.Validate(input)
	if err != nil {
		s.logger.Info("generate_sow rejected", "error", err)
		return nil, DocumentOutput{}, err
	}

	doc := s.render(in)
	html, err := doc.HTML()
	if err != nil {
		return nil, DocumentOutput{}, fmt.Errorf("render html: %w", err)
	}

	out := sow.PayloadOf(sow.Generated{
		Document:    doc,
		HTML:        html,
		GeneratedAt: s.now(),
	})
	s.logger.Debug("generate_sow", "title", doc.Title, "sections", len(doc.Sections))
	return textResult("Generated: "+doc.Title, out), out, nil
}

func textResult(text string, structured any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: text}},
		StructuredContent: structured,
	}
}
