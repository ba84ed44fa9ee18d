package export

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dusk-indust/sowbuilder/internal/sow"
	"gopkg.in/yaml.v3"
)

// Format selects how a generated document is written.
type Format string

const (
	FormatMarkdown Format = "md"
	FormatJSON     Format = "json"
	FormatHTML     Format = "html"
)

// ParseFormat accepts md, markdown, json and html.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "md", "markdown":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "html":
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("unknown format %q (want md, json or html)", s)
	}
}

// ReadRequest loads a sow.Request from a YAML or JSON file. Files ending in
// .json are decoded as JSON; everything else as YAML.
func ReadRequest(path string) (sow.Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sow.Request{}, fmt.Errorf("read input: %w", err)
	}

	var req sow.Request
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &req)
	} else {
		err = yaml.Unmarshal(data, &req)
	}
	if err != nil {
		return sow.Request{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return req, nil
}

// Write writes g to w in the given format. JSON output is the same payload
// the generate_sow tool returns.
func Write(w io.Writer, g sow.Generated, format Format) error {
	switch format {
	case FormatMarkdown:
		_, err := io.WriteString(w, g.Document.Markdown)
		return err
	case FormatHTML:
		html := g.HTML
		if html == "" {
			var err error
			if html, err = g.Document.HTML(); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, html)
		return err
	case FormatJSON:
		out, err := json.MarshalIndent(sow.PayloadOf(g), "", "  ")
		if err != nil {
			return fmt.Errorf("marshal JSON: %w", err)
		}
		_, err = w.Write(append(out, '\n'))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// WriteFile writes g to path, creating parent directories as needed.
func WriteFile(path string, g sow.Generated, format Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := Write(f, g, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
