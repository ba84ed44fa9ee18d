package sow

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	md        = goldmark.New()
	sanitizer = bluemonday.UGCPolicy()
)

// HTML renders the document's Markdown as sanitized HTML.
func (d Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(d.Markdown), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return sanitizer.Sanitize(buf.String()), nil
}
