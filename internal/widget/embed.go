// Package widget embeds the SOW builder front-end. The HTML is served
// verbatim as an MCP resource; nothing in the server interprets it.
package widget

import _ "embed"

// URI identifies the widget resource.
const URI = "ui://widget/sow-builder.html"

// MIMEType marks the resource as an embeddable widget template.
const MIMEType = "text/html+skybridge"

//go:embed sow-builder.html
var html string

// HTML returns the embedded widget document.
func HTML() string {
	return html
}
