package sow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentHTML(t *testing.T) {
	doc := Render(Input{
		ProjectName:  "Acme Site",
		Goal:         "Launch site",
		Deliverables: "Homepage\nContact page",
		Constraints:  "<script>alert(1)</script>\n<a href=\"javascript:alert(1)\">x</a>",
	})

	out, err := doc.HTML()
	require.NoError(t, err)

	assert.Contains(t, out, "<h1>Statement of Work (SOW)")
	assert.Contains(t, out, "<h2>Scope</h2>")
	assert.Contains(t, out, "<li>Homepage</li>")
	assert.NotContains(t, out, "<script")
	assert.NotContains(t, out, "javascript:")
}
