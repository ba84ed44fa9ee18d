// Package sow renders Statement-of-Work documents from structured project
// fields. Rendering is a pure function: the same Input always produces a
// byte-identical Document.
package sow

// Input is a validated set of project fields. Free-text fields are
// expected to be normalized already; Render normalizes them again, which
// is a no-op for normalized text.
type Input struct {
	ProjectName   string
	Client        string
	Goal          string
	Deliverables  string // one deliverable per line
	TimelineWeeks *int   // nil when no timeline was given
	Constraints   string
}

// Section is one headed block of a Document.
type Section struct {
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

// Document is a rendered Statement of Work.
type Document struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
	Markdown string    `json:"markdown"`
}
