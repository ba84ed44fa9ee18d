package sow

import "time"

// Result is either Empty or Generated.
type Result interface {
	isResult()
}

// Empty is the placeholder shown before any fields are submitted.
type Empty struct{}

// Generated is a rendered document together with the moment it was built.
type Generated struct {
	Document    Document
	HTML        string
	GeneratedAt time.Time
}

func (Empty) isResult()     {}
func (Generated) isResult() {}

// Payload is the wire shape shared by both variants. Title is null and
// Sections empty for Empty.
type Payload struct {
	Ready       bool      `json:"ready"`
	Title       *string   `json:"title"`
	Sections    []Section `json:"sections"`
	Markdown    string    `json:"markdown"`
	HTML        string    `json:"html,omitempty"`
	GeneratedAt string    `json:"generated_at,omitempty"`
}

// PayloadOf flattens r into its wire shape.
func PayloadOf(r Result) Payload {
	switch v := r.(type) {
	case Generated:
		title := v.Document.Title
		sections := v.Document.Sections
		if sections == nil {
			sections = []Section{}
		}
		p := Payload{
			Ready:    true,
			Title:    &title,
			Sections: sections,
			Markdown: v.Document.Markdown,
			HTML:     v.HTML,
		}
		if !v.GeneratedAt.IsZero() {
			p.GeneratedAt = v.GeneratedAt.UTC().Format(time.RFC3339)
		}
		return p
	default:
		return Payload{Ready: true, Sections: []Section{}}
	}
}
