package sow

import (
	"fmt"
	"strings"
)

const (
	titlePrefix     = "Statement of Work (SOW) — "
	fallbackProject = "Project"
	placeholder     = "—"
)

// Section headings in document order.
const (
	HeadingOverview    = "Overview"
	HeadingScope       = "Scope"
	HeadingOutOfScope  = "Out of Scope"
	HeadingMilestones  = "Milestones"
	HeadingAcceptance  = "Acceptance Criteria"
	HeadingAssumptions = "Assumptions & Dependencies"
	HeadingRisks       = "Risks"
	HeadingConstraints = "Constraints / Notes"
)

const scopeHeader = "The following deliverables are in scope for this engagement:"

const outOfScopeBody = `Anything not listed under Scope is out of scope, including:
- Ongoing maintenance and support after handover
- Content creation, copywriting and translation
- Third-party licences, hosting and subscription fees
- Changes requested after sign-off (handled through a change request)`

const milestonesBody = `- Kickoff and requirements confirmation
- Design and review
- Build and internal QA
- Client acceptance and handover`

const acceptanceBody = `- Each deliverable listed under Scope is delivered and demonstrated to the client
- The client has five (5) business days to review each deliverable
- Deliverables are accepted when they meet the agreed requirements or when no written feedback is received within the review period`

const assumptionsBody = `- The client provides timely access to stakeholders, content and systems
- Feedback is consolidated and returned within the agreed review period
- Third-party services and dependencies are available as documented`

const risksBody = `- Delayed feedback or approvals may shift the timeline
- Scope changes may affect cost and delivery dates
- Third-party outages or API changes may block progress`

// Render builds the Statement of Work for in. It never fails; range checks
// on the timeline belong to Validate.
func Render(in Input) Document {
	name := Normalize(in.ProjectName)
	client := Normalize(in.Client)
	goal := Normalize(in.Goal)
	deliverables := Normalize(in.Deliverables)
	constraints := Normalize(in.Constraints)

	sections := []Section{
		{Heading: HeadingOverview, Body: overview(client, name, goal)},
		{Heading: HeadingScope, Body: scope(deliverables)},
		{Heading: HeadingOutOfScope, Body: outOfScopeBody},
		{Heading: HeadingMilestones, Body: milestones(in.TimelineWeeks)},
		{Heading: HeadingAcceptance, Body: acceptanceBody},
		{Heading: HeadingAssumptions, Body: assumptionsBody},
		{Heading: HeadingRisks, Body: risksBody},
	}
	if constraints != "" {
		sections = append(sections, Section{Heading: HeadingConstraints, Body: constraints})
	}

	title := Title(name)
	return Document{
		Title:    title,
		Sections: sections,
		Markdown: markdown(title, sections),
	}
}

// Title returns the document title for a project name.
func Title(projectName string) string {
	name := Normalize(projectName)
	if name == "" {
		name = fallbackProject
	}
	return titlePrefix + name
}

func overview(client, name, goal string) string {
	var lines []string
	if client != "" {
		lines = append(lines, "Client: "+client)
	}
	lines = append(lines,
		"Project: "+orPlaceholder(name),
		"Goal: "+orPlaceholder(goal),
	)
	return strings.Join(lines, "\n")
}

// scope lists one bullet per non-empty deliverable line. Lines are not
// trimmed individually.
func scope(deliverables string) string {
	if deliverables == "" {
		return "Deliverables: " + placeholder
	}
	var b strings.Builder
	b.WriteString(scopeHeader)
	for _, line := range strings.Split(deliverables, "\n") {
		if line == "" {
			continue
		}
		b.WriteString("\n- ")
		b.WriteString(line)
	}
	return b.String()
}

func milestones(weeks *int) string {
	target := "Target timeline: To be agreed"
	if weeks != nil {
		target = fmt.Sprintf("Target timeline: ~%d week(s)", *weeks)
	}
	return target + "\n\n" + milestonesBody
}

func markdown(title string, sections []Section) string {
	blocks := make([]string, 0, len(sections)+1)
	blocks = append(blocks, "# "+title+"\n")
	for _, s := range sections {
		blocks = append(blocks, "## "+s.Heading+"\n\n"+s.Body+"\n")
	}
	return strings.Join(blocks, "\n")
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}
