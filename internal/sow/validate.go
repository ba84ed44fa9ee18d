package sow

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Timeline bounds in weeks, inclusive.
const (
	MinTimelineWeeks = 1
	MaxTimelineWeeks = 104
)

// ErrValidation matches every *ValidationError via errors.Is.
var ErrValidation = errors.New("invalid input")

// Request is the caller-supplied form of Input, as it arrives over the
// wire or from an input file. TimelineWeeks is a number so that
// non-integer values can be reported instead of failing to decode.
type Request struct {
	ProjectName   string   `json:"project_name" yaml:"project_name"`
	Client        string   `json:"client,omitempty" yaml:"client,omitempty"`
	Goal          string   `json:"goal" yaml:"goal"`
	Deliverables  string   `json:"deliverables" yaml:"deliverables"`
	TimelineWeeks *float64 `json:"timeline_weeks,omitempty" yaml:"timeline_weeks,omitempty"`
	Constraints   string   `json:"constraints,omitempty" yaml:"constraints,omitempty"`
}

// FieldError describes one rejected field.
type FieldError struct {
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Constraint
}

// ValidationError lists every field of a Request that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Has reports whether field is among the rejected fields.
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// Validate checks req and returns the normalized Input. On failure the
// error is a *ValidationError naming every offending field.
func Validate(req Request) (Input, error) {
	in := Input{
		ProjectName:  Normalize(req.ProjectName),
		Client:       Normalize(req.Client),
		Goal:         Normalize(req.Goal),
		Deliverables: Normalize(req.Deliverables),
		Constraints:  Normalize(req.Constraints),
	}

	var fields []FieldError
	required := []struct{ name, value string }{
		{"project_name", in.ProjectName},
		{"goal", in.Goal},
		{"deliverables", in.Deliverables},
	}
	for _, r := range required {
		if r.value == "" {
			fields = append(fields, FieldError{Field: r.name, Constraint: "must not be empty"})
		}
	}

	if req.TimelineWeeks != nil {
		weeks, err := timelineWeeks(*req.TimelineWeeks)
		if err != nil {
			fields = append(fields, FieldError{Field: "timeline_weeks", Constraint: err.Error()})
		} else {
			in.TimelineWeeks = &weeks
		}
	}

	if len(fields) > 0 {
		return Input{}, &ValidationError{Fields: fields}
	}
	return in, nil
}

func timelineWeeks(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, fmt.Errorf("must be an integer, got %v", v)
	}
	if v < MinTimelineWeeks || v > MaxTimelineWeeks {
		return 0, fmt.Errorf("must be between %d and %d, got %v", MinTimelineWeeks, MaxTimelineWeeks, v)
	}
	return int(v), nil
}
