package sow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", " \t\r\n ", ""},
		{"crlf", "a\r\nb", "a\nb"},
		{"lone cr", "a\rb", "a\nb"},
		{"trailing spaces before break", "a  \nb\t\nc", "a\nb\nc"},
		{"outer trim", "  hello world \n", "hello world"},
		{"inner blank lines kept", "A\n\nB", "A\n\nB"},
		{"leading indentation kept", "A\n  B", "A\n  B"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"a \r\n \r\nb",
		"x\t \n\t\n y \r",
		"Homepage\nContact page\n\n",
		" trailing nbsp  \n",
		"a \n \n \nb",
	}
	for _, s := range inputs {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "input %q", s)
	}
}

func TestNormalizePtr(t *testing.T) {
	assert.Equal(t, "", NormalizePtr(nil))

	s := " client \r\n"
	assert.Equal(t, "client", NormalizePtr(&s))
}
