package enhancer

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"ai-task-planner/internal/ai/parser"
)

// Null is the deterministic local enhancer. It keeps one task per non-blank
// line and capitalizes lines that do not start with a digit.
type Null struct{}

// NewNull returns the local enhancer.
func NewNull() Null {
	return Null{}
}

func (Null) Enhance(_ context.Context, text string) string {
	lines := parser.Lines(text)
	for i, line := range lines {
		if r, _ := utf8.DecodeRuneInString(line); !unicode.IsDigit(r) {
			lines[i] = parser.Capitalize(line)
		}
	}
	return strings.Join(lines, "\n")
}
