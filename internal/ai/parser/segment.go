package parser

import (
	"regexp"
	"strings"

	"ai-task-planner/internal/ai"
	"ai-task-planner/pkg/datemath"
)

var (
	leadingClockRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s+(.*)$`)
	listMarkerRe   = regexp.MustCompile(`^(?:[-*•]\s+|\d{1,2}[.)]\s+)`)
	trailingJoinRe = regexp.MustCompile(`(?i)\s+(?:e|and)$`)
	leadingJoinRe  = regexp.MustCompile(`(?i)^(?:e|and)\s+`)
)

const descriptionSeparator = " - "

// Segment splits enhanced text into task candidates.
//
// The result never holds more than LogicalCount(originalText) candidates
// (at least one), so a rewrite that invents tasks is cut back to what the
// user actually wrote. An empty result means nothing usable was found.
func Segment(aiText, originalText string) []ai.TaskCandidate {
	expected := max(1, LogicalCount(originalText))

	lines := Lines(aiText)
	if len(lines) > expected {
		lines = lines[:expected]
	}

	candidates := make([]ai.TaskCandidate, 0, expected)
	for _, line := range lines {
		for _, c := range splitLine(line) {
			if len(candidates) == expected {
				return candidates
			}
			if c.Title == "" {
				continue
			}
			c.Title = Capitalize(c.Title)
			candidates = append(candidates, c)
		}
	}
	return candidates
}

// LogicalCount counts the tasks a text describes: one per non-blank line,
// or one per clock clause on lines like "às 10 reunião, às 14 almoço".
func LogicalCount(text string) int {
	count := 0
	for _, line := range Lines(text) {
		count += max(1, len(splitLine(line)))
	}
	return count
}

// Lines returns the trimmed, non-blank lines of text.
func Lines(text string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// splitLine turns one line into one or more candidates.
func splitLine(line string) []ai.TaskCandidate {
	line = strings.TrimSpace(listMarkerRe.ReplaceAllString(line, ""))

	if m := leadingClockRe.FindStringSubmatch(line); m != nil {
		if clock, ok := parseClock(m[1], m[2]); ok {
			return []ai.TaskCandidate{newCandidate(m[3], &clock)}
		}
	}

	clauses := connectorClocks(line)
	switch len(clauses) {
	case 0:
		return []ai.TaskCandidate{newCandidate(line, nil)}
	case 1:
		c := clauses[0]
		return []ai.TaskCandidate{newCandidate(line[:c.start]+" "+line[c.end:], &c.clock)}
	}

	out := make([]ai.TaskCandidate, 0, len(clauses))
	if strings.TrimSpace(line[:clauses[0].start]) == "" {
		// às 10 reunião, às 14 almoço
		for i, c := range clauses {
			end := len(line)
			if i+1 < len(clauses) {
				end = clauses[i+1].start
			}
			out = append(out, newCandidate(line[c.end:end], &c.clock))
		}
		return out
	}

	// reunião às 10, almoço às 14
	prev := 0
	for _, c := range clauses {
		out = append(out, newCandidate(line[prev:c.start], &c.clock))
		prev = c.end
	}
	if rest := cleanTitle(line[prev:]); rest != "" {
		last := &out[len(out)-1]
		last.Title = strings.TrimSpace(last.Title + " " + rest)
	}
	return out
}

func newCandidate(raw string, clock *datemath.ClockTime) ai.TaskCandidate {
	title := cleanTitle(raw)
	description := ""
	if before, after, found := strings.Cut(title, descriptionSeparator); found {
		title = cleanTitle(before)
		description = strings.TrimSpace(after)
	}
	return ai.TaskCandidate{Title: title, RawTime: clock, Description: description}
}

func cleanTitle(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	for {
		before := s
		s = strings.Trim(s, " ,;.")
		s = trailingJoinRe.ReplaceAllString(s, "")
		s = leadingJoinRe.ReplaceAllString(s, "")
		if s == before {
			return s
		}
	}
}
