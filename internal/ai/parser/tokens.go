package parser

import (
	"regexp"
	"strconv"
	"strings"

	"ai-task-planner/pkg/datemath"
)

var (
	// 10:30, 9:05
	colonClockRe = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)
	// 10h, 9h30; never the tail of a fraction such as 1,5h
	suffixClockRe = regexp.MustCompile(`(?:^|[^\p{L}\d_.,])(\d{1,2})h(\d{2})?\b`)
	// às 10, as 9:30, at 7h, @14
	connectorClockRe = regexp.MustCompile(`(?i)(?:^|[\s,;(])(?:às|as|at|@)\s*(\d{1,2})(?::(\d{2}))?(?:h(\d{2})?)?\b`)

	// por 2 horas, for 3h, durante 1 hora
	connectorDurationRe = regexp.MustCompile(`\b(?:por|for|durante)\s+(\d+)\s*(?:horas|hora|hours|hour|hrs|hr|h)\b`)
	// 2 horas, 3 hours, 2 h, 2horas. An attached "2h" is left to the clock pass.
	bareDurationRe = regexp.MustCompile(`(?:^|[^\p{L}\d_.,])(\d+)(?:\s+(?:horas|hora|hours|hour|hrs|hr|h)|(?:horas|hora|hours|hour))\b`)

	durationConnectors = []string{"por", "for", "durante"}
	clockConnectors    = []string{"às", "as", "at", "@"}
)

// maxDurationHours matches the 1440-minute ceiling the task API accepts.
const maxDurationHours = 24

// partsOfDay is checked in order; the first matching word wins.
var partsOfDay = []struct {
	words  []string
	anchor datemath.ClockTime
}{
	{words: []string{"manhã", "manha", "morning"}, anchor: datemath.ClockTime{Hour: 8}},
	{words: []string{"tarde", "afternoon"}, anchor: datemath.ClockTime{Hour: 14}},
	{words: []string{"noite", "evening", "night"}, anchor: datemath.ClockTime{Hour: 19}},
}

// clockMatch is a clock token found in a text, with its byte span.
type clockMatch struct {
	start, end int
	clock      datemath.ClockTime
}

// parseClock validates the hour/minute groups of a match. Empty minute means :00.
func parseClock(hour string, minutes ...string) (datemath.ClockTime, bool) {
	h, err := strconv.Atoi(hour)
	if err != nil {
		return datemath.ClockTime{}, false
	}
	m := 0
	for _, raw := range minutes {
		if raw == "" {
			continue
		}
		if m, err = strconv.Atoi(raw); err != nil {
			return datemath.ClockTime{}, false
		}
		break
	}
	clock, err := datemath.NewClockTime(h, m)
	return clock, err == nil
}

// group returns submatch i of a FindAllStringSubmatchIndex entry, or "".
func group(s string, loc []int, i int) string {
	if 2*i+1 >= len(loc) || loc[2*i] < 0 {
		return ""
	}
	return s[loc[2*i]:loc[2*i+1]]
}

// connectorClocks returns every valid connector-led clock token in s, in order.
func connectorClocks(s string) []clockMatch {
	var out []clockMatch
	for _, loc := range connectorClockRe.FindAllStringSubmatchIndex(s, -1) {
		clock, ok := parseClock(group(s, loc, 1), group(s, loc, 2), group(s, loc, 3))
		if !ok {
			continue
		}
		out = append(out, clockMatch{start: loc[0], end: loc[1], clock: clock})
	}
	return out
}

// precededBy reports whether the last word before offset is one of words.
func precededBy(s string, offset int, words []string) bool {
	before := strings.TrimRight(s[:offset], " \t,;(")
	for _, w := range words {
		if !strings.HasSuffix(before, w) {
			continue
		}
		rest := before[:len(before)-len(w)]
		if rest == "" || strings.HasSuffix(rest, " ") || strings.HasSuffix(rest, "\t") {
			return true
		}
	}
	return false
}
