package parser

import (
	"regexp"
	"strconv"
	"strings"

	"ai-task-planner/internal/ai"
	"ai-task-planner/pkg/datemath"
)

// InferIntent extracts the time intent of a free-text request.
//
// An explicit clock token wins over a part-of-day word, which wins over
// nothing (all day). The duration pass runs independently over the same text.
// A task is all-day whenever no duration was found, even when a start time was.
func InferIntent(text string) ai.TimeIntent {
	lower := strings.ToLower(text)

	intent := ai.TimeIntent{Kind: ai.IntentAllDay}
	if clock, ok := findClockTime(lower); ok {
		intent.Kind = ai.IntentExplicitTime
		intent.StartTime = &clock
	} else if anchor, ok := findPartOfDay(lower); ok {
		intent.Kind = ai.IntentPartOfDay
		intent.StartTime = &anchor
	}

	if minutes, ok := findDuration(lower); ok {
		intent.DurationMinutes = &minutes
	}
	intent.IsAllDay = intent.DurationMinutes == nil

	return intent
}

// findClockTime returns the leftmost clock token that is not part of a
// duration phrase ("por 2h").
func findClockTime(s string) (datemath.ClockTime, bool) {
	candidates := connectorClocks(s)

	for _, re := range []*regexp.Regexp{colonClockRe, suffixClockRe} {
		for _, loc := range re.FindAllStringSubmatchIndex(s, -1) {
			clock, ok := parseClock(group(s, loc, 1), group(s, loc, 2))
			if !ok {
				continue
			}
			candidates = append(candidates, clockMatch{start: loc[2], end: loc[1], clock: clock})
		}
	}

	best := -1
	for i, c := range candidates {
		if precededBy(s, c.start, durationConnectors) {
			continue
		}
		if best < 0 || c.start < candidates[best].start {
			best = i
		}
	}
	if best < 0 {
		return datemath.ClockTime{}, false
	}
	return candidates[best].clock, true
}

func findPartOfDay(s string) (datemath.ClockTime, bool) {
	for _, part := range partsOfDay {
		for _, w := range part.words {
			if strings.Contains(s, w) {
				return part.anchor, true
			}
		}
	}
	return datemath.ClockTime{}, false
}

// findDuration returns the leftmost whole-hour duration, in minutes. Counts
// above maxDurationHours are ignored.
func findDuration(s string) (int, bool) {
	type found struct{ start, hours int }
	var matches []found

	for _, loc := range connectorDurationRe.FindAllStringSubmatchIndex(s, -1) {
		if n, err := strconv.Atoi(group(s, loc, 1)); err == nil {
			matches = append(matches, found{start: loc[2], hours: n})
		}
	}
	for _, loc := range bareDurationRe.FindAllStringSubmatchIndex(s, -1) {
		// "às 10 horas" is a clock time, not a duration.
		if precededBy(s, loc[2], clockConnectors) {
			continue
		}
		if n, err := strconv.Atoi(group(s, loc, 1)); err == nil {
			matches = append(matches, found{start: loc[2], hours: n})
		}
	}

	best := -1
	for i, m := range matches {
		if m.hours <= 0 || m.hours > maxDurationHours {
			continue
		}
		if best < 0 || m.start < matches[best].start {
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return matches[best].hours * 60, true
}
