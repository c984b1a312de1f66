package usecase

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"ai-task-planner/internal/ai"
	"ai-task-planner/internal/ai/parser"
	"ai-task-planner/internal/task"
	"ai-task-planner/pkg/datemath"
)

// plan runs the extraction passes over text and resolves every candidate
// against day. Nothing is persisted.
func (uc *implUseCase) plan(ctx context.Context, text string, day time.Time) (string, ai.TimeIntent, []ai.PlannedTask, error) {
	intent := parser.InferIntent(text)
	enhanced := uc.enhancer.Enhance(ctx, text)

	candidates := parser.Segment(enhanced, text)
	if len(candidates) == 0 {
		return enhanced, intent, nil, ai.ErrNoTasksExtracted
	}

	planned := make([]ai.PlannedTask, len(candidates))
	for i, c := range candidates {
		planned[i] = resolve(c, intent, day)
	}
	return enhanced, intent, planned, nil
}

// resolve places a candidate on day. The candidate's own clock wins, then
// the intent's start for timed requests, then midnight.
func resolve(c ai.TaskCandidate, intent ai.TimeIntent, day time.Time) ai.PlannedTask {
	var clock datemath.ClockTime
	switch {
	case c.RawTime != nil:
		clock = *c.RawTime
	case !intent.IsAllDay && intent.StartTime != nil:
		clock = *intent.StartTime
	}

	date := datemath.At(day, clock)
	endDate, duration := task.ResolveEnd(date, intent.IsAllDay, intent.DurationMinutes)

	p := ai.PlannedTask{
		Title:           c.Title,
		Description:     c.Description,
		Date:            date,
		EndDate:         endDate,
		AllDay:          intent.IsAllDay,
		DurationMinutes: duration,
	}
	if !p.AllDay {
		p.Reminders = append(p.Reminders, date)
		if endDate != nil {
			p.Reminders = append(p.Reminders, *endDate)
		}
	}
	return p
}

// validText trims text and enforces the accepted length in characters.
func validText(text string, minRunes int) (string, error) {
	text = strings.TrimSpace(text)
	n := utf8.RuneCountInString(text)
	if n < minRunes || n > maxTextRunes {
		return "", ai.ErrInvalidInput
	}
	return text, nil
}
