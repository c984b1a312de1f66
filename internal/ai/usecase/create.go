package usecase

import (
	"context"
	"fmt"
	"time"

	"ai-task-planner/internal/ai"
	"ai-task-planner/internal/model"
	"ai-task-planner/internal/task"
	"ai-task-planner/pkg/datemath"
	"ai-task-planner/pkg/gcalendar"
)

// CreateFromText turns free text into persisted tasks on the caller's current day.
func (uc *implUseCase) CreateFromText(ctx context.Context, sc model.Scope, input ai.CreateFromTextInput) (ai.CreateFromTextOutput, error) {
	text, err := validText(input.Text, minTextRunes)
	if err != nil {
		return ai.CreateFromTextOutput{}, err
	}

	loc := sc.Location(uc.defaultLoc)
	day := datemath.NewParserIn(loc).Today(uc.now())

	enhanced, intent, planned, err := uc.plan(ctx, text, day)
	if err != nil {
		uc.l.Warnf(ctx, "ai.usecase.CreateFromText: %v", err)
		return ai.CreateFromTextOutput{}, err
	}

	tasks, err := uc.materialize(ctx, sc, planned)
	if err != nil {
		return ai.CreateFromTextOutput{}, err
	}

	uc.l.Infof(ctx, "ai.usecase.CreateFromText: created %d tasks (intent=%s)", len(tasks), intent.Kind)
	return ai.CreateFromTextOutput{EnhancedText: enhanced, Intent: intent, Tasks: tasks}, nil
}

// materialize persists planned tasks in order. The first failure aborts;
// tasks already written stay.
func (uc *implUseCase) materialize(ctx context.Context, sc model.Scope, planned []ai.PlannedTask) ([]model.Task, error) {
	tasks := make([]model.Task, 0, len(planned))
	for _, p := range planned {
		out, err := uc.tasks.Create(ctx, sc, task.CreateInput{
			Title:           p.Title,
			Description:     p.Description,
			Date:            p.Date,
			AllDay:          p.AllDay,
			DurationMinutes: p.DurationMinutes,
		})
		if err != nil {
			uc.l.Errorf(ctx, "ai.usecase.materialize: task %d of %d: %v", len(tasks)+1, len(planned), err)
			uc.metrics.AddTasksMaterialized(len(tasks))
			return tasks, fmt.Errorf("%w: %v", ai.ErrPersistence, err)
		}
		tasks = append(tasks, out.Task)
		uc.tryCreateCalendarEvent(ctx, sc, out.Task)
	}

	uc.metrics.AddTasksMaterialized(len(tasks))
	return tasks, nil
}

// tryCreateCalendarEvent mirrors a timed task. Failures are logged only.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, sc model.Scope, t model.Task) {
	if uc.calendar == nil || t.AllDay {
		return
	}

	end := t.Date.Add(defaultEventMinutes * time.Minute)
	if t.EndDate != nil && t.EndDate.After(t.Date) {
		end = *t.EndDate
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   t.Date,
		EndTime:     end,
		Timezone:    sc.Location(uc.defaultLoc).String(),
	})
	if err != nil {
		uc.l.Warnf(ctx, "ai.usecase.tryCreateCalendarEvent task=%s: %v", t.ID, err)
		return
	}
	uc.l.Infof(ctx, "ai.usecase.tryCreateCalendarEvent task=%s event=%s", t.ID, event.ID)
}
