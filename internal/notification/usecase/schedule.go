package usecase

import (
	"context"
	"fmt"
	"time"

	"ai-task-planner/internal/model"
	"ai-task-planner/internal/notification"
	repo "ai-task-planner/internal/notification/repository"
	"ai-task-planner/pkg/datemath"
)

const (
	startBodyFormat = "Começa às %s"
	endBodyFormat   = "Termina às %s"
)

type reminderAt struct {
	at     time.Time
	format string
}

// ScheduleForTask creates a reminder at the task's start and, when it has
// one, at its end. Clock times in the body are rendered in the user's timezone.
func (uc *implUseCase) ScheduleForTask(ctx context.Context, sc model.Scope, t model.Task) ([]model.Notification, error) {
	if t.AllDay {
		return nil, nil
	}

	loc := sc.Location(uc.defaultLoc)
	instants := []reminderAt{{at: t.Date, format: startBodyFormat}}
	if t.EndDate != nil {
		instants = append(instants, reminderAt{at: *t.EndDate, format: endBodyFormat})
	}

	taskID := t.ID
	created := make([]model.Notification, 0, len(instants))
	for _, in := range instants {
		n, err := uc.repo.CreateNotification(ctx, repo.CreateNotificationOptions{
			UserID: sc.UserID,
			TaskID: &taskID,
			Title:  t.Title,
			Body:   fmt.Sprintf(in.format, datemath.ClockOf(in.at.In(loc))),
			SendAt: in.at,
		})
		if err != nil {
			uc.l.Errorf(ctx, "notification.usecase.ScheduleForTask task=%s: %v", t.ID, err)
			return created, err
		}
		if n.ID == "" {
			return created, notification.ErrTaskNotFound
		}
		created = append(created, n)
	}

	uc.metrics.AddNotificationsScheduled(len(created))
	return created, nil
}

// DeleteByTask drops every reminder of one of the caller's tasks.
func (uc *implUseCase) DeleteByTask(ctx context.Context, sc model.Scope, taskID string) error {
	if err := uc.repo.DeleteByTask(ctx, repo.DeleteByTaskOptions{TaskID: taskID, UserID: sc.UserID}); err != nil {
		uc.l.Errorf(ctx, "notification.usecase.DeleteByTask task=%s: %v", taskID, err)
		return err
	}
	return nil
}
