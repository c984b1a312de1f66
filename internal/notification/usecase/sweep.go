package usecase

import (
	"context"
	"time"

	"ai-task-planner/internal/notification"
	repo "ai-task-planner/internal/notification/repository"
)

// Sweep dispatches every unsent reminder with send_at <= now and marks it sent.
// Dispatch itself is a log line; real delivery channels plug in here.
func (uc *implUseCase) Sweep(ctx context.Context, now time.Time) (notification.SweepOutput, error) {
	due, err := uc.repo.ListDue(ctx, repo.ListDueOptions{Now: now, Limit: sweepBatchSize})
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.Sweep ListDue: %v", err)
		return notification.SweepOutput{}, err
	}
	if len(due) == 0 {
		return notification.SweepOutput{}, nil
	}

	ids := make([]string, len(due))
	for i, n := range due {
		taskRef := "none"
		if n.TaskID != nil {
			taskRef = *n.TaskID
		}
		uc.l.Infof(ctx, "notification.usecase.Sweep: dispatch user=%s title=%q task=%s send_at=%s",
			n.UserID, n.Title, taskRef, n.SendAt.Format(time.RFC3339))
		ids[i] = n.ID
	}

	marked, err := uc.repo.MarkSent(ctx, ids)
	if err != nil {
		uc.l.Errorf(ctx, "notification.usecase.Sweep MarkSent: %v", err)
		return notification.SweepOutput{}, err
	}

	uc.metrics.AddNotificationsDispatched(int(marked))
	uc.l.Infof(ctx, "notification.usecase.Sweep: marked %d of %d due reminders", marked, len(due))
	return notification.SweepOutput{Dispatched: due}, nil
}
