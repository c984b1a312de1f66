package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"ai-task-planner/internal/model"
	repo "ai-task-planner/internal/notification/repository"
)

const notificationColumns = `id, user_id, task_id, title, body, send_at, sent, created_at`

// CreateNotification inserts a reminder. A task-linked reminder is only
// inserted when the task belongs to the same user.
func (r *implRepository) CreateNotification(ctx context.Context, opt repo.CreateNotificationOptions) (model.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, task_id, title, body, send_at, sent, created_at)
		SELECT $1, $2, $3, $4, $5, FALSE, NOW()
		WHERE $2::uuid IS NULL
		   OR EXISTS (SELECT 1 FROM tasks WHERE id = $2::uuid AND user_id = $1)
		RETURNING ` + notificationColumns

	n, err := scanNotification(r.db.QueryRowContext(ctx, query,
		opt.UserID, nullString(opt.TaskID), opt.Title, opt.Body, opt.SendAt,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Notification{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNotification"), err)
		return model.Notification{}, repo.ErrFailedToInsert
	}
	return n, nil
}

// GetOneNotification retrieves a single reminder by the provided filters (AND condition).
func (r *implRepository) GetOneNotification(ctx context.Context, opt repo.GetOneNotificationOptions) (model.Notification, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM notifications WHERE %s LIMIT 1", notificationColumns, mods)

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Notification{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneNotification"), err)
		return model.Notification{}, repo.ErrFailedToGet
	}
	return n, nil
}

// ListNotifications returns the user's reminders ordered by send_at ascending.
func (r *implRepository) ListNotifications(ctx context.Context, opt repo.ListNotificationsOptions) ([]model.Notification, error) {
	query := fmt.Sprintf("SELECT %s FROM notifications WHERE user_id = $1 ORDER BY send_at ASC, created_at ASC", notificationColumns)
	return r.list(ctx, "ListNotifications", query, opt.UserID)
}

// ListDue returns unsent reminders whose send_at has passed.
func (r *implRepository) ListDue(ctx context.Context, opt repo.ListDueOptions) ([]model.Notification, error) {
	mods, args := r.buildListDueQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM notifications %s", notificationColumns, mods)
	return r.list(ctx, "ListDue", query, args...)
}

func (r *implRepository) list(ctx context.Context, method, query string, args ...any) ([]model.Notification, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	notifications := make([]model.Notification, 0)
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn(method), err)
			return nil, repo.ErrFailedToList
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn(method), err)
		return nil, repo.ErrFailedToList
	}
	return notifications, nil
}

// UpdateNotification sets the sent flag. A zero Notification means no row matched.
func (r *implRepository) UpdateNotification(ctx context.Context, opt repo.UpdateNotificationOptions) (model.Notification, error) {
	query := `
		UPDATE notifications SET sent = $1
		WHERE id = $2 AND user_id = $3
		RETURNING ` + notificationColumns

	n, err := scanNotification(r.db.QueryRowContext(ctx, query, opt.Sent, opt.ID, opt.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Notification{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNotification"), err)
		return model.Notification{}, repo.ErrFailedToUpdate
	}
	return n, nil
}

// MarkSent flips sent=true for still-unsent rows, so overlapping sweeps are harmless.
func (r *implRepository) MarkSent(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	const query = `UPDATE notifications SET sent = TRUE WHERE id = ANY($1::uuid[]) AND sent = FALSE`
	res, err := r.db.ExecContext(ctx, query, pq.Array(ids))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("MarkSent"), err)
		return 0, repo.ErrFailedToUpdate
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s rows affected: %v", r.dsn("MarkSent"), err)
		return 0, repo.ErrFailedToUpdate
	}
	return n, nil
}

func (r *implRepository) DeleteNotification(ctx context.Context, opt repo.DeleteNotificationOptions) error {
	const query = `DELETE FROM notifications WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteNotification"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// DeleteByTask removes every reminder of a task.
func (r *implRepository) DeleteByTask(ctx context.Context, opt repo.DeleteByTaskOptions) error {
	const query = `DELETE FROM notifications WHERE task_id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.TaskID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteByTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
