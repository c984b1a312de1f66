package postgre

import (
	"database/sql"
	"fmt"
	"strings"

	"ai-task-planner/internal/model"
	repo "ai-task-planner/internal/notification/repository"
)

func (r *implRepository) buildGetOneQuery(opt repo.GetOneNotificationOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
		idx++
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func (r *implRepository) buildListDueQuery(opt repo.ListDueOptions) (string, []any) {
	mods := "WHERE sent = FALSE AND send_at <= $1 ORDER BY send_at ASC"
	args := []any{opt.Now}
	if opt.Limit > 0 {
		mods += " LIMIT $2"
		args = append(args, opt.Limit)
	}
	return mods, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNotification(row rowScanner) (model.Notification, error) {
	var (
		n      model.Notification
		taskID sql.NullString
	)
	if err := row.Scan(&n.ID, &n.UserID, &taskID, &n.Title, &n.Body, &n.SendAt, &n.Sent, &n.CreatedAt); err != nil {
		return model.Notification{}, err
	}
	if taskID.Valid {
		id := taskID.String
		n.TaskID = &id
	}
	return n, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
