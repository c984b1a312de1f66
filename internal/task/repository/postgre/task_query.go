package postgre

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ai-task-planner/internal/model"
	repo "ai-task-planner/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
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

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	conditions := []string{"user_id = $1"}
	args := []any{opt.UserID}
	idx := 2

	if opt.From != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", idx))
		args = append(args, *opt.From)
		idx++
	}
	if opt.To != nil {
		conditions = append(conditions, fmt.Sprintf("date < $%d", idx))
		args = append(args, *opt.To)
		idx++
	}

	return "WHERE " + strings.Join(conditions, " AND ") + " ORDER BY date ASC, created_at ASC", args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t        model.Task
		endDate  sql.NullTime
		duration sql.NullInt64
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &t.Date, &endDate,
		&t.AllDay, &duration, &t.Done, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}
	if endDate.Valid {
		end := endDate.Time
		t.EndDate = &end
	}
	if duration.Valid {
		minutes := int(duration.Int64)
		t.DurationMinutes = &minutes
	}
	return t, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}
