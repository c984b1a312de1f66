package postgre

import (
	"testing"
	"time"

	repo "ai-task-planner/internal/notification/repository"
)

func TestBuildListDueQuery(t *testing.T) {
	r := &implRepository{}
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

	mods, args := r.buildListDueQuery(repo.ListDueOptions{Now: now})
	if mods != "WHERE sent = FALSE AND send_at <= $1 ORDER BY send_at ASC" {
		t.Errorf("unexpected mods: %q", mods)
	}
	if len(args) != 1 || args[0] != now {
		t.Errorf("unexpected args: %v", args)
	}

	mods, args = r.buildListDueQuery(repo.ListDueOptions{Now: now, Limit: 100})
	if mods != "WHERE sent = FALSE AND send_at <= $1 ORDER BY send_at ASC LIMIT $2" || len(args) != 2 {
		t.Errorf("unexpected limited query: %q %v", mods, args)
	}
}

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}

	mods, args := r.buildGetOneQuery(repo.GetOneNotificationOptions{UserID: "u-1"})
	if mods != "user_id = $1" || len(args) != 1 {
		t.Errorf("unexpected query: %q %v", mods, args)
	}
}

type fakeRow []any

func (f fakeRow) Scan(dest ...any) error {
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = f[i].(string)
		case *bool:
			*p = f[i].(bool)
		case *time.Time:
			*p = f[i].(time.Time)
		case interface{ Scan(any) error }:
			if err := p.Scan(f[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func TestScanNotification(t *testing.T) {
	now := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)

	n, err := scanNotification(fakeRow{"n-1", "u-1", "t-1", "Estudar", "Começa às 08:00", now, false, now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.TaskID == nil || *n.TaskID != "t-1" {
		t.Errorf("expected task id, got %v", n.TaskID)
	}

	n, err = scanNotification(fakeRow{"n-2", "u-1", nil, "Manual", "", now, true, now})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.TaskID != nil || !n.Sent {
		t.Errorf("unexpected notification: %+v", n)
	}
}
