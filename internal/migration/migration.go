// Package migration applies the embedded PostgreSQL schema.
package migration

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"time"

	"ai-task-planner/pkg/log"
)

//go:embed sql/*.sql
var embedded embed.FS

// Files returns the schema migrations shipped with the binary.
func Files() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

var ErrDatabaseTooNew = errors.New("database schema is newer than this binary")

// Migration is one NNN_name.sql file.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Runner tracks the applied version in schema_version and applies the rest.
type Runner struct {
	db *sql.DB
	fs fs.FS
	l  log.Logger
}

func NewRunner(db *sql.DB, migrationFS fs.FS, l log.Logger) *Runner {
	return &Runner{db: db, fs: migrationFS, l: l}
}

func (r *Runner) ensureVersionTable(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_version (version INTEGER PRIMARY KEY)`)
	return err
}

// CurrentVersion returns 0 on a fresh database.
func (r *Runner) CurrentVersion(ctx context.Context) (int, error) {
	if err := r.ensureVersionTable(ctx); err != nil {
		return 0, fmt.Errorf("migration.CurrentVersion: %w", err)
	}

	var version int
	err := r.db.QueryRowContext(ctx, `SELECT version FROM schema_version`).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("migration.CurrentVersion: %w", err)
	}
	return version, nil
}

// Read parses the migration files, sorted by version.
func (r *Runner) Read() ([]Migration, error) {
	entries, err := fs.ReadDir(r.fs, ".")
	if err != nil {
		return nil, fmt.Errorf("migration.Read: %w", err)
	}

	var out []Migration
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}

		prefix, name, ok := strings.Cut(e.Name(), "_")
		if !ok {
			return nil, fmt.Errorf("migration.Read: %s: expected NNN_name.sql", e.Name())
		}
		version, err := strconv.Atoi(prefix)
		if err != nil || version < 1 {
			return nil, fmt.Errorf("migration.Read: %s: invalid version", e.Name())
		}

		content, err := fs.ReadFile(r.fs, e.Name())
		if err != nil {
			return nil, fmt.Errorf("migration.Read: %s: %w", e.Name(), err)
		}
		out = append(out, Migration{
			Version: version,
			Name:    strings.TrimSuffix(name, ".sql"),
			SQL:     string(content),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	for i := 1; i < len(out); i++ {
		if out[i].Version == out[i-1].Version {
			return nil, fmt.Errorf("migration.Read: duplicate version %d", out[i].Version)
		}
	}
	return out, nil
}

// Pending returns the migrations newer than current.
func Pending(all []Migration, current int) ([]Migration, error) {
	if len(all) > 0 && current > all[len(all)-1].Version {
		return nil, fmt.Errorf("%w: at %d, latest known %d", ErrDatabaseTooNew, current, all[len(all)-1].Version)
	}
	var out []Migration
	for _, m := range all {
		if m.Version > current {
			out = append(out, m)
		}
	}
	return out, nil
}

// Up applies every pending migration, each in its own transaction, and
// returns how many were applied.
func (r *Runner) Up(ctx context.Context) (int, error) {
	current, err := r.CurrentVersion(ctx)
	if err != nil {
		return 0, err
	}
	all, err := r.Read()
	if err != nil {
		return 0, err
	}
	pending, err := Pending(all, current)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		r.l.Infof(ctx, "migration.Up: schema is up to date (version %d)", current)
		return 0, nil
	}

	start := time.Now()
	applied := 0
	for _, m := range pending {
		if err := r.apply(ctx, m); err != nil {
			return applied, err
		}
		applied++
		r.l.Infof(ctx, "migration.Up: applied %03d_%s", m.Version, m.Name)
	}
	r.l.Infof(ctx, "migration.Up: %d migration(s) in %s", applied, time.Since(start))
	return applied, nil
}

func (r *Runner) apply(ctx context.Context, m Migration) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migration.apply %d: begin: %w", m.Version, err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return fmt.Errorf("migration.apply %d (%s): %w", m.Version, m.Name, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM schema_version`); err != nil {
		return fmt.Errorf("migration.apply %d: clear version: %w", m.Version, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_version (version) VALUES ($1)`, m.Version); err != nil {
		return fmt.Errorf("migration.apply %d: set version: %w", m.Version, err)
	}
	return tx.Commit()
}
