package repository

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

type PostgresRepo struct {
	DB *sql.DB
}

// NewPostgresRepo opens the pool and verifies the connection.
func NewPostgresRepo(ctx context.Context, dsn string) (*PostgresRepo, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	return &PostgresRepo{DB: db}, nil
}

func (r *PostgresRepo) Close() error {
	return r.DB.Close()
}

func (r *PostgresRepo) RunMigrations(ctx context.Context) error {
	queries := []string{
		`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
		`CREATE TABLE IF NOT EXISTS admins (
            id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
            username VARCHAR(100) UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            created_at TIMESTAMP WITH TIME ZONE DEFAULT now()
        );`,
		`CREATE TABLE IF NOT EXISTS task_links (
            wrike_id TEXT PRIMARY KEY,
            clickup_id TEXT NOT NULL,
            updated_at TIMESTAMP WITH TIME ZONE DEFAULT now()
        );`,
	}
	for _, q := range queries {
		if _, err := r.DB.ExecContext(ctx, q); err != nil {
			return errors.Wrap(err, "run migrations")
		}
	}
	return nil
}

func (r *PostgresRepo) UpsertAdmin(ctx context.Context, username, passwordHash string) error {
	query := `
        INSERT INTO admins (username, password_hash)
        VALUES ($1, $2)
        ON CONFLICT (username) DO UPDATE SET password_hash = EXCLUDED.password_hash
    `
	_, err := r.DB.ExecContext(ctx, query, username, passwordHash)
	return errors.Wrap(err, "upsert admin")
}

// GetAdminByUsername returns sql.ErrNoRows (wrapped) for an unknown user.
func (r *PostgresRepo) GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error) {
	query := `
        SELECT id, username, password_hash, created_at
        FROM admins
        WHERE username = $1
        LIMIT 1
    `

	var a model.Admin
	err := r.DB.QueryRowContext(ctx, query, username).Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,
		&a.CreatedAt,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "get admin %q", username)
	}
	return &a, nil
}

// GetTaskLink returns nil, nil when the Wrike task has no ClickUp mirror yet.
func (r *PostgresRepo) GetTaskLink(ctx context.Context, wrikeID string) (*model.TaskLink, error) {
	query := `SELECT wrike_id, clickup_id, updated_at FROM task_links WHERE wrike_id = $1`

	var l model.TaskLink
	err := r.DB.QueryRowContext(ctx, query, wrikeID).Scan(&l.WrikeID, &l.ClickUpID, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get task link %s", wrikeID)
	}
	return &l, nil
}

func (r *PostgresRepo) SaveTaskLink(ctx context.Context, wrikeID, clickupID string) error {
	query := `
        INSERT INTO task_links (wrike_id, clickup_id, updated_at)
        VALUES ($1, $2, now())
        ON CONFLICT (wrike_id) DO UPDATE SET
            clickup_id = EXCLUDED.clickup_id,
            updated_at = now()
    `
	_, err := r.DB.ExecContext(ctx, query, wrikeID, clickupID)
	return errors.Wrapf(err, "save task link %s", wrikeID)
}

func (r *PostgresRepo) DeleteTaskLink(ctx context.Context, wrikeID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM task_links WHERE wrike_id = $1`, wrikeID)
	return errors.Wrapf(err, "delete task link %s", wrikeID)
}
