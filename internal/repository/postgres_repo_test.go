package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*PostgresRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &PostgresRepo{DB: db}, mock
}

func TestRunMigrations(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS admins`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS task_links`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.RunMigrations(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTaskLink(t *testing.T) {
	repo, mock := newMockRepo(t)
	updated := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	mock.ExpectQuery(`SELECT wrike_id, clickup_id, updated_at FROM task_links`).
		WithArgs("IEAAAAA1").
		WillReturnRows(sqlmock.NewRows([]string{"wrike_id", "clickup_id", "updated_at"}).
			AddRow("IEAAAAA1", "86abc", updated))

	link, err := repo.GetTaskLink(context.Background(), "IEAAAAA1")

	require.NoError(t, err)
	require.NotNil(t, link)
	assert.Equal(t, "86abc", link.ClickUpID)
	assert.Equal(t, updated, link.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTaskLinkMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT wrike_id, clickup_id, updated_at FROM task_links`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	link, err := repo.GetTaskLink(context.Background(), "nope")

	assert.NoError(t, err)
	assert.Nil(t, link)
}

func TestSaveAndDeleteTaskLink(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO task_links`).WithArgs("w1", "c1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM task_links`).WithArgs("w1").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveTaskLink(context.Background(), "w1", "c1"))
	require.NoError(t, repo.DeleteTaskLink(context.Background(), "w1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAdminByUsername(t *testing.T) {
	repo, mock := newMockRepo(t)
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, username, password_hash, created_at`).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow("a-1", "admin", "$2a$hash", created))
	mock.ExpectQuery(`SELECT id, username, password_hash, created_at`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	admin, err := repo.GetAdminByUsername(context.Background(), "admin")
	require.NoError(t, err)
	assert.Equal(t, "a-1", admin.ID)
	assert.Equal(t, "$2a$hash", admin.PasswordHash)

	_, err = repo.GetAdminByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestUpsertAdmin(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`INSERT INTO admins`).WithArgs("admin", "hash").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertAdmin(context.Background(), "admin", "hash"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
