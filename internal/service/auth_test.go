package service

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

type fakeAdminStore struct {
	admins map[string]*model.Admin
	err    error
}

func (f *fakeAdminStore) GetAdminByUsername(_ context.Context, username string) (*model.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	if a, ok := f.admins[username]; ok {
		return a, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeAdminStore) UpsertAdmin(_ context.Context, username, passwordHash string) error {
	if f.admins == nil {
		f.admins = map[string]*model.Admin{}
	}
	f.admins[username] = &model.Admin{ID: "admin-" + username, Username: username, PasswordHash: passwordHash}
	return nil
}

func TestAuthSeedAndLogin(t *testing.T) {
	store := &fakeAdminStore{}
	svc := NewAuthService(store, "test-secret")
	fixed := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	require.NoError(t, svc.SeedAdmin(context.Background(), "admin", "s3cret"))
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(store.admins["admin"].PasswordHash), []byte("s3cret")))

	resp, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(12*time.Hour).Unix(), resp.ExpiresAt)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return fixed }))
	require.NoError(t, err)
	assert.Equal(t, "admin-admin", claims["sub"])
}

func TestAuthLoginRejectsBadCredentials(t *testing.T) {
	store := &fakeAdminStore{}
	svc := NewAuthService(store, "test-secret")
	require.NoError(t, svc.SeedAdmin(context.Background(), "admin", "s3cret"))

	_, err := svc.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthLoginSurfacesStoreFailure(t *testing.T) {
	store := &fakeAdminStore{err: errors.Wrap(driver.ErrBadConn, "get admin \"admin\"")}
	svc := NewAuthService(store, "test-secret")

	_, err := svc.Login(context.Background(), "admin", "s3cret")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, driver.ErrBadConn)
}

func TestAuthLoginUnknownUserFromRepository(t *testing.T) {
	store := &fakeAdminStore{err: errors.Wrapf(sql.ErrNoRows, "get admin %q", "ghost")}
	svc := NewAuthService(store, "test-secret")

	_, err := svc.Login(context.Background(), "ghost", "s3cret")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
