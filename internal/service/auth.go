package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"github.com/roksva123/go-productivity-backend/internal/model"
)

const tokenTTL = 12 * time.Hour

var ErrInvalidCredentials = errors.New("username or password is incorrect")

type AdminStore interface {
	GetAdminByUsername(ctx context.Context, username string) (*model.Admin, error)
	UpsertAdmin(ctx context.Context, username, passwordHash string) error
}

type AuthService struct {
	repo   AdminStore
	jwtKey []byte
	now    func() time.Time
}

func NewAuthService(repo AdminStore, jwtKey string) *AuthService {
	return &AuthService{repo: repo, jwtKey: []byte(jwtKey), now: time.Now}
}

// SeedAdmin stores (or resets) the admin account with a bcrypt hash.
func (s *AuthService) SeedAdmin(ctx context.Context, username, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return errors.Wrap(err, "hash admin password")
	}
	return s.repo.UpsertAdmin(ctx, username, string(hashed))
}

// Login checks the credentials and issues an HS256 token.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.LoginResponse, error) {
	admin, err := s.repo.GetAdminByUsername(ctx, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "load admin")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	exp := now.Add(tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": admin.ID,
		"iat": now.Unix(),
		"exp": exp.Unix(),
	})

	tokenStr, err := token.SignedString(s.jwtKey)
	if err != nil {
		return nil, errors.Wrap(err, "sign token")
	}

	return &model.LoginResponse{Token: tokenStr, ExpiresAt: exp.Unix()}, nil
}
