package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"
	"golang.org/x/crypto/bcrypt"

	"github.com/aliskhannn/corpsite/internal/model"
	"github.com/aliskhannn/corpsite/internal/repository/admin"
	"github.com/aliskhannn/corpsite/internal/repository/session"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/auth/mock.go -package=mocks

var (
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrUnauthorized       = errors.New("unauthorized")
)

type adminRepository interface {
	GetAdminByLogin(context.Context, string) (model.Admin, error)
	UpsertAdmin(context.Context, string, string) error
}

type sessionRepository interface {
	SaveSession(context.Context, string, int64, time.Duration) error
	GetSession(context.Context, string) (int64, error)
	DeleteSession(context.Context, string) error
}

type Service struct {
	admins   adminRepository
	sessions sessionRepository
	ttl      time.Duration
}

func NewService(admins adminRepository, sessions sessionRepository, ttl time.Duration) *Service {
	return &Service{admins: admins, sessions: sessions, ttl: ttl}
}

// Login checks the credentials and opens a session, returning its token.
func (s *Service) Login(ctx context.Context, login, password string) (string, error) {
	a, err := s.admins.GetAdminByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return "", ErrInvalidCredentials
		}

		return "", fmt.Errorf("get admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.SaveSession(ctx, token, a.ID, s.ttl); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}

	zlog.Logger.Info().Str("login", login).Msg("admin logged in")

	return token, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if err := s.sessions.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// Authenticate returns the admin id behind a session token.
func (s *Service) Authenticate(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrUnauthorized
	}

	id, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return 0, ErrUnauthorized
		}

		return 0, fmt.Errorf("get session: %w", err)
	}

	return id, nil
}

// EnsureAdmin creates the configured admin, or resets its password when the
// stored hash no longer matches the configured one.
func (s *Service) EnsureAdmin(ctx context.Context, login, password string) error {
	a, err := s.admins.GetAdminByLogin(ctx, login)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil {
			return nil
		}
	case !errors.Is(err, admin.ErrAdminNotFound):
		return fmt.Errorf("get admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.admins.UpsertAdmin(ctx, login, string(hash)); err != nil {
		return fmt.Errorf("upsert admin: %w", err)
	}

	zlog.Logger.Info().Str("login", login).Msg("admin account synced from config")

	return nil
}
