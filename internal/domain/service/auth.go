package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mizusawa-dev/swimtrack/internal/domain/common/errorz"
	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type SessionStorage interface {
	Create(ctx context.Context, userID uint, ttl time.Duration) (string, error)
	Get(ctx context.Context, token string) (uint, error)
	Delete(ctx context.Context, token string) error
}

type AuthService struct {
	users    UserStorage
	sessions SessionStorage
	ttl      time.Duration
}

func NewAuthService(users UserStorage, sessions SessionStorage, ttl time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
	}
}

// Login checks the credentials and opens a session. Disabled accounts cannot
// log in even with a correct password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*entity.User, string, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", errorz.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", errorz.ErrInvalidCredentials
	}
	if !user.Active {
		return nil, "", errorz.ErrAccountDisabled
	}

	token, err := s.sessions.Create(ctx, user.ID, s.ttl)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout drops the session token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Resolve maps a session token back to its user.
func (s *AuthService) Resolve(ctx context.Context, token string) (*entity.User, error) {
	userID, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrInvalidSession
		}
		return nil, err
	}
	if !user.Active {
		return nil, errorz.ErrAccountDisabled
	}
	return user, nil
}
