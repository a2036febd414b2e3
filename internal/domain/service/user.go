package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/mizusawa-dev/swimtrack/internal/domain/common/errorz"
	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type UserStorage interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	Get(ctx context.Context, id uint) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	GetByRole(ctx context.Context, role entity.Role) ([]entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type UserService struct {
	storage UserStorage
}

func NewUserService(storage UserStorage) *UserService {
	return &UserService{
		storage: storage,
	}
}

// Create registers a user with a freshly hashed password.
func (s *UserService) Create(ctx context.Context, user entity.User, password string) (*entity.User, error) {
	if _, err := s.storage.GetByUsername(ctx, user.Username); err == nil {
		return nil, errorz.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.PasswordHash = string(hash)
	return s.storage.Create(ctx, &user)
}

func (s *UserService) Get(ctx context.Context, id uint) (*entity.User, error) {
	return s.storage.Get(ctx, id)
}

func (s *UserService) GetAll(ctx context.Context) ([]entity.User, error) {
	return s.storage.GetAll(ctx)
}

// Athletes returns the student accounts in kana order.
func (s *UserService) Athletes(ctx context.Context) ([]entity.User, error) {
	return s.storage.GetByRole(ctx, entity.RoleStudent)
}

// Update applies profile changes; password changes go through SetPassword.
func (s *UserService) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	return s.storage.Update(ctx, user)
}

// SetPassword rehashes and stores a new password.
func (s *UserService) SetPassword(ctx context.Context, id uint, password string) error {
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	_, err = s.storage.Update(ctx, user)
	return err
}

// SetActive toggles the soft-disable flag.
func (s *UserService) SetActive(ctx context.Context, id uint, active bool) (*entity.User, error) {
	user, err := s.storage.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Active = active
	return s.storage.Update(ctx, user)
}

// Delete removes the user and cascades to their records.
func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.storage.Delete(ctx, id)
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return s.storage.Count(ctx)
}
