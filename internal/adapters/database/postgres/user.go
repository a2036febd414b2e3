package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type userStorage struct {
	db *gorm.DB
}

func NewUserStorage(db *gorm.DB) *userStorage {
	return &userStorage{
		db: db,
	}
}

// Create is a function that creates a new user in the database.
func (s *userStorage) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Create(&user).Error
	})
	return user, err
}

// Get is a function that gets a user from the database by id.
func (s *userStorage) Get(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	})
	return &user, err
}

// GetByUsername is a function that gets a user from the database by username.
func (s *userStorage) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	var user entity.User
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	})
	return &user, err
}

// GetAll is a function that gets all users from the database, kana order.
func (s *userStorage) GetAll(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Order("kana").Find(&users).Error
	})
	return users, err
}

// GetByRole is a function that gets all users with the given role, kana order.
func (s *userStorage) GetByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	var users []entity.User
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Where("role = ?", role).Order("kana").Find(&users).Error
	})
	return users, err
}

// Update is a function that updates a user in the database.
func (s *userStorage) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Save(&user).Error
	})
	return user, err
}

// Delete removes a user together with their swim records.
func (s *userStorage) Delete(ctx context.Context, id uint) error {
	return withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("student_id = ?", id).Delete(&entity.SwimRecord{}).Error; err != nil {
				return err
			}
			return tx.Delete(&entity.User{}, id).Error
		})
	})
}

// Count is a function that gets the count of users from the database.
func (s *userStorage) Count(ctx context.Context) (int64, error) {
	var count int64
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error
	})
	return count, err
}
