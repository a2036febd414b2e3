package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type documentStorage struct {
	db *gorm.DB
}

func NewDocumentStorage(db *gorm.DB) *documentStorage {
	return &documentStorage{
		db: db,
	}
}

// Create is a function that creates a new document in the database.
func (s *documentStorage) Create(ctx context.Context, document *entity.Document) (*entity.Document, error) {
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Create(&document).Error
	})
	return document, err
}

// Get is a function that gets a document from the database by id.
func (s *documentStorage) Get(ctx context.Context, id uint) (*entity.Document, error) {
	var document entity.Document
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Preload("Category").Where("id = ?", id).First(&document).Error
	})
	return &document, err
}

// GetAll is a function that gets all documents with their categories.
func (s *documentStorage) GetAll(ctx context.Context) ([]entity.Document, error) {
	var documents []entity.Document
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Preload("Category").Order("created_at DESC").Find(&documents).Error
	})
	return documents, err
}

// Delete is a function that deletes a document from the database.
func (s *documentStorage) Delete(ctx context.Context, id uint) error {
	return withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Delete(&entity.Document{}, id).Error
	})
}

type categoryStorage struct {
	db *gorm.DB
}

func NewCategoryStorage(db *gorm.DB) *categoryStorage {
	return &categoryStorage{
		db: db,
	}
}

// Create is a function that creates a new category in the database.
func (s *categoryStorage) Create(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Create(&category).Error
	})
	return category, err
}

// GetAll is a function that gets all categories from the database.
func (s *categoryStorage) GetAll(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	err := withRetry(ctx, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Order("name").Find(&categories).Error
	})
	return categories, err
}
