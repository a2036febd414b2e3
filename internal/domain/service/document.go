package service

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/mizusawa-dev/swimtrack/internal/domain/entity"
)

type DocumentStorage interface {
	Create(ctx context.Context, document *entity.Document) (*entity.Document, error)
	Get(ctx context.Context, id uint) (*entity.Document, error)
	GetAll(ctx context.Context) ([]entity.Document, error)
	Delete(ctx context.Context, id uint) error
}

type CategoryStorage interface {
	Create(ctx context.Context, category *entity.Category) (*entity.Category, error)
	GetAll(ctx context.Context) ([]entity.Category, error)
}

// DocumentService stores uploaded files under uploadsDir with uuid names and
// keeps their metadata in the database.
type DocumentService struct {
	storage    DocumentStorage
	uploadsDir string
}

func NewDocumentService(storage DocumentStorage, uploadsDir string) (*DocumentService, error) {
	if err := os.MkdirAll(uploadsDir, 0o755); err != nil {
		return nil, err
	}
	return &DocumentService{
		storage:    storage,
		uploadsDir: uploadsDir,
	}, nil
}

// Upload writes the file to disk and records its metadata. The stored name
// keeps the original extension so downloads get a sensible content type.
func (s *DocumentService) Upload(ctx context.Context, document entity.Document, file io.Reader) (*entity.Document, error) {
	document.StoredName = uuid.NewString() + filepath.Ext(document.FileName)

	dst, err := os.Create(filepath.Join(s.uploadsDir, document.StoredName))
	if err != nil {
		return nil, err
	}
	size, err := io.Copy(dst, file)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(filepath.Join(s.uploadsDir, document.StoredName))
		return nil, err
	}
	document.Size = size

	created, err := s.storage.Create(ctx, &document)
	if err != nil {
		_ = os.Remove(filepath.Join(s.uploadsDir, document.StoredName))
		return nil, err
	}
	return created, nil
}

func (s *DocumentService) Get(ctx context.Context, id uint) (*entity.Document, error) {
	return s.storage.Get(ctx, id)
}

func (s *DocumentService) GetAll(ctx context.Context) ([]entity.Document, error) {
	return s.storage.GetAll(ctx)
}

// FilePath returns the on-disk location of a stored document.
func (s *DocumentService) FilePath(document *entity.Document) string {
	return filepath.Join(s.uploadsDir, document.StoredName)
}

// Delete removes the metadata row and then the file. A missing file is not
// an error; the row is the source of truth.
func (s *DocumentService) Delete(ctx context.Context, id uint) error {
	document, err := s.storage.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, id); err != nil {
		return err
	}
	_ = os.Remove(s.FilePath(document))
	return nil
}

type CategoryService struct {
	storage CategoryStorage
}

func NewCategoryService(storage CategoryStorage) *CategoryService {
	return &CategoryService{
		storage: storage,
	}
}

func (s *CategoryService) Create(ctx context.Context, category *entity.Category) (*entity.Category, error) {
	return s.storage.Create(ctx, category)
}

func (s *CategoryService) GetAll(ctx context.Context) ([]entity.Category, error) {
	return s.storage.GetAll(ctx)
}
