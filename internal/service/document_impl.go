package service

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"taskly.com/internal/domain"
	"taskly.com/internal/model"
)

// DocumentServiceImpl implements domain.DocumentService.
type DocumentServiceImpl struct {
	db *gorm.DB
}

func NewDocumentService(db *gorm.DB) *DocumentServiceImpl {
	return &DocumentServiceImpl{db: db}
}

func (s *DocumentServiceImpl) ListDocuments(ctx context.Context) ([]model.Document, error) {
	var docs []model.Document
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&docs).Error; err != nil {
		return nil, domain.NewInternalError("failed to fetch documents", err)
	}
	return docs, nil
}

func (s *DocumentServiceImpl) GetDocument(ctx context.Context, id uint) (*model.Document, error) {
	var doc model.Document
	if err := s.db.WithContext(ctx).First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("document not found")
		}
		return nil, domain.NewInternalError("failed to fetch document", err)
	}
	return &doc, nil
}

func (s *DocumentServiceImpl) CreateDocument(ctx context.Context, doc *model.Document) error {
	if err := s.db.WithContext(ctx).Create(doc).Error; err != nil {
		return domain.NewInternalError("failed to create document", err)
	}
	return nil
}

func (s *DocumentServiceImpl) UpdateDocument(ctx context.Context, doc *model.Document) error {
	var existing model.Document
	if err := s.db.WithContext(ctx).First(&existing, doc.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NewNotFoundError("document not found")
		}
		return domain.NewInternalError("failed to fetch document", err)
	}

	doc.CreatedAt = existing.CreatedAt
	if err := s.db.WithContext(ctx).Save(doc).Error; err != nil {
		return domain.NewInternalError("failed to update document", err)
	}
	return nil
}

func (s *DocumentServiceImpl) DeleteDocument(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&model.Document{}, id)
	if result.Error != nil {
		return domain.NewInternalError("failed to delete document", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("document not found")
	}
	return nil
}

var _ domain.DocumentService = (*DocumentServiceImpl)(nil)
