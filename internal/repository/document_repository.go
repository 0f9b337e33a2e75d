package repository

import (
	"taskforge_backend/internal/model"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	DB *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

func (r *DocumentRepository) Create(doc *model.VerificationDocument) error {
	return r.DB.Create(doc).Error
}

func (r *DocumentRepository) ListByUser(userID uint) ([]model.VerificationDocument, error) {
	var docs []model.VerificationDocument
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) FindByID(id uint) (*model.VerificationDocument, error) {
	var doc model.VerificationDocument
	err := r.DB.First(&doc, id).Error
	return &doc, err
}

func (r *DocumentRepository) ListByStatus(status model.DocumentStatus) ([]model.VerificationDocument, error) {
	var docs []model.VerificationDocument
	err := r.DB.Where("status = ?", status).Order("created_at ASC").Find(&docs).Error
	return docs, err
}

func (r *DocumentRepository) UpdateStatus(id uint, status model.DocumentStatus) error {
	return r.DB.Model(&model.VerificationDocument{}).
		Where("id = ?", id).
		Update("status", status).
		Error
}
