package repository

import (
	"taskforge_backend/internal/model"

	"gorm.io/gorm"
)

type WithdrawalRepository struct {
	DB *gorm.DB
}

func NewWithdrawalRepository(db *gorm.DB) *WithdrawalRepository {
	return &WithdrawalRepository{DB: db}
}

func (r *WithdrawalRepository) Create(tx *gorm.DB, w *model.Withdrawal) error {
	return tx.Create(w).Error
}

func (r *WithdrawalRepository) ListByUser(userID uint) ([]model.Withdrawal, error) {
	var list []model.Withdrawal
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *WithdrawalRepository) FindByID(id string) (*model.Withdrawal, error) {
	var w model.Withdrawal
	err := r.DB.Where("id = ?", id).First(&w).Error
	return &w, err
}

func (r *WithdrawalRepository) ListByStatus(status model.WithdrawalStatus) ([]model.Withdrawal, error) {
	var list []model.Withdrawal
	err := r.DB.Where("status = ?", status).Order("created_at ASC").Find(&list).Error
	return list, err
}

// UpdateStatus 仅允许从 pending 状态流转，防止重复结算
func (r *WithdrawalRepository) UpdateStatus(tx *gorm.DB, id string, status model.WithdrawalStatus) error {
	result := tx.Model(&model.Withdrawal{}).
		Where("id = ? AND status = ?", id, model.WithdrawalPending).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
