package repository

import (
	"taskforge_backend/internal/model"

	"gorm.io/gorm"
)

type ActivityRepository struct {
	DB *gorm.DB
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

// Create 在给定事务中追加一条完成记录
func (r *ActivityRepository) Create(tx *gorm.DB, record *model.ActivityRecord) error {
	return tx.Create(record).Error
}

// ListRecent 按完成时间倒序返回最近的记录，列表长度有上限
func (r *ActivityRepository) ListRecent(userID uint, limit int) ([]model.ActivityRecord, error) {
	var records []model.ActivityRecord
	err := r.DB.Where("user_id = ?", userID).
		Order("completed_at DESC").
		Limit(limit).
		Find(&records).Error
	return records, err
}

func (r *ActivityRepository) ListByUser(userID uint, page, limit int) ([]model.ActivityRecord, int64, error) {
	var records []model.ActivityRecord
	var total int64

	query := r.DB.Model(&model.ActivityRecord{}).Where("user_id = ?", userID)
	query.Count(&total)

	offset := (page - 1) * limit
	err := query.Order("completed_at DESC").Offset(offset).Limit(limit).Find(&records).Error
	return records, total, err
}

func (r *ActivityRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.ActivityRecord{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
