package repository

import (
	"taskforge_backend/internal/model"
	"taskforge_backend/internal/util"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	now := time.Now()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	if user.UpdatedAt.IsZero() {
		user.UpdatedAt = now
	}
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).
		Error
}

// CreditEarnings 入账：余额与累计收入同步递增，完成数+1。
// SQL层自增，避免多端同时提交时丢失更新。
func (r *UserRepository) CreditEarnings(tx *gorm.DB, userID uint, amount float64) error {
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"balance":         gorm.Expr("balance + ?", amount),
			"total_earned":    gorm.Expr("total_earned + ?", amount),
			"completed_tasks": gorm.Expr("completed_tasks + 1"),
		}).
		Error
}

// DebitBalance 扣款：条件更新，余额不足时不生效
func (r *UserRepository) DebitBalance(tx *gorm.DB, userID uint, amount float64) error {
	result := tx.Model(&model.User{}).
		Where("id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return util.ErrInsufficientBalance
	}
	return nil
}

// RefundBalance 提现被拒后返还余额，不影响累计收入
func (r *UserRepository) RefundBalance(tx *gorm.DB, userID uint, amount float64) error {
	return tx.Model(&model.User{}).
		Where("id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount)).
		Error
}

func (r *UserRepository) SetVerification(userID uint, status model.VerificationStatus) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("verification", status).
		Error
}
