package model

import (
	"time"
)

type UserRole string

const (
	Worker UserRole = "worker"
	Admin  UserRole = "admin"
)

// VerificationStatus 身份验证状态流转：unverified → email_verified → pending_review → verified
type VerificationStatus string

const (
	Unverified    VerificationStatus = "unverified"
	EmailVerified VerificationStatus = "email_verified"
	PendingReview VerificationStatus = "pending_review"
	Verified      VerificationStatus = "verified"
)

// swagger:model User
type User struct {
	BaseModel
	Name     string   `gorm:"size:100;not null" json:"name"`
	Email    string   `gorm:"size:100;unique;not null" json:"email"`
	Password string   `gorm:"size:100;not null" json:"-"`
	Role     UserRole `gorm:"type:enum('worker','admin');default:'worker'" json:"role"`

	// 余额只通过已验收的提交增加，提现减少；两者都在事务中更新
	Balance        float64 `gorm:"type:decimal(10,2);default:0" json:"balance"`
	TotalEarned    float64 `gorm:"type:decimal(10,2);default:0" json:"totalEarned"`
	CompletedTasks int     `gorm:"default:0" json:"completedTasks"`

	Verification   VerificationStatus `gorm:"size:20;default:'unverified'" json:"verification"`
	PayoutProvider string             `gorm:"size:30" json:"payoutProvider"`
	PayoutAccount  string             `gorm:"size:100" json:"payoutAccount"`

	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastSeen"`
}

func (User) TableName() string {
	return "users"
}
