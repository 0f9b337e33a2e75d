package model

// WithdrawalStatus 提现单状态
type WithdrawalStatus string

const (
	WithdrawalPending  WithdrawalStatus = "pending"
	WithdrawalPaid     WithdrawalStatus = "paid"
	WithdrawalRejected WithdrawalStatus = "rejected"
)

// Withdrawal 提现申请。创建时从余额中扣减，账户信息做快照
// swagger:model Withdrawal
type Withdrawal struct {
	UUIDBase
	UserID   uint             `gorm:"index;type:bigint unsigned" json:"userId"`
	User     *User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Amount   float64          `gorm:"type:decimal(10,2)" json:"amount"`
	Provider string           `gorm:"size:30" json:"provider"`
	Account  string           `gorm:"size:100" json:"account"`
	Status   WithdrawalStatus `gorm:"size:20;default:'pending'" json:"status"`
}

func (Withdrawal) TableName() string {
	return "withdrawals"
}
