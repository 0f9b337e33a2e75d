package service

import (
	"taskforge_backend/internal/config"
	"taskforge_backend/internal/model"
	"taskforge_backend/internal/repository"
	"taskforge_backend/internal/util"

	"gorm.io/gorm"
)

// WithdrawalService 管理收款账户与提现。
// 扣款与提现单创建必须同事务，避免余额被重复提走。
type WithdrawalService struct {
	UserRepo       *repository.UserRepository
	WithdrawalRepo *repository.WithdrawalRepository
	Cfg            *config.Config
	DB             *gorm.DB
}

func NewWithdrawalService(userRepo *repository.UserRepository, withdrawalRepo *repository.WithdrawalRepository, cfg *config.Config, db *gorm.DB) *WithdrawalService {
	return &WithdrawalService{
		UserRepo:       userRepo,
		WithdrawalRepo: withdrawalRepo,
		Cfg:            cfg,
		DB:             db,
	}
}

type EarningsSummary struct {
	Balance           float64            `json:"balance"`
	TotalEarned       float64            `json:"totalEarned"`
	PayoutProvider    string             `json:"payoutProvider"`
	PayoutAccount     string             `json:"payoutAccount"`
	MinimumWithdrawal float64            `json:"minimumWithdrawal"`
	Withdrawals       []model.Withdrawal `json:"withdrawals"`
}

// GetEarnings 收益页汇总：余额、累计收入、收款账户与提现历史
func (s *WithdrawalService) GetEarnings(userID uint) (*EarningsSummary, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}

	withdrawals, err := s.WithdrawalRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if withdrawals == nil {
		withdrawals = []model.Withdrawal{}
	}

	return &EarningsSummary{
		Balance:           user.Balance,
		TotalEarned:       user.TotalEarned,
		PayoutProvider:    user.PayoutProvider,
		PayoutAccount:     user.PayoutAccount,
		MinimumWithdrawal: s.Cfg.Payout.MinimumWithdrawal,
		Withdrawals:       withdrawals,
	}, nil
}

// LinkPayoutAccount 绑定或更换收款账户
func (s *WithdrawalService) LinkPayoutAccount(userID uint, provider, account string) error {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return err
	}
	user.PayoutProvider = provider
	user.PayoutAccount = account
	return s.UserRepo.Update(user)
}

// RequestWithdrawal 发起提现：校验最低金额与账户绑定，
// 然后在事务中扣减余额并创建待处理提现单。
func (s *WithdrawalService) RequestWithdrawal(userID uint, amount float64) (*model.Withdrawal, error) {
	if amount < s.Cfg.Payout.MinimumWithdrawal {
		return nil, util.ErrBelowMinimum
	}

	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user.PayoutAccount == "" {
		return nil, util.ErrNoPayoutAccount
	}

	w := &model.Withdrawal{
		UserID:   userID,
		Amount:   amount,
		Provider: user.PayoutProvider,
		Account:  user.PayoutAccount,
		Status:   model.WithdrawalPending,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.DebitBalance(tx, userID, amount); err != nil {
			return err
		}
		return s.WithdrawalRepo.Create(tx, w)
	})
	if err != nil {
		return nil, err
	}

	return w, nil
}

// ListWithdrawals 返回用户的提现历史
func (s *WithdrawalService) ListWithdrawals(userID uint) ([]model.Withdrawal, error) {
	return s.WithdrawalRepo.ListByUser(userID)
}

// ListPendingWithdrawals 管理端待处理提现队列
func (s *WithdrawalService) ListPendingWithdrawals() ([]model.Withdrawal, error) {
	return s.WithdrawalRepo.ListByStatus(model.WithdrawalPending)
}

// ReviewWithdrawal 结算提现单。打款成功标记为已支付；
// 驳回时在同一事务中把金额退回用户余额。
func (s *WithdrawalService) ReviewWithdrawal(id string, approve bool) error {
	w, err := s.WithdrawalRepo.FindByID(id)
	if err != nil {
		return err
	}

	if approve {
		return s.DB.Transaction(func(tx *gorm.DB) error {
			return s.WithdrawalRepo.UpdateStatus(tx, w.ID, model.WithdrawalPaid)
		})
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.WithdrawalRepo.UpdateStatus(tx, w.ID, model.WithdrawalRejected); err != nil {
			return err
		}
		return s.UserRepo.RefundBalance(tx, w.UserID, w.Amount)
	})
}
