package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"taskforge_backend/internal/model"
	"taskforge_backend/internal/repository"
	"taskforge_backend/internal/util"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	codeTTL     = 15 * time.Minute
	maxAttempts = 5
)

// VerificationService 管理邮箱验证码与实名材料。
// 验证码存Redis，带TTL，一次性使用，错误次数超限即作废。
type VerificationService struct {
	UserRepo     *repository.UserRepository
	DocumentRepo *repository.DocumentRepository
	Email        *EmailService
	Storage      *StorageService
	Redis        *redis.Client
}

func NewVerificationService(userRepo *repository.UserRepository, documentRepo *repository.DocumentRepository, email *EmailService, storage *StorageService, rdb *redis.Client) *VerificationService {
	return &VerificationService{
		UserRepo:     userRepo,
		DocumentRepo: documentRepo,
		Email:        email,
		Storage:      storage,
		Redis:        rdb,
	}
}

func codeKey(userID uint) string {
	return fmt.Sprintf("verify:code:%d", userID)
}

func attemptsKey(userID uint) string {
	return fmt.Sprintf("verify:attempts:%d", userID)
}

// GenerateCode 生成6位数字验证码
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// SendCode 生成并下发验证码，覆盖同一用户的旧码
func (s *VerificationService) SendCode(ctx context.Context, user *model.User) error {
	code, err := GenerateCode()
	if err != nil {
		return err
	}

	if err := s.Redis.Set(ctx, codeKey(user.ID), code, codeTTL).Err(); err != nil {
		return err
	}
	if err := s.Redis.Del(ctx, attemptsKey(user.ID)).Err(); err != nil {
		return err
	}

	return s.Email.SendVerificationCode(ctx, user.Email, user.Name, code)
}

// ConfirmCode 核对验证码。命中则标记邮箱已验证并作废该码；
// 连续错误达到上限后同样作废，需重新下发。
func (s *VerificationService) ConfirmCode(ctx context.Context, userID uint, code string) error {
	stored, err := s.Redis.Get(ctx, codeKey(userID)).Result()
	if err == redis.Nil {
		return util.ErrCodeExpired
	} else if err != nil {
		return err
	}

	if stored != code {
		attempts, err := s.Redis.Incr(ctx, attemptsKey(userID)).Result()
		if err != nil {
			return err
		}
		s.Redis.Expire(ctx, attemptsKey(userID), codeTTL)
		if attempts >= maxAttempts {
			s.Redis.Del(ctx, codeKey(userID), attemptsKey(userID))
			return util.ErrTooManyAttempts
		}
		return util.ErrCodeInvalid
	}

	if err := s.Redis.Del(ctx, codeKey(userID), attemptsKey(userID)).Err(); err != nil {
		return err
	}

	return s.UserRepo.SetVerification(userID, model.EmailVerified)
}

// SubmitDocument 上传实名材料并把账号置为待审核。
// 要求邮箱已先行验证。
func (s *VerificationService) SubmitDocument(ctx context.Context, user *model.User, filename, contentType string, size int64, reader io.Reader) (*model.VerificationDocument, error) {
	if user.Verification == model.Unverified {
		return nil, util.ErrNotVerified
	}

	objectKey := fmt.Sprintf("verification/%d/%d_%s", user.ID, time.Now().UnixMilli(), filename)
	if err := s.Storage.Upload(ctx, objectKey, contentType, size, reader); err != nil {
		return nil, err
	}

	doc := &model.VerificationDocument{
		UserID:      user.ID,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Status:      model.DocumentPending,
	}
	if err := s.DocumentRepo.Create(doc); err != nil {
		return nil, err
	}

	if user.Verification == model.EmailVerified {
		if err := s.UserRepo.SetVerification(user.ID, model.PendingReview); err != nil {
			return nil, err
		}
	}
	return doc, nil
}

// ListDocuments 返回用户提交的全部材料记录
func (s *VerificationService) ListDocuments(userID uint) ([]model.VerificationDocument, error) {
	return s.DocumentRepo.ListByUser(userID)
}

// ListPendingDocuments 管理端待审核队列，按提交时间先后排列
func (s *VerificationService) ListPendingDocuments() ([]model.VerificationDocument, error) {
	return s.DocumentRepo.ListByStatus(model.DocumentPending)
}

// ReviewDocument 审核实名材料。通过则账号升为已认证，
// 驳回则回退到仅邮箱验证，用户可重新提交。
func (s *VerificationService) ReviewDocument(docID uint, approve bool) error {
	doc, err := s.DocumentRepo.FindByID(docID)
	if err != nil {
		return err
	}

	if approve {
		if err := s.DocumentRepo.UpdateStatus(doc.ID, model.DocumentApproved); err != nil {
			return err
		}
		return s.UserRepo.SetVerification(doc.UserID, model.Verified)
	}

	if err := s.DocumentRepo.UpdateStatus(doc.ID, model.DocumentRejected); err != nil {
		return err
	}
	return s.UserRepo.SetVerification(doc.UserID, model.EmailVerified)
}
