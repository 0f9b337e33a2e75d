package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email already registered")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBelowMinimum        = errors.New("amount below minimum withdrawal")
	ErrNoPayoutAccount     = errors.New("no payout account linked")
	ErrCodeExpired         = errors.New("verification code expired, please resend")
	ErrCodeInvalid         = errors.New("invalid verification code")
	ErrTooManyAttempts     = errors.New("too many verification attempts, please resend a new code")
	ErrNotVerified         = errors.New("account not verified")
)
