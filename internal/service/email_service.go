package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"taskforge_backend/internal/config"
	"time"

	"go.uber.org/zap"
)

// EmailService 通过 Resend HTTP API 发送邮件。
// 未配置 APIKey 时降级为日志输出，便于本地开发。
type EmailService struct {
	Cfg    *config.Config
	Logger *zap.Logger
	client *http.Client
}

func NewEmailService(cfg *config.Config, logger *zap.Logger) *EmailService {
	return &EmailService{
		Cfg:    cfg,
		Logger: logger,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *EmailService) Send(ctx context.Context, to, subject, html string) error {
	if s.Cfg.Email.APIKey == "" {
		s.Logger.Info("邮件服务未配置APIKey，跳过发送",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}

	body, err := json.Marshal(resendRequest{
		From:    s.Cfg.Email.From,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Cfg.Email.APIEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.Cfg.Email.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("email provider returned status %d", resp.StatusCode)
	}
	return nil
}

// SendVerificationCode 给用户发送6位验证码邮件
func (s *EmailService) SendVerificationCode(ctx context.Context, to, name, code string) error {
	subject := "TaskForge Email Verification Code"
	return s.Send(ctx, to, subject, VerificationEmailHTML(name, code))
}

// VerificationEmailHTML 渲染验证码邮件正文，纯函数便于测试
func VerificationEmailHTML(name, code string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Hello %s,</h2>
  <p>Your TaskForge verification code is:</p>
  <p style="font-size: 32px; font-weight: bold; letter-spacing: 8px;">%s</p>
  <p>This code expires in 15 minutes. If you did not request it, please ignore this email.</p>
</div>`, name, code)
}
