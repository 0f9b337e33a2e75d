package service

import (
	"context"
	"strings"
	"taskforge_backend/internal/config"
	"testing"

	"go.uber.org/zap"
)

func TestVerificationEmailHTML(t *testing.T) {
	html := VerificationEmailHTML("Alice", "042137")

	if !strings.Contains(html, "Alice") {
		t.Error("email body missing recipient name")
	}
	if !strings.Contains(html, "042137") {
		t.Error("email body missing verification code")
	}
	if !strings.Contains(html, "15 minutes") {
		t.Error("email body missing expiry notice")
	}
}

func TestSendSkipsWithoutAPIKey(t *testing.T) {
	cfg := &config.Config{}
	svc := NewEmailService(cfg, zap.NewNop())

	// 未配置APIKey时不应发起网络请求，直接返回成功
	if err := svc.Send(context.Background(), "user@example.com", "subject", "<p>body</p>"); err != nil {
		t.Fatalf("Send without api key: %v", err)
	}
}
