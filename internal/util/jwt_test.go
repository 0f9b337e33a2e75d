package util

import (
	"taskforge_backend/internal/model"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	user := &model.User{
		Email: "worker@example.com",
		Role:  model.Worker,
	}
	user.ID = 42

	token, err := GenerateJWT(user, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ParseJWT(token, "test-secret")
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.UserID != 42 || claims.Email != "worker@example.com" || claims.Role != model.Worker {
		t.Errorf("claims mismatch: %+v", claims)
	}
}

func TestJWTWrongSecret(t *testing.T) {
	user := &model.User{Email: "worker@example.com", Role: model.Worker}
	user.ID = 1

	token, err := GenerateJWT(user, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "secret-b"); err == nil {
		t.Fatal("expected parse failure with wrong secret")
	}
}

func TestJWTExpired(t *testing.T) {
	user := &model.User{Email: "worker@example.com", Role: model.Worker}
	user.ID = 1

	token, err := GenerateJWT(user, "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	if _, err := ParseJWT(token, "secret"); err == nil {
		t.Fatal("expected parse failure for expired token")
	}
}
