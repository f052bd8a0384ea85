package util

import (
	"testing"
	"time"

	"sped_lesson_backend/internal/model"
)

func testUser() *model.User {
	u := &model.User{
		Name:   "김교사",
		Email:  "teacher@example.com",
		Role:   model.Teacher,
		School: "한빛특수학교",
	}
	u.ID = 7
	return u
}

func TestGenerateAndParseJWT(t *testing.T) {
	secret := "test-secret-test-secret-test-secret"

	token, err := GenerateJWT(testUser(), secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	claims, err := ParseJWT(token, secret)
	if err != nil {
		t.Fatalf("ParseJWT() error = %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Role != model.Teacher {
		t.Errorf("Role = %q, want %q", claims.Role, model.Teacher)
	}
	if claims.Email != "teacher@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), "secret-one-secret-one-secret-one", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ParseJWT(token, "secret-two-secret-two-secret-two"); err == nil {
		t.Error("ParseJWT() with wrong secret should fail")
	}
}

func TestParseJWTExpired(t *testing.T) {
	secret := "test-secret-test-secret-test-secret"

	token, err := GenerateJWT(testUser(), secret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT() error = %v", err)
	}

	if _, err := ParseJWT(token, secret); err == nil {
		t.Error("ParseJWT() with expired token should fail")
	}
}

func TestAllowedAttachmentExtension(t *testing.T) {
	cases := []struct {
		filename string
		want     bool
	}{
		{"지도안.hwp", true},
		{"계획서.PDF", true},
		{"사진.jpeg", true},
		{"실행파일.exe", false},
		{"확장자없음", false},
	}
	for _, c := range cases {
		if got := AllowedAttachmentExtension(c.filename); got != c.want {
			t.Errorf("AllowedAttachmentExtension(%q) = %v, want %v", c.filename, got, c.want)
		}
	}
}
