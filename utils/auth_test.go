package utils

import (
	"os"
	"strconv"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "rahasia123" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPasswordHash("rahasia123", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("salah", hash) {
		t.Error("wrong password accepted")
	}
}

func TestGenerateTokenClaims(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	signed, err := GenerateToken(42, "kapster")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("parse token: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	if id, err := strconv.ParseUint(sub, 10, 64); err != nil || id != 42 {
		t.Errorf("sub = %q, want 42", sub)
	}
	if role, _ := claims["role"].(string); role != "kapster" {
		t.Errorf("role = %q, want kapster", role)
	}
	if _, ok := claims["exp"].(float64); !ok {
		t.Error("exp claim missing")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := GenerateToken(1, "admin"); err == nil {
		t.Error("token signed without a secret")
	}
}
