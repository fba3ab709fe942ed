package auth

import (
	"os"
	"testing"

	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	claims := Claims{
		UserID: uuid.New().String(),
		Email:  "test@example.com",
		Name:   "Test User",
		Role:   RoleStudent,
	}

	token, err := GenerateToken(claims)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	got, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if got != claims {
		t.Fatalf("claims round-trip mismatch: got %+v, want %+v", got, claims)
	}
}

func TestGenerateToken_EmptyUserID(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken(Claims{Email: "x@y.z"}); err == nil {
		t.Fatal("expected error for empty user id")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}
