package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leadflow-simple/dto"
	"github.com/leadflow-simple/models"
	"github.com/leadflow-simple/utils"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("supersafe")
	if err != nil {
		t.Fatalf("hash: unexpected error: %v", err)
	}
	if hash == "supersafe" {
		t.Fatal("hash must not equal the plaintext")
	}

	if !VerifyPassword("supersafe", hash) {
		t.Fatal("expected correct password to verify")
	}
	if VerifyPassword("wrong", hash) {
		t.Fatal("expected wrong password to fail verification")
	}

	// Salt freshness: hashing the same input twice differs
	other, err := HashPassword("supersafe")
	if err != nil {
		t.Fatalf("hash: unexpected error: %v", err)
	}
	if hash == other {
		t.Fatal("expected two hashes of the same password to differ")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if VerifyPassword("anything", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash must verify as false")
	}
	if VerifyPassword("anything", "") {
		t.Fatal("empty hash must verify as false")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	svc := NewAuthService(&fakeUserStore{}, "test-secret")

	token, err := svc.IssueToken("user-1", models.RoleSeller)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims, err := svc.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("expected subject user-1, got %q", claims.Subject)
	}
	if claims.Role != string(models.RoleSeller) {
		t.Fatalf("expected role %s, got %q", models.RoleSeller, claims.Role)
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	svc := NewAuthService(&fakeUserStore{}, "test-secret")

	// Sign a token that expired an hour ago with the same secret
	claims := dto.TokenClaims{
		Role: string(models.RoleSeller),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := svc.VerifyToken(expired); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestVerifyTokenInvalid(t *testing.T) {
	svc := NewAuthService(&fakeUserStore{}, "test-secret")

	if _, err := svc.VerifyToken("garbage"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for garbage, got %v", err)
	}

	// A token signed with a different secret must not verify
	other := NewAuthService(&fakeUserStore{}, "other-secret")
	token, err := other.IssueToken("user-1", models.RoleSeller)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := svc.VerifyToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for wrong signature, got %v", err)
	}
}

func newLoginFixture(t *testing.T, active bool) (*AuthService, models.User) {
	t.Helper()
	hash, err := HashPassword("correct-horse")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	user := models.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		Name:         "Alice",
		Role:         models.RoleSeller,
		Active:       active,
		PasswordHash: hash,
	}
	return NewAuthService(&fakeUserStore{users: []models.User{user}}, "test-secret"), user
}

func TestLoginSuccess(t *testing.T) {
	svc, user := newLoginFixture(t, true)

	resp, err := svc.Login(dto.LoginRequest{Email: user.Email, Password: "correct-horse"})
	if err != nil {
		t.Fatalf("login: unexpected error: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("expected a token")
	}
	if resp.TokenType != "bearer" {
		t.Fatalf("expected token type bearer, got %q", resp.TokenType)
	}
	if resp.User.PasswordHash != "" {
		t.Fatal("password hash leaked into the login response")
	}
	if resp.User.ID != user.ID {
		t.Fatalf("expected user id %q, got %q", user.ID, resp.User.ID)
	}
}

func TestLoginEnumerationSafe(t *testing.T) {
	svc, user := newLoginFixture(t, true)

	_, wrongPassword := errMessage(svc.Login(dto.LoginRequest{Email: user.Email, Password: "nope"}))
	_, unknownEmail := errMessage(svc.Login(dto.LoginRequest{Email: "ghost@example.com", Password: "nope"}))

	if wrongPassword != unknownEmail {
		t.Fatalf("wrong-password and unknown-email messages must match: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	svc, user := newLoginFixture(t, false)

	_, err := svc.Login(dto.LoginRequest{Email: user.Email, Password: "correct-horse"})
	if err == nil {
		t.Fatal("expected disabled account to fail login")
	}
	if utils.KindOf(err) != utils.KindForbidden {
		t.Fatalf("expected Forbidden kind, got %v", utils.KindOf(err))
	}

	// The disabled-account message is deliberately distinguishable from
	// the generic credential failure
	_, generic := errMessage(svc.Login(dto.LoginRequest{Email: user.Email, Password: "nope"}))
	if utils.UserMessage(err) == generic {
		t.Fatal("disabled-account message must differ from the generic credential failure")
	}
}

func errMessage(resp *dto.AuthResponse, err error) (*dto.AuthResponse, string) {
	if err == nil {
		return resp, ""
	}
	return resp, utils.UserMessage(err)
}
