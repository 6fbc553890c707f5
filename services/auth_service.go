package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/leadflow-simple/dto"
	"github.com/leadflow-simple/models"
	"github.com/leadflow-simple/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// tokenTTL is the bearer token lifetime
const tokenTTL = 8 * time.Hour

var (
	// ErrTokenExpired signals a token past its expiry
	ErrTokenExpired = errors.New("auth: token expired")
	// ErrTokenInvalid signals a malformed token or a bad signature
	ErrTokenInvalid = errors.New("auth: token invalid")
)

// UserFinder is the subset of the user store the auth service needs
type UserFinder interface {
	FindByID(id string) (models.User, error)
	FindByEmail(email string) (models.User, error)
}

// AuthService handles credentials and token issuance
type AuthService struct {
	users  UserFinder
	secret []byte
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserFinder, secret string) *AuthService {
	return &AuthService{users: users, secret: []byte(secret)}
}

// HashPassword hashes a plaintext password with bcrypt. Salting makes
// repeated calls on the same input yield different hashes.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether the plaintext matches the stored hash.
// A malformed hash verifies as false, never as an error.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IssueToken signs a bearer token for the user with an 8 hour lifetime
func (s *AuthService) IssueToken(userID string, role models.Role) (string, error) {
	now := time.Now()
	claims := dto.TokenClaims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// VerifyToken validates a bearer token and returns its claims. Expired
// and malformed tokens fail with distinguishable errors so the caller
// can report the precise cause.
func (s *AuthService) VerifyToken(tokenString string) (*dto.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// Login authenticates a user and returns a token plus the sanitized
// user record. Unknown email and wrong password fail with the same
// generic message; a deactivated account with correct credentials fails
// with a distinct one.
func (s *AuthService) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.E(utils.KindUnauthenticated, "Incorrect email or password")
		}
		return nil, utils.Wrap(utils.KindInternal, "Login failed", err)
	}

	if !VerifyPassword(req.Password, user.PasswordHash) {
		return nil, utils.E(utils.KindUnauthenticated, "Incorrect email or password")
	}

	if !user.Active {
		return nil, utils.E(utils.KindForbidden, "Account disabled")
	}

	token, err := s.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, utils.Wrap(utils.KindInternal, "Login failed", err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        user.Sanitized(),
	}, nil
}

// ResolveUser loads the live user record for a verified token subject.
// Each call performs a fresh lookup so role and active-flag changes are
// seen immediately.
func (s *AuthService) ResolveUser(userID string) (models.User, error) {
	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, utils.E(utils.KindUnauthenticated, "User not found")
		}
		return models.User{}, utils.Wrap(utils.KindInternal, "Failed to resolve user", err)
	}
	return user, nil
}
