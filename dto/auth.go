package dto

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/leadflow-simple/models"
)

// TokenClaims represents our custom JWT claims.
// The subject carries the user id; "tipo" carries the role and is part
// of the wire contract with existing clients.
type TokenClaims struct {
	Role string `json:"tipo"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        models.User `json:"user"`
}
