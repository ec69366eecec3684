package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims são as informações do usuário autenticado no token do dashboard
type Claims struct {
	UserID    string `json:"user_id"`
	UserEmail string `json:"user_email"`
	jwt.RegisteredClaims
}
