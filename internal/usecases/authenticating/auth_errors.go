package authenticating

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ad-sync-api/pkg/apiErrors"
)

var (
	ErrMissingToken        = errors.New("token de autorização ausente")
	ErrInvalidToken        = errors.New("token inválido")
	ErrExpiredToken        = errors.New("token expirado")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// Code retorna o código de API correspondente
func (e *AuthError) Code() string {
	switch {
	case errors.Is(e.Err, ErrMissingToken):
		return apiErrors.ErrMissingAuthorization
	case errors.Is(e.Err, ErrExpiredToken):
		return apiErrors.ErrExpiredToken
	case errors.Is(e.Err, ErrMissingRequiredData):
		return apiErrors.ErrMissingRequiredData
	default:
		return apiErrors.ErrInvalidToken
	}
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Details: details,
	}
}
