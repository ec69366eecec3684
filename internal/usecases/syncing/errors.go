package syncing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/ad-sync-api/pkg/apiErrors"
)

var (
	// Erros de validação da requisição
	ErrMissingRequiredField = errors.New("campo obrigatório ausente")
	ErrInvalidDate          = errors.New("data inválida")
	ErrInvalidWindow        = errors.New("janela de entidades inválida")
	ErrUnknownChunkType     = errors.New("tipo de chunk desconhecido")

	// Erros de pré-condição da conta
	ErrAccountNotFound     = errors.New("conta de anúncios não encontrada")
	ErrTokenExpired        = errors.New("token da conta de anúncios expirado")
	ErrUnsupportedPlatform = errors.New("plataforma de anúncios não suportada")

	// Erros de execução
	ErrChunkFailed = errors.New("falha ao executar chunk")
)

// ChunkError é um erro com o código de API usado para responder a invocação
type ChunkError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ChunkError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ChunkError) Unwrap() error {
	return e.Err
}

// HTTPStatus retorna o status HTTP correspondente ao código
func (e *ChunkError) HTTPStatus() int {
	return apiErrors.HTTPStatus(e.Code)
}

// NewChunkError cria um novo ChunkError
func NewChunkError(err error, code string, details string) *ChunkError {
	return &ChunkError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
