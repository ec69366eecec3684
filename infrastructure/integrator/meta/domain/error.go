package metadomain

import "strings"

// RateLimitMessage é o trecho presente nas mensagens de limite de chamadas da Meta
const RateLimitMessage = "limit reached"

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorDetails) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Code == 190 ||
		(e.Type == "OAuthException" && (e.ErrorSubcode == 460 || e.ErrorSubcode == 463 || e.ErrorSubcode == 467))
}

// IsRateLimited verifica se o erro indica limite de chamadas atingido
func (e *ErrorDetails) IsRateLimited() bool {
	if strings.Contains(strings.ToLower(e.Message), RateLimitMessage) {
		return true
	}

	// 4: app, 17: usuário, 32: página, 613: chamadas por período, 80000-80014: business use case
	switch {
	case e.Code == 4 || e.Code == 17 || e.Code == 32 || e.Code == 613:
		return true
	case e.Code >= 80000 && e.Code <= 80014:
		return true
	}

	return false
}
