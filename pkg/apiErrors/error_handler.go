package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidMonth        = "VAL_004" // Mês fora do ano letivo
	ErrInvalidDirection    = "VAL_005" // Direção de navegação inválida

	// Erros de domínio
	ErrSessionNotFound  = "MENU_001" // Sessão de navegação inexistente ou expirada
	ErrDocumentNotFound = "MENU_002" // Documento estático ausente

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrStorage         = "SRV_002" // Erro ao ler ou gravar documentos
	ErrExternalService = "SRV_003" // Erro em serviço externo
	ErrCommunication   = "SRV_004" // Erro de comunicação
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidMonth:        http.StatusBadRequest,
	ErrInvalidDirection:    http.StatusBadRequest,
	ErrSessionNotFound:     http.StatusNotFound,
	ErrDocumentNotFound:    http.StatusNotFound,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrStorage:             http.StatusInternalServerError,
	ErrExternalService:     http.StatusBadGateway,
	ErrCommunication:       http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// CodedError é implementado por erros de domínio que carregam um código de API
type CodedError interface {
	error
	ErrorCode() string
}

// StatusFor devolve o status HTTP associado ao código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError converte um erro Go em APIError. Erros com código próprio mantêm o código;
// os demais recebem fallback.
func FromError(err error, fallback string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var coded CodedError
	if errors.As(err, &coded) && coded.ErrorCode() != "" {
		return APIError{Code: coded.ErrorCode(), Message: err.Error()}
	}

	return APIError{
		Code:    fallback,
		Message: err.Error(),
	}
}

// WriteFromError escreve a resposta a partir de um erro Go
func WriteFromError(w http.ResponseWriter, err error, fallback string) {
	apiErr := FromError(err, fallback)
	WriteError(w, apiErr.Code, apiErr.Message, nil)
}
