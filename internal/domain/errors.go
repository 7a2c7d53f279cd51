package domain

import (
	"errors"
	"fmt"

	"github.com/luciobotteri/refezionify-web/pkg/apiErrors"
)

var (
	ErrInvalidMonth     = errors.New("month outside the academic cycle")
	ErrInvalidDay       = errors.New("invalid day of month")
	ErrInvalidDirection = errors.New("invalid navigation direction")

	ErrSessionNotFound = errors.New("session not found")

	ErrDocumentNotFound   = errors.New("document not found")
	ErrReadOnlyRepository = errors.New("repository is read only")
	ErrWeatherUnavailable = errors.New("weather unavailable")
)

const (
	ErrCodeInvalidMonth     = apiErrors.ErrInvalidMonth
	ErrCodeInvalidDirection = apiErrors.ErrInvalidDirection
	ErrCodeSessionNotFound  = apiErrors.ErrSessionNotFound
	ErrCodeDocumentNotFound = apiErrors.ErrDocumentNotFound
	ErrCodeExternalService  = apiErrors.ErrExternalService
)

// MenuError é um erro com código de API e detalhes adicionais
type MenuError struct {
	Err     error
	Code    string
	Details string
}

func (e *MenuError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MenuError) Unwrap() error {
	return e.Err
}

func (e *MenuError) ErrorCode() string {
	return e.Code
}

func NewMenuError(err error, code string, details string) *MenuError {
	return &MenuError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
