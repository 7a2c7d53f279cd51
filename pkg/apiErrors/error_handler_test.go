package apiErrors

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type codedErr struct{ code string }

func (c codedErr) Error() string     { return "falhou" }
func (c codedErr) ErrorCode() string { return c.code }

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrSessionNotFound, "Sessão não encontrada", map[string]string{"id": "abc"})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrSessionNotFound, body.Code)
	assert.Equal(t, "Sessão não encontrada", body.Message)
}

func TestStatusFor_Unknown(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor("XYZ_999"))
	assert.Equal(t, http.StatusBadGateway, StatusFor(ErrExternalService))
}

func TestFromError(t *testing.T) {
	wrapped := fmt.Errorf("contexto: %w", codedErr{code: ErrInvalidMonth})

	apiErr := FromError(wrapped, ErrInternalServer)
	assert.Equal(t, ErrInvalidMonth, apiErr.Code)

	apiErr = FromError(errors.New("genérico"), ErrStorage)
	assert.Equal(t, ErrStorage, apiErr.Code)
	assert.Equal(t, "genérico", apiErr.Message)

	apiErr = FromError(nil, ErrStorage)
	assert.Equal(t, ErrInternalServer, apiErr.Code)
}
