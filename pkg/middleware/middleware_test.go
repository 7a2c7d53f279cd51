package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/luciobotteri/refezionify-web/pkg/log"
	"github.com/stretchr/testify/assert"
)

type recordingObserver struct {
	method string
	status int
	calls  int
}

func (o *recordingObserver) ObserveRequest(method string, statusCode int, _ time.Duration) {
	o.method = method
	o.status = statusCode
	o.calls++
}

func TestLoggingMiddleware_ObservesStatusAndCorrelationID(t *testing.T) {
	log.SetupTestLogger()
	observer := &recordingObserver{}

	var correlationID string
	h := LoggingMiddleware(observer)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		correlationID = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/months", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.NotEmpty(t, correlationID)
	assert.Equal(t, 1, observer.calls)
	assert.Equal(t, http.MethodGet, observer.method)
	assert.Equal(t, http.StatusTeapot, observer.status)
}

func TestLoggingMiddleware_NilObserver(t *testing.T) {
	log.SetupTestLogger()
	h := LoggingMiddleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLogPanicMiddleware(t *testing.T) {
	log.SetupTestLogger()
	t.Setenv("APP_ENV", "production")

	h := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Regexp(t, `^Erro interno do servidor \([A-Za-z0-9]{6}\)`, rec.Body.String())
}

func TestCors(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	h := Cors([]string{"https://luciobotteri.github.io"})(next)

	tests := []struct {
		name         string
		method       string
		origin       string
		expectedCode int
		allowOrigin  string
	}{
		{name: "origem liberada", method: http.MethodGet, origin: "https://luciobotteri.github.io", expectedCode: http.StatusNoContent, allowOrigin: "https://luciobotteri.github.io"},
		{name: "origem desconhecida", method: http.MethodGet, origin: "https://evil.example", expectedCode: http.StatusNoContent},
		{name: "preflight", method: http.MethodOptions, origin: "https://luciobotteri.github.io", expectedCode: http.StatusOK, allowOrigin: "https://luciobotteri.github.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/months", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.allowOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
