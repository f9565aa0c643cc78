package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
	"github.com/vfg2006/sales-plan-sync/pkg/log"
)

type fakeAuthenticator struct {
	claims *domain.Claims
}

func (f fakeAuthenticator) Login(string, string) (string, error) { return "", nil }

func (f fakeAuthenticator) ValidateToken(token string) (*domain.Claims, error) {
	if token != "valido" {
		return nil, errors.New("token inválido")
	}
	return f.claims, nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	auth := fakeAuthenticator{claims: &domain.Claims{UserEmail: "admin@loja.ru", UserRole: domain.RoleAdmin}}

	tests := []struct {
		name       string
		path       string
		header     string
		wantStatus int
	}{
		{name: "Healthcheck é público", path: "/healthcheck", wantStatus: http.StatusNoContent},
		{name: "Login é público", path: "/v1/login", wantStatus: http.StatusNoContent},
		{name: "Sem header", path: "/v1/retail-stores", wantStatus: http.StatusUnauthorized},
		{name: "Sem Bearer", path: "/v1/retail-stores", header: "valido", wantStatus: http.StatusUnauthorized},
		{name: "Token inválido", path: "/v1/retail-stores", header: "Bearer outro", wantStatus: http.StatusUnauthorized},
		{name: "Token válido", path: "/v1/retail-stores", header: "Bearer valido", wantStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}
			recorder := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler()).ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	handler := AuthMiddleware(fakeAuthenticator{claims: &domain.Claims{UserRole: "viewer"}})(AdminOnly()(okHandler()))

	request := httptest.NewRequest(http.MethodPost, "/v1/cron/run", nil)
	request.Header.Set("Authorization", "Bearer valido")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler())

	request := httptest.NewRequest(http.MethodOptions, "/v1/sync/period", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))

	request = httptest.NewRequest(http.MethodGet, "/v1/sync/period", nil)
	request.Header.Set("Origin", "https://desconhecida.example")
	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoggingMiddleware_PropagatesCorrelationID(t *testing.T) {
	var seen string
	handler := LoggingMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
	}))

	request := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	request.Header.Set(CorrelationIDHeader, "abc-123")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", recorder.Header().Get(CorrelationIDHeader))

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
	assert.NotEmpty(t, recorder.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := LogPanicMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
