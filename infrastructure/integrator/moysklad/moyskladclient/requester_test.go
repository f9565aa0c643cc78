package moyskladclient

import (
	"compress/gzip"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	moyskladdomain "github.com/vfg2006/sales-plan-sync/infrastructure/integrator/moysklad/domain"
	"github.com/vfg2006/sales-plan-sync/internal/domain"
)

type fakeERP struct {
	tokenCalls   atomic.Int32
	turnoverHits atomic.Int32
	tokens       []string
	acceptToken  func(token string) bool
	gzipResponse bool
}

func (f *fakeERP) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/"+tokenPath, func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "admin@loja", username)
		assert.Equal(t, "segredo", password)
		assert.Equal(t, http.MethodPost, r.Method)

		idx := int(f.tokenCalls.Add(1)) - 1
		if idx >= len(f.tokens) {
			idx = len(f.tokens) - 1
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"` + f.tokens[idx] + `"}`))
	})

	mux.HandleFunc("/"+turnoverPath, func(w http.ResponseWriter, r *http.Request) {
		f.turnoverHits.Add(1)

		token := r.Header.Get("Authorization")
		if !f.acceptToken(token) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"errors":[{"error":"Ошибка аутентификации","code":1056}]}`))
			return
		}

		w.Header().Set("X-Lognex-Content-Timezone", "Europe/Moscow")
		body := `{"rows":[{"assortment":{"name":"Жидкость 30мл","productFolder":{"name":"Жидкости"}},"outcome":{"sum":150000,"quantity":3}}]}`

		if f.gzipResponse {
			w.Header().Set("Content-Encoding", "gzip")
			gz := gzip.NewWriter(w)
			_, _ = gz.Write([]byte(body))
			_ = gz.Close()
			return
		}
		_, _ = w.Write([]byte(body))
	})

	return mux
}

func newTestClient(t *testing.T, server *httptest.Server) *MoySkladClient {
	requester, err := NewRequester(server.Client(), server.URL, Credentials{Username: "admin@loja", Password: "segredo"})
	require.NoError(t, err)
	return NewClientWithRequester(requester)
}

func TestRequester_Do(t *testing.T) {
	tests := []struct {
		name          string
		erp           *fakeERP
		wantErr       bool
		wantStatus    int
		wantTokens    int32
		wantTurnovers int32
	}{
		{
			name: "Token válido na primeira tentativa",
			erp: &fakeERP{
				tokens:      []string{"t1"},
				acceptToken: func(token string) bool { return token == "Bearer t1" },
			},
			wantTokens:    1,
			wantTurnovers: 1,
		},
		{
			name: "Token expirado é renovado uma única vez",
			erp: &fakeERP{
				tokens:      []string{"velho", "novo"},
				acceptToken: func(token string) bool { return token == "Bearer novo" },
			},
			wantTokens:    2,
			wantTurnovers: 2,
		},
		{
			name: "Segundo 401 é propagado sem nova tentativa",
			erp: &fakeERP{
				tokens:      []string{"t1", "t2", "t3"},
				acceptToken: func(string) bool { return false },
			},
			wantErr:       true,
			wantStatus:    http.StatusUnauthorized,
			wantTokens:    2,
			wantTurnovers: 2,
		},
		{
			name: "Resposta compactada com gzip",
			erp: &fakeERP{
				tokens:       []string{"t1"},
				acceptToken:  func(string) bool { return true },
				gzipResponse: true,
			},
			wantTokens:    1,
			wantTurnovers: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.erp.handler(t))
			defer server.Close()

			client := newTestClient(t, server)
			report, err := client.GetTurnover(context.Background(), domain.TurnoverFilters{})

			if tt.wantErr {
				require.Error(t, err)
				var apiErr *moyskladdomain.APIError
				require.True(t, errors.As(err, &apiErr))
				assert.Equal(t, tt.wantStatus, apiErr.StatusCode)
			} else {
				require.NoError(t, err)
				require.Len(t, report.Rows, 1)
				assert.Equal(t, "Жидкость 30мл", report.Rows[0].Assortment.Name)
				assert.Equal(t, 3.0, report.Rows[0].Outcome.Quantity)
				assert.Equal(t, "Europe/Moscow", report.ContentTimezone)
			}

			assert.Equal(t, tt.wantTokens, tt.erp.tokenCalls.Load())
			assert.Equal(t, tt.wantTurnovers, tt.erp.turnoverHits.Load())
		})
	}
}

func TestRequester_ReusesCachedToken(t *testing.T) {
	erp := &fakeERP{
		tokens:      []string{"t1"},
		acceptToken: func(string) bool { return true },
	}
	server := httptest.NewServer(erp.handler(t))
	defer server.Close()

	client := newTestClient(t, server)
	for i := 0; i < 3; i++ {
		_, err := client.GetTurnover(context.Background(), domain.TurnoverFilters{})
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), erp.tokenCalls.Load())
	assert.Equal(t, int32(3), erp.turnoverHits.Load())
}

func TestNewRequester_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name        string
		credentials Credentials
	}{
		{name: "Usuário vazio", credentials: Credentials{Password: "x"}},
		{name: "Senha vazia", credentials: Credentials{Username: "admin"}},
		{name: "Usuário com dois pontos", credentials: Credentials{Username: "admin:loja", Password: "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRequester(http.DefaultClient, "https://api.moysklad.ru", tt.credentials)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestBuildTurnoverQuery(t *testing.T) {
	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name     string
		filters  domain.TurnoverFilters
		expected map[string]string
		absent   []string
	}{
		{
			name:    "Valores padrão",
			filters: domain.TurnoverFilters{},
			expected: map[string]string{
				"limit":   "1000",
				"groupBy": "product",
			},
			absent: []string{"momentFrom", "momentTo", "filter", "offset"},
		},
		{
			name: "Período e filtros completos",
			filters: domain.TurnoverFilters{
				MomentFrom:  from,
				MomentTo:    to,
				Type:        domain.DocumentTypeRetailDemand,
				RetailStore: "https://api.moysklad.ru/api/remap/1.2/entity/retailstore/abc",
				Limit:       200,
				Offset:      400,
				GroupBy:     domain.GroupByVariant,
			},
			expected: map[string]string{
				"momentFrom": "2024-03-01 00:00:00",
				"momentTo":   "2024-03-31 23:59:59",
				"filter":     "type=retaildemand;retailStore=https://api.moysklad.ru/api/remap/1.2/entity/retailstore/abc",
				"limit":      "200",
				"offset":     "400",
				"groupBy":    "variant",
			},
		},
		{
			name:     "Limite acima do máximo é reduzido",
			filters:  domain.TurnoverFilters{Limit: 5000},
			expected: map[string]string{"limit": "1000"},
		},
		{
			name:     "Limite negativo vira 1",
			filters:  domain.TurnoverFilters{Limit: -3},
			expected: map[string]string{"limit": "1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := BuildTurnoverQuery(tt.filters)
			for key, value := range tt.expected {
				assert.Equal(t, value, query.Get(key), key)
			}
			for _, key := range tt.absent {
				assert.False(t, query.Has(key), key)
			}
		})
	}
}

func TestGetTurnover_SendsAcceptTimezone(t *testing.T) {
	var received atomic.Value
	mux := http.NewServeMux()
	mux.HandleFunc("/"+tokenPath, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"access_token":"t1"}`))
	})
	mux.HandleFunc("/"+turnoverPath, func(w http.ResponseWriter, r *http.Request) {
		received.Store(r.Header.Get("X-Lognex-Accept-Timezone"))
		_, _ = w.Write([]byte(`{"rows":[]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := newTestClient(t, server)
	_, err := client.GetTurnover(context.Background(), domain.TurnoverFilters{AcceptTimezone: "Asia/Chita"})
	require.NoError(t, err)
	assert.Equal(t, "Asia/Chita", received.Load())
}
