package sheetsclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func newTestClient(t *testing.T, handler http.HandlerFunc) *SheetsClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClientWithOptions(context.Background(),
		option.WithHTTPClient(server.Client()),
		option.WithEndpoint(server.URL+"/"),
	)
	require.NoError(t, err)

	return client
}

func TestSheetsClient_ReadRange(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.True(t, strings.HasPrefix(r.URL.Path, "/v4/spreadsheets/plan-id/values/"))
		_, _ = w.Write([]byte(`{"range":"Plan!A1:B2","values":[["Товар","План"],["Жидкость",10]]}`))
	})

	values, err := client.ReadRange(context.Background(), "plan-id", "'Plan'")
	require.NoError(t, err)
	require.Len(t, values, 2)
	assert.Equal(t, "Товар", values[0][0])
	assert.Equal(t, float64(10), values[1][1])
}

func TestSheetsClient_BatchUpdate(t *testing.T) {
	var received sheets.BatchUpdateValuesRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/values:batchUpdate"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		_, _ = w.Write([]byte(`{"spreadsheetId":"plan-id","totalUpdatedCells":2}`))
	})

	updated, err := client.BatchUpdate(context.Background(), "plan-id", []ValueUpdate{
		{Range: "'Plan'!D2", Value: 5},
		{Range: "'Plan'!D3", Value: 0},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)

	assert.Equal(t, "RAW", received.ValueInputOption)
	require.Len(t, received.Data, 2)
	assert.Equal(t, "'Plan'!D2", received.Data[0].Range)
	assert.Equal(t, float64(5), received.Data[0].Values[0][0])
}

func TestSheetsClient_BatchUpdateWithoutCells(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("nenhuma chamada era esperada, recebido %s", r.URL.Path)
	})

	updated, err := client.BatchUpdate(context.Background(), "plan-id", nil)
	require.NoError(t, err)
	assert.Zero(t, updated)
}

func TestSheetsClient_ReadRangeError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"forbidden"}}`))
	})

	_, err := client.ReadRange(context.Background(), "plan-id", "'Plan'")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'Plan'")
}
