package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAPIClient_APIKeyHeader клиент подписывает запросы ключом
func TestAPIClient_APIKeyHeader(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "secret-key", nil)

	var out map[string]string
	err := client.Get(context.Background(), "/health", &out)

	require.NoError(t, err)
	assert.Equal(t, "secret-key", gotKey)
	assert.Equal(t, "ok", out["status"])
}

// TestAPIClient_ErrorResponse не-2xx ответ разбирается в APIError
func TestAPIClient_ErrorResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{
			"error":   "partner_not_found",
			"message": "Partner not found",
		})
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "", nil)

	err := client.Get(context.Background(), "/partners/999", &map[string]any{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "partner_not_found", apiErr.Code)
	assert.Equal(t, "Partner not found", apiErr.Message)
}

// TestAPIClient_NonJSONError битое тело ошибки не ломает разбор статуса
func TestAPIClient_NonJSONError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "", nil)

	err := client.Delete(context.Background(), "/links/1")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

// TestAPIClient_TrimsTrailingSlash базовый адрес нормализуется
func TestAPIClient_TrimsTrailingSlash(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer server.Close()

	client := NewAPIClient(server.URL+"/api/", "", nil)

	var out map[string]string
	require.NoError(t, client.Get(context.Background(), "/partners", &out))
	assert.Equal(t, "/api/partners", gotPath)
}
