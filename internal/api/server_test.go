package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"contactform/internal/api/dto/common"
	"contactform/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "contactform-api-test")
	if err != nil {
		panic(err)
	}

	logging.Configure(&logging.Config{
		Level:      "info",
		File:       filepath.Join(dir, "api.log"),
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func postJSON(t *testing.T, srv *Server, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/send-email", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) common.APIResponse {
	t.Helper()

	var resp common.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSendEmailValidPayload(t *testing.T) {
	srv := NewServer()

	w := postJSON(t, srv, `{"name":"Ana Silva","email":"ana@example.com","message":"Olá, gostaria de saber mais."}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestSendEmailValidationErrors(t *testing.T) {
	srv := NewServer()

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{"short name", `{"name":"Jo","email":"ana@example.com","message":"Olá, gostaria de saber mais."}`, "name"},
		{"bad email", `{"name":"Ana Silva","email":"nope","message":"Olá, gostaria de saber mais."}`, "email"},
		{"short message", `{"name":"Ana Silva","email":"ana@example.com","message":"oi"}`, "message"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, srv, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			resp := decodeResponse(t, w)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, string(common.ErrCodeValidation), resp.Error.Code)

			details, ok := resp.Error.Details.(map[string]interface{})
			require.True(t, ok, "details should be a field→message map")
			assert.Contains(t, details, tt.field)
		})
	}
}

func TestSendEmailMalformedBody(t *testing.T) {
	srv := NewServer()

	w := postJSON(t, srv, `{"name":`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, string(common.ErrCodeBadRequest), resp.Error.Code)
}

func TestHealthCheck(t *testing.T) {
	srv := NewServer()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeResponse(t, w).Success)
}
