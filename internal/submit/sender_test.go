package submit

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"contactform/internal/form"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPSenderPostsJSON(t *testing.T) {
	var (
		requests  atomic.Int32
		gotMethod string
		gotType   string
		gotBody   []byte
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	in := form.Input{
		Name:    "Ana Silva",
		Email:   "ana@example.com",
		Message: "Olá, gostaria de saber mais.",
	}

	sender := NewHTTPSender(server.URL, 5*time.Second)
	require.NoError(t, sender.Send(context.Background(), in))

	assert.Equal(t, int32(1), requests.Load())
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotType)

	var decoded form.Input
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, in, decoded)
}

func TestHTTPSenderNon2xxIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	sender := NewHTTPSender(server.URL, 5*time.Second)
	err := sender.Send(context.Background(), form.Input{Name: "Ana"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPSenderNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listening anymore

	sender := NewHTTPSender(server.URL, time.Second)
	require.Error(t, sender.Send(context.Background(), form.Input{Name: "Ana"}))
}

// End to end: controller + HTTP sender against a test double of the
// collaborator endpoint.
func TestControllerSubmitsExactlyOnePost(t *testing.T) {
	var requests atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		assert.Equal(t, "/api/send-email", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	c := NewController(NewHTTPSender(server.URL+"/api/send-email", 5*time.Second), 100*time.Millisecond, nil)
	defer c.Close()

	c.SetField(form.FieldName, "Ana Silva")
	c.SetField(form.FieldEmail, "ana@example.com")
	c.SetField(form.FieldMessage, "Olá, gostaria de saber mais.")

	require.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, int32(1), requests.Load())

	status, ok := c.Status()
	require.True(t, ok)
	assert.True(t, status.Success)
}
