package remotelog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientLog(t *testing.T) {
	var got Record
	var gotAuth string
	var gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token")

	err := client.Log(context.Background(), "backend", "info", "handler", "Short URL created: abc123")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, Record{
		Stack:   "backend",
		Level:   "info",
		Package: "handler",
		Message: "Short URL created: abc123",
	}, got)
}

func TestClientLogRejectsInvalidWithoutSending(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token")

	err := client.Log(context.Background(), "backend", "loud", "handler", "x")
	assert.ErrorIs(t, err, ErrInvalidRecord)
	assert.Equal(t, 0, calls)
}

func TestClientLogNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "wrong-token")

	err := client.Log(context.Background(), "backend", "info", "handler", "x")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestClientLogTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	client := NewClient(srv.URL, "secret-token")

	err := client.Log(context.Background(), "backend", "info", "handler", "x")
	assert.Error(t, err)
}
