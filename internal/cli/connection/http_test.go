package connection

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_BaseURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"localhost:8080", "http://localhost:8080"},
		{"http://example.com/", "http://example.com"},
		{"https://example.com", "https://example.com"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NewHTTPClient(tt.in).BaseURL(), tt.in)
	}
}

func TestHTTPClient_GetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, UserAgent, r.Header.Get("User-Agent"))
		assert.Equal(t, "/api/hello", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Hello from API endpoint!","timestamp":"1"}`))
	}))
	defer srv.Close()

	var got map[string]string
	err := NewHTTPClient(srv.URL).GetJSON(context.Background(), "/api/hello", &got)
	require.NoError(t, err)
	assert.Equal(t, "Hello from API endpoint!", got["message"])
}

func TestHTTPClient_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"code":"rate_limited","message":"too many requests"}`))
	}))
	defer srv.Close()

	err := NewHTTPClient(srv.URL).GetJSON(context.Background(), "/", nil)
	require.Error(t, err)
	assert.Equal(t, "[rate_limited] too many requests", err.Error())
}

func TestHTTPClient_ErrorStatusOnly(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	err := NewHTTPClient(srv.URL).GetJSON(context.Background(), "/missing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

func TestHTTPClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	err := NewHTTPClient(addr).GetJSON(context.Background(), "/", nil)
	assert.Error(t, err)
}

func TestParseResponse_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	var got map[string]string
	err := NewHTTPClient(srv.URL).GetJSON(context.Background(), "/", &got)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}
