package transport

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/ghostlabs/ghostbank/internal/pkg/errors"
)

func TestSend_FallsBackToNextStrategyOnTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	// First strategy rewrites to a port nothing listens on
	strategies := []Strategy{
		NewProxyStrategy("dead-proxy", "http://127.0.0.1:1/?u="),
		&DirectStrategy{},
	}

	client := NewFallbackClient(2 * time.Second)
	resp, err := client.Send(context.Background(), http.MethodGet, server.URL, nil, nil, strategies)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "direct", resp.Strategy)
	assert.JSONEq(t, `{"ok":true}`, string(resp.Body))
}

func TestSend_NonSuccessResponseReturnsImmediately(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"boom"}`))
	}))
	defer server.Close()

	strategies := []Strategy{&DirectStrategy{}, &DirectStrategy{}}

	client := NewFallbackClient(2 * time.Second)
	resp, err := client.Send(context.Background(), http.MethodGet, server.URL, nil, nil, strategies)

	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.False(t, resp.IsSuccess())
	// The 500 carried an error payload the caller needs: no second attempt
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestSend_AllStrategiesFailYieldsConnectivityError(t *testing.T) {
	strategies := []Strategy{
		NewProxyStrategy("dead-one", "http://127.0.0.1:1/?u="),
		NewProxyStrategy("dead-two", "http://127.0.0.1:1/?u="),
	}

	client := NewFallbackClient(500 * time.Millisecond)
	resp, err := client.Send(context.Background(), http.MethodGet, "http://example.invalid", nil, nil, strategies)

	assert.Nil(t, resp)
	var connErr *apperrors.ConnectivityError
	assert.ErrorAs(t, err, &connErr)
	assert.NotNil(t, connErr.Cause)
}

func TestSend_ForwardsHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Public-Key"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewFallbackClient(2 * time.Second)
	resp, err := client.Send(context.Background(), http.MethodGet, server.URL,
		map[string]string{"x-public-key": "secret"}, nil, []Strategy{&DirectStrategy{}})

	require.NoError(t, err)
	assert.True(t, resp.IsSuccess())
}

func TestParseStrategies(t *testing.T) {
	strategies := ParseStrategies([]string{"https://proxy.example.com/?u=", "direct"})

	require.Len(t, strategies, 2)
	assert.Equal(t, "proxy.example.com", strategies[0].Name())
	assert.Equal(t, "direct", strategies[1].Name())

	rewritten := strategies[0].Rewrite("https://api.example.org/path?a=b")
	assert.Equal(t, "https://proxy.example.com/?u=https%3A%2F%2Fapi.example.org%2Fpath%3Fa%3Db", rewritten)
	assert.Equal(t, "https://api.example.org/path?a=b", strategies[1].Rewrite("https://api.example.org/path?a=b"))
}
