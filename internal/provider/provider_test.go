// Copyright (c) 2026 ApiChistes. All rights reserved.

package provider_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidentifiedchris/topicos/internal/joke"
	"github.com/unidentifiedchris/topicos/internal/provider"
)

// newUpstream serves a fixed status and body for every request and records
// the last request seen.
func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *http.Request) {
	t.Helper()

	captured := &http.Request{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = *r
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

// # Chuck Norris API

func TestChuckClient_Random(t *testing.T) {
	upstream, captured := newUpstream(t, http.StatusOK,
		`{"id": "abc123", "value": "Chuck Norris counted to infinity. Twice.", "icon_url": "x"}`)

	client := provider.NewChuckClient(upstream.URL, provider.WithHTTPClient(upstream.Client()))
	j, err := client.Random(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/jokes/random", captured.URL.Path)
	assert.Equal(t, &joke.Joke{
		ID:       "abc123",
		Text:     "Chuck Norris counted to infinity. Twice.",
		Author:   "api.chucknorris.io",
		Score:    4,
		Category: joke.CategoryMalo,
	}, j)
}

func TestChuckClient_Random_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"upstream_error_status", http.StatusInternalServerError, `{}`},
		{"not_json", http.StatusOK, `<html>nope</html>`},
		{"missing_id", http.StatusOK, `{"value": "texto"}`},
		{"missing_value", http.StatusOK, `{"id": "abc123"}`},
		{"empty_object", http.StatusOK, `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream, _ := newUpstream(t, tt.status, tt.body)

			client := provider.NewChuckClient(upstream.URL, provider.WithHTTPClient(upstream.Client()))
			j, err := client.Random(context.Background())
			require.Error(t, err)
			assert.Nil(t, j)
		})
	}
}

// # icanhazdadjoke

func TestDadClient_Random(t *testing.T) {
	upstream, captured := newUpstream(t, http.StatusOK,
		`{"id": "R7UfaahVfFd", "joke": "My dog used to chase people on a bike. It got so bad I had to take his bike away.", "status": 200}`)

	client := provider.NewDadClient(upstream.URL, provider.WithHTTPClient(upstream.Client()))
	j, err := client.Random(context.Background())
	require.NoError(t, err)

	// The service answers HTML without this header.
	assert.Equal(t, "application/json", captured.Header.Get("Accept"))
	assert.Equal(t, &joke.Joke{
		ID:       "R7UfaahVfFd",
		Text:     "My dog used to chase people on a bike. It got so bad I had to take his bike away.",
		Author:   "icanhazdadjoke.com",
		Score:    1,
		Category: joke.CategoryDadJoke,
	}, j)
}

func TestDadClient_Random_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"upstream_error_status", http.StatusTooManyRequests, `{}`},
		{"not_json", http.StatusOK, `<html>nope</html>`},
		{"missing_id", http.StatusOK, `{"joke": "texto"}`},
		{"missing_joke", http.StatusOK, `{"id": "R7UfaahVfFd"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream, _ := newUpstream(t, tt.status, tt.body)

			client := provider.NewDadClient(upstream.URL, provider.WithHTTPClient(upstream.Client()))
			j, err := client.Random(context.Background())
			require.Error(t, err)
			assert.Nil(t, j)
		})
	}
}
