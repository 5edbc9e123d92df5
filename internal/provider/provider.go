// Copyright (c) 2026 ApiChistes. All rights reserved.

// Package provider implements the HTTP clients for the two external joke
// services proxied by the API.
//
// Both clients parse the upstream payload into a typed struct and fail
// closed: a non-200 status, an undecodable body, or a missing required
// field is an error, never a half-empty joke.
package provider

import (
	"errors"
	"net/http"

	"github.com/unidentifiedchris/topicos/internal/platform/constants"
)

// ErrMalformedResponse indicates the upstream answered 200 but the payload
// was missing a required field.
var ErrMalformedResponse = errors.New("provider: malformed upstream response")

type settings struct {
	httpClient *http.Client
}

// Option customizes a provider client.
type Option func(*settings)

// WithHTTPClient replaces the default HTTP client (used by tests).
func WithHTTPClient(client *http.Client) Option {
	return func(s *settings) {
		s.httpClient = client
	}
}

func newSettings(opts []Option) settings {
	s := settings{
		httpClient: &http.Client{
			Timeout: constants.ProviderTimeout,
		},
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
