// Copyright (c) 2026 ApiChistes. All rights reserved.

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/unidentifiedchris/topicos/internal/joke"
)

// Fixed mapping applied to every Chuck Norris joke.
const (
	chuckAuthor = "api.chucknorris.io"
	chuckScore  = 4
)

// ChuckClient fetches random jokes from the Chuck Norris API.
type ChuckClient struct {
	baseURL string
	client  *http.Client
}

func NewChuckClient(baseURL string, opts ...Option) *ChuckClient {
	s := newSettings(opts)
	return &ChuckClient{
		baseURL: baseURL,
		client:  s.httpClient,
	}
}

type chuckResponse struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}

// Random implements [joke.Provider].
func (c *ChuckClient) Random(ctx context.Context) (*joke.Joke, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/jokes/random", nil)
	if err != nil {
		return nil, fmt.Errorf("chuck: build request: %w", err)
	}

	response, err := c.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("chuck: request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("chuck: unexpected status %d", response.StatusCode)
	}

	var payload chuckResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("chuck: decode response: %w", err)
	}

	if payload.ID == "" || payload.Value == "" {
		return nil, fmt.Errorf("chuck: %w", ErrMalformedResponse)
	}

	return &joke.Joke{
		ID:       payload.ID,
		Text:     payload.Value,
		Author:   chuckAuthor,
		Score:    chuckScore,
		Category: joke.CategoryMalo,
	}, nil
}
