// Copyright (c) 2026 ApiChistes. All rights reserved.

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/unidentifiedchris/topicos/internal/joke"
)

// Fixed mapping applied to every dad joke.
const (
	dadAuthor = "icanhazdadjoke.com"
	dadScore  = 1
)

// DadClient fetches random jokes from icanhazdadjoke.com.
//
// The service answers HTML unless JSON is requested explicitly, so every
// request carries an Accept header.
type DadClient struct {
	baseURL string
	client  *http.Client
}

func NewDadClient(baseURL string, opts ...Option) *DadClient {
	s := newSettings(opts)
	return &DadClient{
		baseURL: baseURL,
		client:  s.httpClient,
	}
}

type dadResponse struct {
	ID   string `json:"id"`
	Joke string `json:"joke"`
}

// Random implements [joke.Provider].
func (c *DadClient) Random(ctx context.Context) (*joke.Joke, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return nil, fmt.Errorf("dadjoke: build request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	response, err := c.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("dadjoke: request failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("dadjoke: unexpected status %d", response.StatusCode)
	}

	var payload dadResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("dadjoke: decode response: %w", err)
	}

	if payload.ID == "" || payload.Joke == "" {
		return nil, fmt.Errorf("dadjoke: %w", ErrMalformedResponse)
	}

	return &joke.Joke{
		ID:       payload.ID,
		Text:     payload.Joke,
		Author:   dadAuthor,
		Score:    dadScore,
		Category: joke.CategoryDadJoke,
	}, nil
}
