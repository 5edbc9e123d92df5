// Copyright (c) 2026 ApiChistes. All rights reserved.

package joke_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unidentifiedchris/topicos/internal/joke"
	"github.com/unidentifiedchris/topicos/pkg/uuidv7"
)

// newTestAPI mounts the joke routes the way cmd/api does and returns a live
// test server.
func newTestAPI(t *testing.T) *httptest.Server {
	t.Helper()

	handler := joke.NewHandler(newTestService(newMemoryRepository()))

	router := chi.NewRouter()
	router.Mount("/chistes", handler.Routes())

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func doJSON(t *testing.T, method, url string, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	request, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != "" {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := http.DefaultClient.Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	payload, err := io.ReadAll(response.Body)
	require.NoError(t, err)
	return response.StatusCode, payload
}

func decodeJoke(t *testing.T, payload []byte) joke.Joke {
	t.Helper()
	var j joke.Joke
	require.NoError(t, json.Unmarshal(payload, &j))
	return j
}

func assertErrorMessage(t *testing.T, payload []byte, want string) {
	t.Helper()
	var envelope struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(payload, &envelope))
	assert.Equal(t, want, envelope.Message)
}

// # Random Fetch

func TestHTTP_GetRandom_Providers(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodGet, server.URL+"/chistes/Chuck", "")
	require.Equal(t, http.StatusOK, status)
	chuck := decodeJoke(t, payload)
	assert.Equal(t, "api.chucknorris.io", chuck.Author)
	assert.Equal(t, 4, chuck.Score)
	assert.Equal(t, joke.CategoryMalo, chuck.Category)

	status, payload = doJSON(t, http.MethodGet, server.URL+"/chistes/Dad", "")
	require.Equal(t, http.StatusOK, status)
	dad := decodeJoke(t, payload)
	assert.Equal(t, "icanhazdadjoke.com", dad.Author)
	assert.Equal(t, 1, dad.Score)
	assert.Equal(t, joke.CategoryDadJoke, dad.Category)
}

func TestHTTP_GetRandom_InvalidSource(t *testing.T) {
	server := newTestAPI(t)

	for _, source := range []string{"TipoInvalido", "chuck", "propio", "Chuck%20"} {
		status, payload := doJSON(t, http.MethodGet, server.URL+"/chistes/"+source, "")
		assert.Equal(t, http.StatusBadRequest, status)
		assertErrorMessage(t, payload, joke.MsgInvalidSource)
	}
}

func TestHTTP_GetRandomOwn_EmptyCollection(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodGet, server.URL+"/chistes/Propio", "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assertErrorMessage(t, payload, joke.MsgNoJokesYet)
}

func TestHTTP_GetRandomOwn_AfterCreate(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio",
		`{"texto": "Único chiste", "puntaje": 3, "categoria": "Chistoso"}`)
	require.Equal(t, http.StatusOK, status)
	created := decodeJoke(t, payload)

	status, payload = doJSON(t, http.MethodGet, server.URL+"/chistes/Propio", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created, decodeJoke(t, payload))
}

// # Create

func TestHTTP_CreateJoke(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio",
		`{"texto": "Mi chiste", "author": "Israel", "puntaje": 7, "categoria": "Humor Negro"}`)
	require.Equal(t, http.StatusOK, status)

	created := decodeJoke(t, payload)
	assert.True(t, uuidv7.IsValid(created.ID))
	assert.Equal(t, "Mi chiste", created.Text)
	assert.Equal(t, "Israel", created.Author)
	assert.Equal(t, 7, created.Score)
	assert.Equal(t, joke.CategoryHumorNegro, created.Category)

	// The record reads back by id with the same fields.
	status, payload = doJSON(t, http.MethodGet, server.URL+"/chistes/Propio/id/"+created.ID, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, created, decodeJoke(t, payload))
}

func TestHTTP_CreateJoke_DefaultAuthor(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio",
		`{"texto": "Sin autor", "puntaje": 1, "categoria": "Malo"}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, joke.DefaultAuthor, decodeJoke(t, payload).Author)
}

func TestHTTP_CreateJoke_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{
			name:    "id_forbidden",
			body:    `{"id": "abc", "texto": "hola", "puntaje": 1, "categoria": "Malo"}`,
			wantMsg: joke.MsgIDForbidden,
		},
		{
			name:    "missing_text",
			body:    `{"puntaje": 1, "categoria": "Malo"}`,
			wantMsg: joke.MsgMissingText,
		},
		{
			name:    "missing_score",
			body:    `{"texto": "hola", "categoria": "Malo"}`,
			wantMsg: joke.MsgMissingScore,
		},
		{
			name:    "zero_score",
			body:    `{"texto": "hola", "puntaje": 0, "categoria": "Malo"}`,
			wantMsg: joke.MsgScoreOutOfRange,
		},
		{
			name:    "missing_category",
			body:    `{"texto": "hola", "puntaje": 1}`,
			wantMsg: joke.MsgMissingCategory,
		},
		{
			name:    "invalid_category",
			body:    `{"texto": "hola", "puntaje": 1, "categoria": "dad joke"}`,
			wantMsg: joke.MsgInvalidCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newTestAPI(t)

			status, payload := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio", tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assertErrorMessage(t, payload, tt.wantMsg)
		})
	}
}

func TestHTTP_CreateJoke_MalformedJSON(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio", `{"texto": `)
	assert.Equal(t, http.StatusBadRequest, status)
	assertErrorMessage(t, payload, "Formato del chiste no válido")
}

// # Get / Update / Delete By ID

func TestHTTP_GetJoke_NotFound(t *testing.T) {
	server := newTestAPI(t)

	for _, id := range []string{"0xffnot-a-uuid", uuidv7.New()} {
		status, payload := doJSON(t, http.MethodGet, server.URL+"/chistes/Propio/id/"+id, "")
		assert.Equal(t, http.StatusBadRequest, status)
		assertErrorMessage(t, payload, joke.MsgJokeNotFound)
	}
}

func TestHTTP_UpdateJoke(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio",
		`{"texto": "Versión uno", "author": "Israel", "puntaje": 2, "categoria": "Malo"}`)
	require.Equal(t, http.StatusOK, status)
	created := decodeJoke(t, payload)

	// Partial patch: only the score changes.
	status, payload = doJSON(t, http.MethodPut, server.URL+"/chistes/Propio/id/"+created.ID,
		`{"puntaje": 9}`)
	require.Equal(t, http.StatusOK, status)
	updated := decodeJoke(t, payload)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 9, updated.Score)
	assert.Equal(t, "Versión uno", updated.Text)
	assert.Equal(t, "Israel", updated.Author)

	status, payload = doJSON(t, http.MethodGet, server.URL+"/chistes/Propio/id/"+created.ID, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, updated, decodeJoke(t, payload))
}

func TestHTTP_UpdateJoke_Validation(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio",
		`{"texto": "hola", "puntaje": 1, "categoria": "Malo"}`)
	require.Equal(t, http.StatusOK, status)
	created := decodeJoke(t, payload)

	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"score_out_of_range", `{"puntaje": 11}`, joke.MsgScoreOutOfRange},
		{"invalid_category", `{"categoria": "Neegro"}`, joke.MsgInvalidCategory},
		{"id_forbidden", `{"id": "abc"}`, joke.MsgIDForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := doJSON(t, http.MethodPut,
				server.URL+"/chistes/Propio/id/"+created.ID, tt.body)
			assert.Equal(t, http.StatusBadRequest, status)
			assertErrorMessage(t, payload, tt.wantMsg)
		})
	}
}

func TestHTTP_UpdateJoke_NotFound(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodPut, server.URL+"/chistes/Propio/id/"+uuidv7.New(),
		`{"puntaje": 5}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assertErrorMessage(t, payload, joke.MsgJokeNotFound)
}

func TestHTTP_DeleteJoke(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio",
		`{"texto": "efímero", "puntaje": 1, "categoria": "Malo"}`)
	require.Equal(t, http.StatusOK, status)
	created := decodeJoke(t, payload)

	// Successful delete answers 200 with an empty body.
	status, payload = doJSON(t, http.MethodDelete, server.URL+"/chistes/Propio/id/"+created.ID, "")
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, payload)

	// The record is gone and the collection is empty again.
	status, payload = doJSON(t, http.MethodGet, server.URL+"/chistes/Propio/id/"+created.ID, "")
	assert.Equal(t, http.StatusBadRequest, status)
	assertErrorMessage(t, payload, joke.MsgJokeNotFound)

	status, payload = doJSON(t, http.MethodGet, server.URL+"/chistes/Propio", "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assertErrorMessage(t, payload, joke.MsgNoJokesYet)
}

func TestHTTP_DeleteJoke_NotFound(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodDelete,
		server.URL+"/chistes/Propio/id/"+uuidv7.New(), "")
	assert.Equal(t, http.StatusBadRequest, status)
	assertErrorMessage(t, payload, joke.MsgJokeNotFound)
}

// # Aggregates

func TestHTTP_CountByCategory(t *testing.T) {
	server := newTestAPI(t)

	for i := 0; i < 2; i++ {
		status, _ := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio",
			fmt.Sprintf(`{"texto": "malo %d", "puntaje": 1, "categoria": "Malo"}`, i))
		require.Equal(t, http.StatusOK, status)
	}
	status, _ := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio",
		`{"texto": "gracioso", "puntaje": 5, "categoria": "Chistoso"}`)
	require.Equal(t, http.StatusOK, status)

	status, payload := doJSON(t, http.MethodGet,
		server.URL+"/chistes/Propio/op/count/ca/Malo", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"result": 2}`, string(payload))
}

func TestHTTP_CountByCategory_URLEncoded(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio",
		`{"texto": "papá", "puntaje": 1, "categoria": "Dad joke"}`)
	require.Equal(t, http.StatusOK, status)

	// The space in "Dad joke" arrives percent-encoded.
	status, payload = doJSON(t, http.MethodGet,
		server.URL+"/chistes/Propio/op/count/ca/Dad%20joke", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"result": 1}`, string(payload))
}

func TestHTTP_CountByCategory_Failures(t *testing.T) {
	server := newTestAPI(t)

	status, payload := doJSON(t, http.MethodGet,
		server.URL+"/chistes/Propio/op/count/ca/Maaaaloo", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assertErrorMessage(t, payload, joke.MsgInvalidCategory)

	status, payload = doJSON(t, http.MethodGet,
		server.URL+"/chistes/Propio/op/count/ca/Malo", "")
	assert.Equal(t, http.StatusBadRequest, status)
	assertErrorMessage(t, payload, joke.MsgNoJokesInCategory)
}

func TestHTTP_ListByScore(t *testing.T) {
	server := newTestAPI(t)

	for _, body := range []string{
		`{"texto": "uno", "puntaje": 3, "categoria": "Malo"}`,
		`{"texto": "dos", "puntaje": 3, "categoria": "Chistoso"}`,
		`{"texto": "tres", "puntaje": 7, "categoria": "Malo"}`,
	} {
		status, _ := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio", body)
		require.Equal(t, http.StatusOK, status)
	}

	status, payload := doJSON(t, http.MethodGet,
		server.URL+"/chistes/Propio/op/all/pu/3", "")
	require.Equal(t, http.StatusOK, status)

	var envelope struct {
		Result []joke.Joke `json:"result"`
	}
	require.NoError(t, json.Unmarshal(payload, &envelope))
	require.Len(t, envelope.Result, 2)
	for _, j := range envelope.Result {
		assert.Equal(t, 3, j.Score)
	}
}

func TestHTTP_ListByScore_Failures(t *testing.T) {
	server := newTestAPI(t)

	status, _ := doJSON(t, http.MethodPost, server.URL+"/chistes/Propio",
		`{"texto": "uno", "puntaje": 3, "categoria": "Malo"}`)
	require.Equal(t, http.StatusOK, status)

	tests := []struct {
		name    string
		score   string
		wantMsg string
	}{
		{"below_range", "0", joke.MsgScoreOutOfRange},
		{"above_range", "11", joke.MsgScoreOutOfRange},
		{"non_numeric", "abc", joke.MsgScoreOutOfRange},
		{"no_matches", "9", joke.MsgNoJokesWithScore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := doJSON(t, http.MethodGet,
				server.URL+"/chistes/Propio/op/all/pu/"+tt.score, "")
			assert.Equal(t, http.StatusBadRequest, status)
			assertErrorMessage(t, payload, tt.wantMsg)
		})
	}
}
