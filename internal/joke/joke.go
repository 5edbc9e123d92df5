// Copyright (c) 2026 ApiChistes. All rights reserved.

// Package joke contains the joke domain: the persisted record model, the
// service implementing the /chistes operations, and its storage interface.
package joke

// Joke is a joke as served by the API.
//
// Persisted jokes and provider-sourced jokes share this shape; only
// persisted ones ever carry a storage-assigned ID. The Spanish JSON field
// names are the wire contract.
type Joke struct {
	ID       string   `json:"id"`
	Text     string   `json:"texto"`
	Author   string   `json:"author"`
	Score    int      `json:"puntaje"`
	Category Category `json:"categoria"`
}

// DefaultAuthor is stored when a joke is created without an author.
// Create-only: updates never re-apply it.
const DefaultAuthor = "Se perdió en el Ávila como Led"

// Score bounds, inclusive.
const (
	MinScore = 1
	MaxScore = 10
)

// ScoreInRange reports whether score is within [MinScore, MaxScore].
func ScoreInRange(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// # Categories

// Category is the closed set of joke categories.
//
// The set is fixed by the wire contract; every category check in the
// service goes through [Category.Valid] so the invariant lives here only.
type Category string

const (
	CategoryDadJoke    Category = "Dad joke"
	CategoryHumorNegro Category = "Humor Negro"
	CategoryChistoso   Category = "Chistoso"
	CategoryMalo       Category = "Malo"
)

// Categories returns the closed category set.
func Categories() []Category {
	return []Category{CategoryDadJoke, CategoryHumorNegro, CategoryChistoso, CategoryMalo}
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryDadJoke, CategoryHumorNegro, CategoryChistoso, CategoryMalo:
		return true
	}
	return false
}

// # Sources

// Source selects where a random joke is fetched from.
type Source string

const (
	SourceChuck  Source = "Chuck"
	SourceDad    Source = "Dad"
	SourcePropio Source = "Propio"
)

// # Request Shapes

// CreateInput carries the client-supplied fields of a create request.
//
// Score is a pointer so a missing score and a literal 0 stay distinguishable:
// the former is a missing-field error, the latter fails the range check.
type CreateInput struct {
	ID       string `json:"id"`
	Text     string `json:"texto"`
	Author   string `json:"author"`
	Score    *int   `json:"puntaje"`
	Category string `json:"categoria"`
}

// Patch carries a partial update. Only non-nil fields are applied; the
// record's other fields keep their stored values.
type Patch struct {
	ID       string  `json:"id"`
	Text     *string `json:"texto"`
	Author   *string `json:"author"`
	Score    *int    `json:"puntaje"`
	Category *string `json:"categoria"`
}

// # Wire Messages
//
// Client-facing messages, part of the inherited wire contract. Ordering of the
// create checks is a visible contract because each failure has its own text.
const (
	MsgInvalidSource     = "Tipo de chiste no válido"
	MsgNoJokesYet        = "Aun no hay chistes, cree uno!"
	MsgIDForbidden       = "No se puede especificar un ID"
	MsgMissingText       = "Falta el texto del chiste"
	MsgMissingScore      = "Falta el puntaje del chiste"
	MsgScoreOutOfRange   = "Puntaje debe estar entre 1 y 10"
	MsgMissingCategory   = "Falta la categoria del chiste"
	MsgInvalidCategory   = "Categoria no válida"
	MsgJokeNotFound      = "No se puede encontrar el chiste"
	MsgNoJokesInCategory = "No hay chistes con la categoria especificada"
	MsgNoJokesWithScore  = "No hay chistes con el puntaje especificado"
	MsgCountFailed       = "Error al contar los chistes"
	MsgInternalError     = "Error interno del servidor"
)
