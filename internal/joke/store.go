// Copyright (c) 2026 ApiChistes. All rights reserved.

package joke

import "context"

// Repository is the storage capability the joke service depends on.
//
// Implementations guarantee at-least-once durability after a nil return from
// any write. Row absence is reported as dberr.ErrNotFound; any other failure
// is a storage fault.
type Repository interface {
	// Insert persists a new joke and assigns its ID.
	Insert(context context.Context, j *Joke) error

	// InsertMany persists a batch of jokes in one round trip (seeding).
	InsertMany(context context.Context, jokes []*Joke) error

	// GetByID fetches one joke by its identifier.
	GetByID(context context.Context, id string) (*Joke, error)

	// UpdateByID applies the non-nil fields of patch atomically and returns
	// the updated joke.
	UpdateByID(context context.Context, id string, patch Patch) (*Joke, error)

	// DeleteByID removes one joke by its identifier.
	DeleteByID(context context.Context, id string) error

	// CountByCategory counts jokes in the given category.
	CountByCategory(context context.Context, category Category) (int, error)

	// ListByScore fetches all jokes whose score equals score.
	ListByScore(context context.Context, score int) ([]*Joke, error)

	// Random draws one joke uniformly at random from the whole collection.
	Random(context context.Context) (*Joke, error)
}

// Provider is an external joke service (Chuck Norris API, icanhazdadjoke).
type Provider interface {
	// Random fetches one joke from the provider, already mapped into the
	// [Joke] shape with the provider's fixed author, score, and category.
	Random(context context.Context) (*Joke, error)
}
