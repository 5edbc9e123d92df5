// Copyright (c) 2026 ApiChistes. All rights reserved.

package joke

import (
	"context"
	"errors"
	"log/slog"

	"github.com/unidentifiedchris/topicos/internal/platform/apperr"
	"github.com/unidentifiedchris/topicos/internal/platform/dberr"
	"github.com/unidentifiedchris/topicos/internal/platform/validate"
	"github.com/unidentifiedchris/topicos/pkg/uuidv7"
)

// Service implements the /chistes operations: random fetch from three
// sources, CRUD on the persisted collection, and the two aggregates.
//
// It holds no mutable state; every operation validates, performs at most one
// storage or provider call, and maps the outcome to an [apperr.AppError].
type Service struct {
	repo   Repository
	chuck  Provider
	dad    Provider
	logger *slog.Logger
}

func NewService(repo Repository, chuck, dad Provider, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		chuck:  chuck,
		dad:    dad,
		logger: logger,
	}
}

// FetchRandom returns one random joke from the requested source.
//
// Chuck and Dad proxy the external providers; Propio samples the persisted
// collection uniformly and answers 422 while the collection is empty.
func (service *Service) FetchRandom(context context.Context, source Source) (*Joke, error) {
	switch source {
	case SourceChuck:
		j, err := service.chuck.Random(context)
		if err != nil {
			return nil, apperr.Internal(MsgInternalError, err)
		}
		return j, nil

	case SourceDad:
		j, err := service.dad.Random(context)
		if err != nil {
			return nil, apperr.Internal(MsgInternalError, err)
		}
		return j, nil

	case SourcePropio:
		j, err := service.repo.Random(context)
		if err != nil {
			// Policy: a storage fault here presents like the empty
			// collection. Part of the inherited wire contract; the fault
			// is still logged.
			if !errors.Is(err, dberr.ErrNotFound) {
				service.logger.Warn("random_joke_failed", slog.Any("error", err))
			}
			return nil, apperr.Unprocessable(MsgNoJokesYet)
		}
		return j, nil
	}

	return nil, apperr.Invalid(MsgInvalidSource)
}

// Create validates and persists a new joke.
//
// The check order is a visible contract — each failure has its own message
// and only the first one is reported.
func (service *Service) Create(context context.Context, input CreateInput) (*Joke, error) {
	v := &validate.Validator{}
	err := v.
		Check(input.ID != "", MsgIDForbidden).
		Check(input.Text == "", MsgMissingText).
		Check(input.Score == nil, MsgMissingScore).
		Check(input.Score != nil && !ScoreInRange(*input.Score), MsgScoreOutOfRange).
		Check(input.Category == "", MsgMissingCategory).
		Check(input.Category != "" && !Category(input.Category).Valid(), MsgInvalidCategory).
		Err()
	if err != nil {
		return nil, err
	}

	author := input.Author
	if author == "" {
		author = DefaultAuthor
	}

	j := &Joke{
		Text:     input.Text,
		Author:   author,
		Score:    *input.Score,
		Category: Category(input.Category),
	}
	if err := service.repo.Insert(context, j); err != nil {
		return nil, err
	}

	service.logger.Info("joke_created",
		slog.String("joke_id", j.ID),
		slog.String("category", string(j.Category)),
	)
	return j, nil
}

// GetByID fetches one persisted joke.
//
// A structurally invalid id short-circuits to not-found without a storage
// call.
func (service *Service) GetByID(context context.Context, id string) (*Joke, error) {
	if !uuidv7.IsValid(id) {
		return nil, apperr.NotFound(MsgJokeNotFound)
	}

	j, err := service.repo.GetByID(context, id)
	if err != nil {
		// Policy: a storage fault on a single-record lookup presents to the
		// client exactly like a missing row. Part of the inherited wire
		// contract; the fault is still logged.
		if !errors.Is(err, dberr.ErrNotFound) {
			service.logger.Warn("joke_lookup_failed",
				slog.String("joke_id", id),
				slog.Any("error", err),
			)
		}
		return nil, apperr.NotFound(MsgJokeNotFound)
	}

	return j, nil
}

// UpdateByID applies a partial patch to one persisted joke.
//
// Checks apply only to fields present in the patch; the author default is
// create-only and never re-applied here.
func (service *Service) UpdateByID(context context.Context, id string, patch Patch) (*Joke, error) {
	v := &validate.Validator{}
	err := v.
		Check(patch.Score != nil && !ScoreInRange(*patch.Score), MsgScoreOutOfRange).
		Check(patch.Category != nil && !Category(*patch.Category).Valid(), MsgInvalidCategory).
		Check(patch.ID != "", MsgIDForbidden).
		Err()
	if err != nil {
		return nil, err
	}

	if !uuidv7.IsValid(id) {
		return nil, apperr.NotFound(MsgJokeNotFound)
	}

	j, err := service.repo.UpdateByID(context, id, patch)
	if err != nil {
		if !errors.Is(err, dberr.ErrNotFound) {
			service.logger.Warn("joke_update_failed",
				slog.String("joke_id", id),
				slog.Any("error", err),
			)
		}
		return nil, apperr.NotFound(MsgJokeNotFound)
	}

	service.logger.Info("joke_updated", slog.String("joke_id", j.ID))
	return j, nil
}

// DeleteByID removes one persisted joke.
func (service *Service) DeleteByID(context context.Context, id string) error {
	if !uuidv7.IsValid(id) {
		return apperr.NotFound(MsgJokeNotFound)
	}

	if err := service.repo.DeleteByID(context, id); err != nil {
		if !errors.Is(err, dberr.ErrNotFound) {
			service.logger.Warn("joke_delete_failed",
				slog.String("joke_id", id),
				slog.Any("error", err),
			)
		}
		return apperr.NotFound(MsgJokeNotFound)
	}

	service.logger.Warn("joke_deleted", slog.String("joke_id", id))
	return nil
}

// CountByCategory counts persisted jokes in a category.
//
// Zero matches is an error by contract, not an empty success.
func (service *Service) CountByCategory(context context.Context, category string) (int, error) {
	if !Category(category).Valid() {
		return 0, apperr.Invalid(MsgInvalidCategory)
	}

	total, err := service.repo.CountByCategory(context, Category(category))
	if err != nil {
		return 0, apperr.Internal(MsgCountFailed, err)
	}

	if total == 0 {
		return 0, apperr.NotFound(MsgNoJokesInCategory)
	}
	return total, nil
}

// ListByScore fetches all persisted jokes with exactly the given score.
//
// Zero matches is an error by contract, not an empty list.
func (service *Service) ListByScore(context context.Context, score int) ([]*Joke, error) {
	if !ScoreInRange(score) {
		return nil, apperr.Invalid(MsgScoreOutOfRange)
	}

	jokes, err := service.repo.ListByScore(context, score)
	if err != nil {
		return nil, apperr.Internal(MsgInternalError, err)
	}

	if len(jokes) == 0 {
		return nil, apperr.NotFound(MsgNoJokesWithScore)
	}
	return jokes, nil
}
