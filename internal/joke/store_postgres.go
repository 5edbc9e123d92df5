// Copyright (c) 2026 ApiChistes. All rights reserved.

package joke

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/unidentifiedchris/topicos/internal/platform/database/schema"
	"github.com/unidentifiedchris/topicos/internal/platform/dberr"
	"github.com/unidentifiedchris/topicos/pkg/uuidv7"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) Insert(context context.Context, j *Joke) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
	`,
		schema.RefJoke.Table, schema.RefJoke.ID, schema.RefJoke.Text,
		schema.RefJoke.Author, schema.RefJoke.Score, schema.RefJoke.Category,
	)

	j.ID = uuidv7.New()
	_, err := repository.db.Exec(context, query, j.ID, j.Text, j.Author, j.Score, j.Category)
	return dberr.Wrap(err, "insert_joke")
}

func (repository *PostgresRepository) InsertMany(context context.Context, jokes []*Joke) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5)
	`,
		schema.RefJoke.Table, schema.RefJoke.ID, schema.RefJoke.Text,
		schema.RefJoke.Author, schema.RefJoke.Score, schema.RefJoke.Category,
	)

	batch := &pgx.Batch{}
	for _, j := range jokes {
		j.ID = uuidv7.New()
		batch.Queue(query, j.ID, j.Text, j.Author, j.Score, j.Category)
	}

	results := repository.db.SendBatch(context, batch)
	defer results.Close()

	for range jokes {
		if _, err := results.Exec(); err != nil {
			return dberr.Wrap(err, "insert_jokes_batch")
		}
	}
	return nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id string) (*Joke, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefJoke.ID, schema.RefJoke.Text, schema.RefJoke.Author,
		schema.RefJoke.Score, schema.RefJoke.Category,
		schema.RefJoke.Table, schema.RefJoke.ID,
	)

	j := &Joke{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&j.ID, &j.Text, &j.Author, &j.Score, &j.Category,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "get_joke_by_id")
	}

	return j, nil
}

func (repository *PostgresRepository) UpdateByID(context context.Context, id string, patch Patch) (*Joke, error) {
	// COALESCE applies the patch atomically in one statement: nil pointers
	// arrive as NULL and leave the stored value untouched.
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = COALESCE($2, %s),
		    %s = COALESCE($3, %s),
		    %s = COALESCE($4, %s),
		    %s = COALESCE($5, %s)
		WHERE %s = $1
		RETURNING %s, %s, %s, %s, %s
	`,
		schema.RefJoke.Table,
		schema.RefJoke.Text, schema.RefJoke.Text,
		schema.RefJoke.Author, schema.RefJoke.Author,
		schema.RefJoke.Score, schema.RefJoke.Score,
		schema.RefJoke.Category, schema.RefJoke.Category,
		schema.RefJoke.ID,
		schema.RefJoke.ID, schema.RefJoke.Text, schema.RefJoke.Author,
		schema.RefJoke.Score, schema.RefJoke.Category,
	)

	j := &Joke{}
	err := repository.db.QueryRow(context, query, id, patch.Text, patch.Author, patch.Score, patch.Category).Scan(
		&j.ID, &j.Text, &j.Author, &j.Score, &j.Category,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "update_joke_by_id")
	}

	return j, nil
}

func (repository *PostgresRepository) DeleteByID(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.RefJoke.Table, schema.RefJoke.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_joke_by_id")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) CountByCategory(context context.Context, category Category) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.RefJoke.Table, schema.RefJoke.Category)

	var total int
	if err := repository.db.QueryRow(context, query, category).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_jokes_by_category")
	}

	return total, nil
}

func (repository *PostgresRepository) ListByScore(context context.Context, score int) ([]*Joke, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC
	`,
		schema.RefJoke.ID, schema.RefJoke.Text, schema.RefJoke.Author,
		schema.RefJoke.Score, schema.RefJoke.Category,
		schema.RefJoke.Table, schema.RefJoke.Score, schema.RefJoke.ID,
	)

	rows, err := repository.db.Query(context, query, score)
	if err != nil {
		return nil, dberr.Wrap(err, "list_jokes_by_score")
	}
	defer rows.Close()

	jokes := make([]*Joke, 0)
	for rows.Next() {
		j := &Joke{}
		if err := rows.Scan(&j.ID, &j.Text, &j.Author, &j.Score, &j.Category); err != nil {
			return nil, dberr.Wrap(err, "scan_joke")
		}
		jokes = append(jokes, j)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_jokes_by_score")
	}

	return jokes, nil
}

func (repository *PostgresRepository) Random(context context.Context) (*Joke, error) {
	// ORDER BY random() draws uniformly over the whole table, matching the
	// sampling semantics of the endpoint (not insertion-order-biased).
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY random()
		LIMIT 1
	`,
		schema.RefJoke.ID, schema.RefJoke.Text, schema.RefJoke.Author,
		schema.RefJoke.Score, schema.RefJoke.Category,
		schema.RefJoke.Table,
	)

	j := &Joke{}
	err := repository.db.QueryRow(context, query).Scan(
		&j.ID, &j.Text, &j.Author, &j.Score, &j.Category,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "random_joke")
	}

	return j, nil
}
