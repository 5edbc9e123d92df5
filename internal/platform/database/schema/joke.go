package schema

// RefJokeTable represents the 'joke' table
type RefJokeTable struct {
	Table     string
	ID        string
	Text      string
	Author    string
	Score     string
	Category  string
	CreatedAt string
}

// RefJoke is the schema definition for joke.
//
// The migration for this table carries the storage-side backstop for the
// service-level invariants: text NOT NULL and non-empty, score CHECK 1..10,
// category CHECK against the closed set.
var RefJoke = RefJokeTable{
	Table:     "joke",
	ID:        "id",
	Text:      "text",
	Author:    "author",
	Score:     "score",
	Category:  "category",
	CreatedAt: "created_at",
}

func (t RefJokeTable) Columns() []string {
	return []string{t.ID, t.Text, t.Author, t.Score, t.Category}
}
