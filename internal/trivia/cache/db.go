package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ddanielcruz/numbertrivia/internal/trivia"
)

// cachedTrivia is the row shape of the trivia_cache table.
type cachedTrivia struct {
	ID        int64     `db:"id"`
	Text      string    `db:"text"`
	Number    int64     `db:"number"`
	UpdatedAt time.Time `db:"updated_at"`
}

// The table holds at most one row; every save upserts the same id.
const slotID = 1

// DBStore implements the single-slot cache on a SQL database.
type DBStore struct {
	db *sqlx.DB
}

var _ trivia.CacheStore = (*DBStore)(nil)

// NewDBStore creates a new DBStore.
func NewDBStore(db *sqlx.DB) *DBStore {
	return &DBStore{db: db}
}

// Last returns the cached record. It fails when the slot row is missing or
// holds an unusable record.
func (s *DBStore) Last(ctx context.Context) (trivia.TriviaRecord, error) {
	var row cachedTrivia
	if err := s.db.GetContext(ctx, &row,
		"SELECT id, text, number, updated_at FROM trivia_cache WHERE id = ?", slotID); err != nil {
		return trivia.TriviaRecord{}, fmt.Errorf("load cached trivia: %w", err)
	}

	record := trivia.TriviaRecord{Text: row.Text, Number: row.Number}
	if !record.Valid() {
		return trivia.TriviaRecord{}, fmt.Errorf("corrupt cached trivia row")
	}
	return record, nil
}

// Save overwrites the slot with record.
func (s *DBStore) Save(ctx context.Context, record trivia.TriviaRecord) error {
	row := cachedTrivia{
		ID:        slotID,
		Text:      record.Text,
		Number:    record.Number,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.db.NamedExecContext(ctx,
		"INSERT INTO trivia_cache (id, text, number, updated_at) VALUES (:id, :text, :number, :updated_at) ON CONFLICT(id) DO UPDATE SET text = excluded.text, number = excluded.number, updated_at = excluded.updated_at",
		row)
	if err != nil {
		return fmt.Errorf("save cached trivia: %w", err)
	}
	return nil
}
