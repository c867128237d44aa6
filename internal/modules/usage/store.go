// README: llm_calls persistence via pgxpool.
package usage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles llm_calls persistence.
//
// Expected schema:
//
//	CREATE TABLE IF NOT EXISTS llm_calls (
//	    id          BIGSERIAL PRIMARY KEY,
//	    session_id  TEXT NOT NULL,
//	    stage       TEXT NOT NULL,
//	    intent      TEXT NOT NULL DEFAULT '',
//	    model       TEXT NOT NULL,
//	    latency_ms  BIGINT NOT NULL,
//	    ok          BOOLEAN NOT NULL,
//	    error       TEXT NOT NULL DEFAULT '',
//	    created_at  TIMESTAMPTZ NOT NULL
//	);
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Insert appends one call record.
func (s *Store) Insert(ctx context.Context, c Call) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO llm_calls (session_id, stage, intent, model, latency_ms, ok, error, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, c.SessionID, c.Stage, c.Intent, c.Model, c.LatencyMS, c.OK, c.Error, c.CreatedAt)
	return err
}
