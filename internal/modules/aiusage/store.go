package aiusage

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles ai_usage persistence.
type Store struct {
	db        *pgxpool.Pool
	allowance int
}

// NewStore returns a Store backed by the given connection pool.
// monthlyTokens <= 0 falls back to DefaultTokens.
func NewStore(db *pgxpool.Pool, monthlyTokens int) *Store {
	if monthlyTokens <= 0 {
		monthlyTokens = DefaultTokens
	}
	return &Store{db: db, allowance: monthlyTokens}
}

// Allowance is the monthly token grant.
func (s *Store) Allowance() int { return s.allowance }

// UseToken atomically checks the monthly quota and deducts one token.
// It resets the counter to the allowance when last_reset_month is behind the current month.
// Returns ErrInsufficientTokens when 0 rows are updated (quota exhausted or user absent).
func (s *Store) UseToken(ctx context.Context, uid string) error {
	now := time.Now().Format("2006-01")

	tag, err := s.db.Exec(ctx, `
		UPDATE ai_usage SET
			tokens_remaining = CASE WHEN last_reset_month != $1 THEN $2 - 1 ELSE tokens_remaining - 1 END,
			last_reset_month = $1
		WHERE uid = $3 AND (last_reset_month < $1 OR tokens_remaining > 0)
	`, now, s.allowance, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrInsufficientTokens
	}
	return nil
}

// EnsureUser inserts a new ai_usage row for uid with the full allowance.
// If the row already exists the insert is silently skipped (ON CONFLICT DO NOTHING).
func (s *Store) EnsureUser(ctx context.Context, uid string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO ai_usage (uid, tokens_remaining, last_reset_month)
		VALUES ($1, $2, $3)
		ON CONFLICT (uid) DO NOTHING
	`, uid, s.allowance, time.Now().Format("2006-01"))
	return err
}

// Remaining reports the user's current balance without consuming a token.
// A user with no row has the full allowance available.
func (s *Store) Remaining(ctx context.Context, uid string) (int, error) {
	now := time.Now().Format("2006-01")

	var remaining int
	var month string
	err := s.db.QueryRow(ctx, `
		SELECT tokens_remaining, last_reset_month FROM ai_usage WHERE uid = $1
	`, uid).Scan(&remaining, &month)
	if errors.Is(err, pgx.ErrNoRows) {
		return s.allowance, nil
	}
	if err != nil {
		return 0, err
	}
	if month != now {
		return s.allowance, nil
	}
	return remaining, nil
}
