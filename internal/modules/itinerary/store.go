// README: Itinerary persistence: the Store interface plus the PostgreSQL
// implementation. The generated plan travels as a jsonb document.
package itinerary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"travelbuddy/internal/types"
)

type Store interface {
	Create(ctx context.Context, it *Itinerary) error
	Get(ctx context.Context, id types.ID) (*Itinerary, error)
	ListByUser(ctx context.Context, userID types.ID) ([]*Itinerary, error)
	// UpdateStatus performs a compare-and-set on (status, status_version)
	// and reports whether the row was updated.
	UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, reason *string) (bool, error)
	ListExpiredDrafts(ctx context.Context, now time.Time) ([]*Itinerary, error)
	AppendEvent(ctx context.Context, e *Event) error
}

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Create(ctx context.Context, it *Itinerary) error {
	plan, err := json.Marshal(it.Plan)
	if err != nil {
		return err
	}
	interests, err := json.Marshal(it.Interests)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO itineraries (
            id, user_id, origin, destination,
            start_date, end_date,
            budget_amount, budget_currency, interests,
            status, status_version, plan,
            created_at, expires_at
        ) VALUES (
            $1, $2, $3, $4,
            $5, $6,
            $7, $8, $9,
            $10, $11, $12,
            $13, $14
        )`,
		string(it.ID),
		string(it.UserID),
		it.Origin,
		it.Destination,
		it.StartDate,
		it.EndDate,
		it.Budget.Amount,
		it.Budget.Currency,
		interests,
		string(it.Status),
		it.StatusVersion,
		plan,
		it.CreatedAt,
		it.ExpiresAt,
	)
	return err
}

const itineraryColumns = `
        id, user_id, origin, destination,
        start_date, end_date,
        budget_amount, budget_currency, interests,
        status, status_version, plan,
        created_at, expires_at,
        confirmed_at, completed_at, cancelled_at, cancellation_reason`

func (s *PGStore) Get(ctx context.Context, id types.ID) (*Itinerary, error) {
	row := s.db.QueryRow(ctx, `
        SELECT `+itineraryColumns+`
        FROM itineraries
        WHERE id = $1`, string(id),
	)
	it, err := scanItinerary(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return it, err
}

func (s *PGStore) ListByUser(ctx context.Context, userID types.ID) ([]*Itinerary, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+itineraryColumns+`
        FROM itineraries
        WHERE user_id = $1
        ORDER BY created_at DESC`, string(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Itinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *PGStore) UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, reason *string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
        UPDATE itineraries
        SET status = $1,
            status_version = status_version + 1,
            confirmed_at = CASE WHEN $1 = 'confirmed' THEN NOW() ELSE confirmed_at END,
            completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE completed_at END,
            cancelled_at = CASE WHEN $1 IN ('cancelled','expired') THEN NOW() ELSE cancelled_at END,
            cancellation_reason = COALESCE($2, cancellation_reason)
        WHERE id = $3 AND status = $4 AND status_version = $5`,
		string(to),
		reason,
		string(id),
		string(from),
		version,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *PGStore) ListExpiredDrafts(ctx context.Context, now time.Time) ([]*Itinerary, error) {
	rows, err := s.db.Query(ctx, `
        SELECT `+itineraryColumns+`
        FROM itineraries
        WHERE status = 'draft' AND expires_at <= $1`, now,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Itinerary
	for rows.Next() {
		it, err := scanItinerary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (s *PGStore) AppendEvent(ctx context.Context, e *Event) error {
	var actorID *string
	if e.ActorID != nil {
		v := string(*e.ActorID)
		actorID = &v
	}
	_, err := s.db.Exec(ctx, `
        INSERT INTO itinerary_events (
            itinerary_id, from_status, to_status, actor_type, actor_id, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6)`,
		string(e.ItineraryID),
		string(e.FromStatus),
		string(e.ToStatus),
		e.ActorType,
		actorID,
		e.CreatedAt,
	)
	return err
}

func scanItinerary(row pgx.Row) (*Itinerary, error) {
	var it Itinerary
	var interests, plan []byte
	var confirmedAt, completedAt, cancelledAt sql.NullTime
	var cancelReason sql.NullString

	err := row.Scan(
		&it.ID, &it.UserID, &it.Origin, &it.Destination,
		&it.StartDate, &it.EndDate,
		&it.Budget.Amount, &it.Budget.Currency, &interests,
		&it.Status, &it.StatusVersion, &plan,
		&it.CreatedAt, &it.ExpiresAt,
		&confirmedAt, &completedAt, &cancelledAt, &cancelReason,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(interests, &it.Interests); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(plan, &it.Plan); err != nil {
		return nil, err
	}
	it.ConfirmedAt = nullTimePtr(confirmedAt)
	it.CompletedAt = nullTimePtr(completedAt)
	it.CancelledAt = nullTimePtr(cancelledAt)
	if cancelReason.Valid {
		it.CancelReason = &cancelReason.String
	}
	return &it, nil
}

func nullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
