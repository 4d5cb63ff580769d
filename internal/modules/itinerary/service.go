// README: Itinerary service implements state transitions and persistence.
package itinerary

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"travelbuddy/internal/modules/recommend"
	"travelbuddy/internal/types"
)

var (
	ErrInvalidState = errors.New("invalid state transition")
	ErrNotFound     = errors.New("itinerary not found")
	ErrConflict     = errors.New("itinerary state conflict")
	ErrBadRequest   = errors.New("bad request")
)

type Service struct {
	store    Store
	gen      *Generator
	draftTTL time.Duration
	log      *logrus.Logger
}

func NewService(store Store, gen *Generator, draftTTL time.Duration, log *logrus.Logger) *Service {
	if draftTTL <= 0 {
		draftTTL = 24 * time.Hour
	}
	if log == nil {
		log = logrus.New()
	}
	return &Service{store: store, gen: gen, draftTTL: draftTTL, log: log}
}

type CreateCommand struct {
	UserID      types.ID
	Preferences recommend.Preferences
}

type ConfirmCommand struct {
	ItineraryID types.ID
	UserID      types.ID
}

type CompleteCommand struct {
	ItineraryID types.ID
	UserID      types.ID
}

type CancelCommand struct {
	ItineraryID types.ID
	ActorType   string
	ActorID     types.ID
	Reason      string
}

// Create generates a plan for the given preferences and persists it as a
// draft. Drafts not confirmed within the TTL are swept as expired.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (types.ID, error) {
	if cmd.UserID == "" {
		return "", ErrBadRequest
	}
	plan, err := s.gen.Generate(ctx, cmd.Preferences)
	if err != nil {
		return "", err
	}

	id := newID()
	now := time.Now()
	it := &Itinerary{
		ID:            id,
		UserID:        cmd.UserID,
		Origin:        cmd.Preferences.Origin,
		Destination:   plan.Destination.Name,
		StartDate:     cmd.Preferences.StartDate,
		EndDate:       cmd.Preferences.EndDate,
		Budget:        cmd.Preferences.Budget,
		Interests:     cmd.Preferences.Interests,
		Status:        StatusDraft,
		StatusVersion: 0,
		Plan:          plan,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.draftTTL),
	}
	if err := s.store.Create(ctx, it); err != nil {
		return "", err
	}
	_ = s.store.AppendEvent(ctx, &Event{
		ItineraryID: id,
		FromStatus:  StatusNone,
		ToStatus:    StatusDraft,
		ActorType:   "traveller",
		ActorID:     &cmd.UserID,
		CreatedAt:   now,
	})
	return id, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Itinerary, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID types.ID) ([]*Itinerary, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) Confirm(ctx context.Context, cmd ConfirmCommand) error {
	return s.transition(ctx, cmd.ItineraryID, StatusConfirmed, "traveller", &cmd.UserID, nil)
}

func (s *Service) Complete(ctx context.Context, cmd CompleteCommand) error {
	return s.transition(ctx, cmd.ItineraryID, StatusCompleted, "traveller", &cmd.UserID, nil)
}

func (s *Service) Cancel(ctx context.Context, cmd CancelCommand) error {
	reason := cmd.Reason
	if reason == "" {
		reason = "user_cancel"
	}
	actorID := &cmd.ActorID
	if cmd.ActorID == "" {
		actorID = nil
	}
	actorType := cmd.ActorType
	if actorType == "" {
		actorType = "traveller"
	}
	return s.transition(ctx, cmd.ItineraryID, StatusCancelled, actorType, actorID, &reason)
}

func (s *Service) transition(ctx context.Context, id types.ID, to Status, actorType string, actorID *types.ID, reason *string) error {
	it, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !CanTransition(it.Status, to) {
		return ErrInvalidState
	}
	ok, err := s.store.UpdateStatus(ctx, it.ID, it.Status, to, it.StatusVersion, reason)
	if err != nil {
		return err
	}
	if !ok {
		return ErrConflict
	}
	_ = s.store.AppendEvent(ctx, &Event{
		ItineraryID: it.ID,
		FromStatus:  it.Status,
		ToStatus:    to,
		ActorType:   actorType,
		ActorID:     actorID,
		CreatedAt:   time.Now(),
	})
	return nil
}

// RunExpirySweeper marks overdue drafts expired. Blocks until ctx is done.
func (s *Service) RunExpirySweeper(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = time.Minute
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n, err := s.expireDrafts(ctx); err != nil {
				s.log.WithError(err).Warn("itinerary expiry sweep failed")
			} else if n > 0 {
				s.log.WithField("expired", n).Info("expired stale draft itineraries")
			}
		}
	}
}

func (s *Service) expireDrafts(ctx context.Context) (int, error) {
	stale, err := s.store.ListExpiredDrafts(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	expired := 0
	for _, it := range stale {
		ok, err := s.store.UpdateStatus(ctx, it.ID, StatusDraft, StatusExpired, it.StatusVersion, nil)
		if err != nil {
			return expired, err
		}
		if !ok {
			// confirmed or cancelled since we listed it
			continue
		}
		expired++
		_ = s.store.AppendEvent(ctx, &Event{
			ItineraryID: it.ID,
			FromStatus:  StatusDraft,
			ToStatus:    StatusExpired,
			ActorType:   "system",
			CreatedAt:   time.Now(),
		})
	}
	return expired, nil
}

func newID() types.ID {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return types.ID(hex.EncodeToString(b[:]))
}
