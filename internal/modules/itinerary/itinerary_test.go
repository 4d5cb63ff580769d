// README: Itinerary service tests (lifecycle, concurrency, expiry).
package itinerary

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"travelbuddy/internal/modules/catalog"
	"travelbuddy/internal/modules/recommend"
	"travelbuddy/internal/types"
)

type fixedDistance struct{ km float64 }

func (f fixedDistance) DistanceKm(ctx context.Context, origin, destination string, originPos, destPos *types.Point) (float64, error) {
	return f.km, nil
}

func newTestGenerator() *Generator {
	cat := catalog.NewService(catalog.NewStore())
	rec := recommend.NewService(cat, fixedDistance{km: 1200}, 0.35, rand.New(rand.NewSource(7)))
	return NewGenerator(rec, rand.New(rand.NewSource(7)))
}

func newTestService(store Store, ttl time.Duration) *Service {
	return NewService(store, newTestGenerator(), ttl, nil)
}

func testPrefs() recommend.Preferences {
	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	return recommend.Preferences{
		Origin:         "New York, USA",
		Destination:    "Paris, France",
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 7),
		Budget:         types.FromFloat(2000, "USD"),
		Transportation: "Any",
		Accommodation:  "Any",
		Interests:      []string{catalog.CategoryCultural, catalog.CategoryCulinary},
	}
}

func mustCreate(t *testing.T, svc *Service, userID types.ID) types.ID {
	t.Helper()
	id, err := svc.Create(context.Background(), CreateCommand{UserID: userID, Preferences: testPrefs()})
	if err != nil {
		t.Fatalf("create itinerary: %v", err)
	}
	return id
}

func assertStatus(t *testing.T, svc *Service, id types.ID, want Status) {
	t.Helper()
	it, err := svc.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("get itinerary: %v", err)
	}
	if it.Status != want {
		t.Fatalf("expected status %s, got %s", want, it.Status)
	}
}

// TestCanTransition verifies the state machine transition table.
func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusDraft, StatusConfirmed, true},
		{StatusDraft, StatusCancelled, true},
		{StatusDraft, StatusExpired, true},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		// invalid: terminal states have no outgoing transitions
		{StatusCompleted, StatusDraft, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusExpired, StatusConfirmed, false},
		// invalid: skipping states
		{StatusDraft, StatusCompleted, false},
		{StatusConfirmed, StatusExpired, false},
		{StatusConfirmed, StatusDraft, false},
	}
	for _, tc := range cases {
		got := CanTransition(tc.from, tc.to)
		if got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestLifecycleHappyPath(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, time.Hour)
	ctx := context.Background()

	id := mustCreate(t, svc, "u_happy")
	assertStatus(t, svc, id, StatusDraft)

	if err := svc.Confirm(ctx, ConfirmCommand{ItineraryID: id, UserID: "u_happy"}); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	assertStatus(t, svc, id, StatusConfirmed)

	if err := svc.Complete(ctx, CompleteCommand{ItineraryID: id, UserID: "u_happy"}); err != nil {
		t.Fatalf("complete: %v", err)
	}
	assertStatus(t, svc, id, StatusCompleted)

	// create + confirm + complete
	if n := store.eventCount(id); n != 3 {
		t.Fatalf("expected 3 events, got %d", n)
	}
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	if _, err := svc.Create(ctx, CreateCommand{Preferences: testPrefs()}); err != ErrBadRequest {
		t.Fatalf("missing user: expected ErrBadRequest, got %v", err)
	}

	bad := testPrefs()
	bad.Interests = nil
	if _, err := svc.Create(ctx, CreateCommand{UserID: "u_bad", Preferences: bad}); err == nil {
		t.Fatal("invalid preferences accepted")
	}
}

func TestCreatePersistsPlan(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	id := mustCreate(t, svc, "u_plan")
	it, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if it.Destination != "Paris, France" {
		t.Fatalf("destination: %s", it.Destination)
	}
	if len(it.Plan.Days) != 7 {
		t.Fatalf("expected 7 day plans, got %d", len(it.Plan.Days))
	}
	if it.Plan.Days[0].Title != "Welcome to Paris, France" {
		t.Fatalf("day 1 title: %q", it.Plan.Days[0].Title)
	}
	if !strings.Contains(it.Plan.Overview, "Paris, France") {
		t.Fatal("overview should mention the destination")
	}
	if it.ExpiresAt.Before(it.CreatedAt) {
		t.Fatal("draft TTL not applied")
	}
}

func TestInvalidTransitions(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	id := mustCreate(t, svc, "u_invalid")

	if err := svc.Complete(ctx, CompleteCommand{ItineraryID: id, UserID: "u_invalid"}); err != ErrInvalidState {
		t.Fatalf("complete draft: expected ErrInvalidState, got %v", err)
	}

	if err := svc.Cancel(ctx, CancelCommand{ItineraryID: id, ActorID: "u_invalid"}); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	assertStatus(t, svc, id, StatusCancelled)

	if err := svc.Confirm(ctx, ConfirmCommand{ItineraryID: id, UserID: "u_invalid"}); err != ErrInvalidState {
		t.Fatalf("confirm after cancel: expected ErrInvalidState, got %v", err)
	}

	if err := svc.Confirm(ctx, ConfirmCommand{ItineraryID: "missing", UserID: "u_invalid"}); err != ErrNotFound {
		t.Fatalf("confirm missing: expected ErrNotFound, got %v", err)
	}
}

func TestCancelRecordsReason(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	id := mustCreate(t, svc, "u_reason")
	if err := svc.Cancel(ctx, CancelCommand{ItineraryID: id, ActorID: "u_reason", Reason: "change_of_plans"}); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	it, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if it.CancelReason == nil || *it.CancelReason != "change_of_plans" {
		t.Fatalf("cancel reason not recorded: %v", it.CancelReason)
	}
	if it.CancelledAt == nil {
		t.Fatal("cancelled_at not set")
	}
}

func TestConcurrentConfirmVsCancel(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	id := mustCreate(t, svc, "u_confirm_cancel")

	var wg sync.WaitGroup
	errs := make(chan error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs <- svc.Confirm(ctx, ConfirmCommand{ItineraryID: id, UserID: "u_confirm_cancel"})
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		errs <- svc.Cancel(ctx, CancelCommand{ItineraryID: id, ActorID: "u_confirm_cancel"})
	}()

	wg.Wait()
	close(errs)

	success := 0
	for err := range errs {
		if err == nil {
			success++
			continue
		}
		if err != ErrConflict && err != ErrInvalidState {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if success < 1 || success > 2 {
		t.Fatalf("expected 1 or 2 successes, got %d", success)
	}

	it, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	// both succeeding means confirm then cancel; one success is either alone
	if success == 2 && it.Status != StatusCancelled {
		t.Fatalf("expected cancelled after confirm+cancel, got %s", it.Status)
	}
	if success == 1 && it.Status != StatusConfirmed && it.Status != StatusCancelled {
		t.Fatalf("unexpected final status: %s", it.Status)
	}
}

func TestConcurrentConfirmSameItinerary(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	id := mustCreate(t, svc, "u_multi_confirm")

	const attempts = 8
	var wg sync.WaitGroup
	errs := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- svc.Confirm(ctx, ConfirmCommand{ItineraryID: id, UserID: "u_multi_confirm"})
		}()
	}

	wg.Wait()
	close(errs)

	success := 0
	for err := range errs {
		if err == nil {
			success++
			continue
		}
		if err != ErrConflict && err != ErrInvalidState {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if success != 1 {
		t.Fatalf("expected exactly 1 success, got %d", success)
	}
	assertStatus(t, svc, id, StatusConfirmed)
}

func TestExpireDrafts(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, time.Millisecond)
	ctx := context.Background()

	staleID := mustCreate(t, svc, "u_expire")
	confirmedID := mustCreate(t, svc, "u_expire")
	if err := svc.Confirm(ctx, ConfirmCommand{ItineraryID: confirmedID, UserID: "u_expire"}); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	time.Sleep(5 * time.Millisecond)

	n, err := svc.expireDrafts(ctx)
	if err != nil {
		t.Fatalf("expire sweep: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 expiry, got %d", n)
	}
	assertStatus(t, svc, staleID, StatusExpired)
	assertStatus(t, svc, confirmedID, StatusConfirmed)

	if err := svc.Confirm(ctx, ConfirmCommand{ItineraryID: staleID, UserID: "u_expire"}); err != ErrInvalidState {
		t.Fatalf("confirm expired draft: expected ErrInvalidState, got %v", err)
	}
}

func TestListByUser(t *testing.T) {
	svc := newTestService(newMemStore(), time.Hour)
	ctx := context.Background()

	mustCreate(t, svc, "u_list")
	mustCreate(t, svc, "u_list")
	mustCreate(t, svc, "u_other")

	got, err := svc.ListByUser(ctx, "u_list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 itineraries, got %d", len(got))
	}

	if _, err := svc.ListByUser(ctx, ""); err != ErrBadRequest {
		t.Fatalf("empty user: expected ErrBadRequest, got %v", err)
	}
}
