// README: Recommender tests (vectors, ranking, transport, lodging, plans).
package recommend

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"travelbuddy/internal/modules/catalog"
	"travelbuddy/internal/types"
)

// fixedDistance is an offline DistanceEstimator returning a canned value.
type fixedDistance struct {
	km  float64
	err error
}

func (f fixedDistance) DistanceKm(ctx context.Context, origin, destination string, originPos, destPos *types.Point) (float64, error) {
	return f.km, f.err
}

func newTestService(t *testing.T, km float64) *Service {
	t.Helper()
	cat := catalog.NewService(catalog.NewStore())
	return NewService(cat, fixedDistance{km: km}, 0.35, rand.New(rand.NewSource(42)))
}

func basePrefs() Preferences {
	start := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	return Preferences{
		Origin:         "New York, USA",
		StartDate:      start,
		EndDate:        start.AddDate(0, 0, 7),
		Budget:         types.FromFloat(2000, "USD"),
		Transportation: "Any",
		Accommodation:  "Any",
		Interests:      []string{catalog.CategoryCultural, catalog.CategoryCulinary},
	}
}

func TestPreferencesValidate(t *testing.T) {
	p := basePrefs()
	if err := p.Validate(); err != nil {
		t.Fatalf("valid prefs rejected: %v", err)
	}

	bad := p
	bad.EndDate = bad.StartDate
	if err := bad.Validate(); err == nil {
		t.Fatal("zero-length trip accepted")
	}

	bad = p
	bad.Interests = nil
	if err := bad.Validate(); err == nil {
		t.Fatal("empty interests accepted")
	}

	bad = p
	bad.Budget = types.Money{}
	if err := bad.Validate(); err == nil {
		t.Fatal("zero budget accepted")
	}
}

func TestCostLevelFromDailyBudget(t *testing.T) {
	cases := []struct {
		daily float64
		want  int
	}{
		{30, 1}, {49.99, 1}, {50, 2}, {99, 2}, {100, 3}, {199, 3}, {200, 4}, {349, 4}, {350, 5}, {1000, 5},
	}
	for _, tc := range cases {
		got := costLevelFromDailyBudget(types.FromFloat(tc.daily, "USD"))
		if got != tc.want {
			t.Errorf("daily %.2f: expected cost level %d, got %d", tc.daily, tc.want, got)
		}
	}
}

func TestUserVectorShapeAndWeights(t *testing.T) {
	svc := newTestService(t, 1000)
	p := basePrefs() // 2 interests → weight 0.75; ~285 USD/day → level 4

	vec := svc.UserVector(p)
	if len(vec) != 8 {
		t.Fatalf("expected 8 dims, got %d", len(vec))
	}
	// cultural (dim 0) and culinary (dim 2) selected
	if math.Abs(vec[0]-0.75) > 1e-9 || math.Abs(vec[2]-0.75) > 1e-9 {
		t.Fatalf("selected dims should be 0.75, got %v", vec)
	}
	if vec[1] != 0 || vec[3] != 0 {
		t.Fatalf("unselected dims should be 0, got %v", vec)
	}
	if math.Abs(vec[7]-0.8) > 1e-9 {
		t.Fatalf("cost dim: expected 0.8 (level 4), got %f", vec[7])
	}
}

func TestRankDestinationsExplicit(t *testing.T) {
	svc := newTestService(t, 1000)
	p := basePrefs()
	p.Destination = "Rome, Italy"

	got, err := svc.RankDestinations(p)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(got) != 1 || got[0].Destination.Name != "Rome, Italy" {
		t.Fatalf("explicit destination should short-circuit, got %+v", got)
	}

	p.Destination = "Atlantis"
	if _, err := svc.RankDestinations(p); !errors.Is(err, ErrUnknownDestination) {
		t.Fatalf("expected ErrUnknownDestination, got %v", err)
	}
}

func TestRankDestinationsOrdering(t *testing.T) {
	svc := newTestService(t, 1000)

	p := basePrefs()
	p.Interests = []string{catalog.CategoryRelaxation, catalog.CategoryOutdoor}

	got, err := svc.RankDestinations(p)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if len(got) != 10 {
		t.Fatalf("expected all 10 destinations ranked, got %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Similarity > got[i-1].Similarity {
			t.Fatalf("ranking not sorted at %d", i)
		}
	}
	// A relaxation+outdoor profile should rank Bali above New York.
	pos := map[string]int{}
	for i, sc := range got {
		pos[sc.Destination.Name] = i
	}
	if pos["Bali, Indonesia"] > pos["New York, USA"] {
		t.Fatalf("expected Bali above New York for relaxation/outdoor profile: %v", pos)
	}
}

func TestTransportationPreferredMode(t *testing.T) {
	svc := newTestService(t, 1200)
	p := basePrefs()
	p.Transportation = "Train"
	dest, _ := catalog.NewService(catalog.NewStore()).GetDestinationByName("Paris, France")

	plan, err := svc.Transportation(context.Background(), p, dest)
	if err != nil {
		t.Fatalf("transportation: %v", err)
	}
	if plan.Mode != "Train" {
		t.Fatalf("preference ignored: got %s", plan.Mode)
	}
	if plan.DistanceKm != 1200 {
		t.Fatalf("expected estimator distance 1200, got %.1f", plan.DistanceKm)
	}
	// 1200 km * 0.10 USD/km = 120 USD
	if plan.Cost.Amount != 12000 {
		t.Fatalf("expected cost 12000 cents, got %d", plan.Cost.Amount)
	}
	// 1200 km / 200 km/h = 6h
	if plan.TravelTime != 6*time.Hour {
		t.Fatalf("expected 6h travel time, got %s", plan.TravelTime)
	}
}

func TestTransportationModeByDistance(t *testing.T) {
	cases := []struct {
		km   float64
		want string
	}{
		{5000, "Plane"},
		{1001, "Plane"},
		{600, "Train"},
		{30, "Car"},
	}
	destSvc := catalog.NewService(catalog.NewStore())
	dest, _ := destSvc.GetDestinationByName("Barcelona, Spain")
	for _, tc := range cases {
		svc := newTestService(t, tc.km)
		plan, err := svc.Transportation(context.Background(), basePrefs(), dest)
		if err != nil {
			t.Fatalf("%.0f km: %v", tc.km, err)
		}
		if plan.Mode != tc.want {
			t.Errorf("%.0f km: expected %s, got %s", tc.km, tc.want, plan.Mode)
		}
	}
}

func TestTransportationEstimatorFailureFallsBack(t *testing.T) {
	cat := catalog.NewService(catalog.NewStore())
	svc := NewService(cat, fixedDistance{err: errors.New("api down")}, 0.35, rand.New(rand.NewSource(1)))
	p := basePrefs()
	p.Transportation = "Bus"
	dest, _ := cat.GetDestinationByName("Rome, Italy")

	plan, err := svc.Transportation(context.Background(), p, dest)
	if err != nil {
		t.Fatalf("transportation: %v", err)
	}
	if plan.DistanceKm != 400 {
		t.Fatalf("expected default ground distance 400 km, got %.1f", plan.DistanceKm)
	}
}

func TestAccommodationSelection(t *testing.T) {
	svc := newTestService(t, 1000)
	cat := catalog.NewService(catalog.NewStore())
	bali, _ := cat.GetDestinationByName("Bali, Indonesia") // cost level 2

	// 300 USD/day → lodging cap 105 USD/night. Bali luxury hotel is 300,
	// resort 400; best affordable by rating is the Airbnb (4.3, 100/night).
	prefs := basePrefs()
	prefs.Budget = types.FromFloat(2100, "USD")
	plan := svc.Accommodation(prefs, bali.ID)
	if plan.Type != "Airbnb" {
		t.Fatalf("expected Airbnb pick, got %s (%s)", plan.Type, plan.Name)
	}
	if plan.TotalCost.Amount != plan.CostPerNight.Amount*7 {
		t.Fatalf("total must be nightly*nights: %+v", plan)
	}

	// A tiny budget keeps nothing affordable: cheapest option wins.
	poor := basePrefs()
	poor.Budget = types.FromFloat(100, "USD")
	plan = svc.Accommodation(poor, bali.ID)
	if plan.Type != "Hostel" {
		t.Fatalf("expected cheapest (hostel) fallback, got %s", plan.Type)
	}

	// Preferred type is honored.
	p := basePrefs()
	p.Accommodation = "Resort"
	plan = svc.Accommodation(p, bali.ID)
	if plan.Type != "Resort" {
		t.Fatalf("expected resort, got %s", plan.Type)
	}
}

func TestActivitiesFilters(t *testing.T) {
	svc := newTestService(t, 1000)
	cat := catalog.NewService(catalog.NewStore())
	paris, _ := cat.GetDestinationByName("Paris, France")
	p := basePrefs()

	morning := svc.Activities(p, paris.ID, ActivityConstraints{Slot: "morning", MaxResults: 5})
	if len(morning) == 0 {
		t.Fatal("expected morning candidates")
	}
	for _, a := range morning {
		if !a.MorningSuitable {
			t.Fatalf("slot filter leaked %s", a.Name)
		}
		if a.Category != catalog.CategoryCultural && a.Category != catalog.CategoryCulinary {
			t.Fatalf("interest filter leaked %s (%s)", a.Name, a.Category)
		}
	}
	for i := 1; i < len(morning); i++ {
		if morning[i].Popularity > morning[i-1].Popularity {
			t.Fatal("activities not sorted by popularity")
		}
	}

	free := types.Money{Amount: 0, Currency: "USD"}
	cheap := svc.Activities(p, paris.ID, ActivityConstraints{MaxCost: &free})
	for _, a := range cheap {
		if a.Cost.Amount > 0 {
			t.Fatalf("cost cap leaked %s at %d", a.Name, a.Cost.Amount)
		}
	}
}

func TestActivitiesInterestFallback(t *testing.T) {
	svc := newTestService(t, 1000)
	cat := catalog.NewService(catalog.NewStore())
	paris, _ := cat.GetDestinationByName("Paris, France")

	p := basePrefs()
	p.Interests = []string{"Spelunking"} // not a catalog category
	got := svc.Activities(p, paris.ID, ActivityConstraints{MaxResults: 5})
	if len(got) == 0 {
		t.Fatal("unknown interests should fall back to all activities")
	}
}

func TestDailyPlan(t *testing.T) {
	svc := newTestService(t, 1000)
	cat := catalog.NewService(catalog.NewStore())
	paris, _ := cat.GetDestinationByName("Paris, France")
	p := basePrefs()
	daily := types.FromFloat(150, "USD")

	first := svc.DailyPlan(p, paris, 1, daily)
	if first.Title != "Welcome to Paris, France" {
		t.Fatalf("day 1 title: %q", first.Title)
	}
	last := svc.DailyPlan(p, paris, 7, daily)
	if last.Title != "Final Day in Paris, France" {
		t.Fatalf("final day title: %q", last.Title)
	}
	mid := svc.DailyPlan(p, paris, 3, daily)
	if mid.Title == "" || mid.Title == first.Title {
		t.Fatalf("mid-trip title: %q", mid.Title)
	}

	want := first.Morning.Cost.Add(first.Afternoon.Cost).Add(first.Evening.Cost)
	if first.TotalCost != want {
		t.Fatalf("total %+v != sum of slots %+v", first.TotalCost, want)
	}
	if first.Morning.Description == "" || first.Afternoon.Description == "" || first.Evening.Description == "" {
		t.Fatal("every slot needs a description")
	}
}

func TestDailyPlanZeroBudgetUsesFallbacks(t *testing.T) {
	svc := newTestService(t, 1000)
	cat := catalog.NewService(catalog.NewStore())
	tokyo, _ := cat.GetDestinationByName("Tokyo, Japan")
	p := basePrefs()
	p.Interests = []string{catalog.CategoryRelaxation}

	plan := svc.DailyPlan(p, tokyo, 2, types.Money{Currency: "USD"})
	// Every relaxation activity in Tokyo costs money, so all slots fall back.
	if plan.Morning.Cost.Amount != 0 {
		t.Fatalf("expected free fallback morning plan, got %+v", plan.Morning)
	}
	if !strings.Contains(plan.Morning.Description, "Explore the area") {
		t.Fatalf("expected fallback description, got %q", plan.Morning.Description)
	}
	if plan.Day != 2 {
		t.Fatalf("day number lost: %d", plan.Day)
	}
}
