// README: Catalog tests (seed integrity + filtering).
package catalog

import "testing"

func TestSeedIntegrity(t *testing.T) {
	store := NewStore()

	dests := store.Destinations()
	if len(dests) != 10 {
		t.Fatalf("expected 10 destinations, got %d", len(dests))
	}

	for _, d := range dests {
		if d.CostLevel < 1 || d.CostLevel > 5 {
			t.Errorf("%s: cost level %d out of range", d.Name, d.CostLevel)
		}
		if len(d.FeatureVector()) != 8 {
			t.Errorf("%s: feature vector must have 8 dims", d.Name)
		}
		if d.Position.Lat == 0 && d.Position.Lng == 0 {
			t.Errorf("%s: missing coordinates", d.Name)
		}
		if len(store.ActivitiesByDestination(d.ID)) == 0 {
			t.Errorf("%s: no activities", d.Name)
		}
		if len(store.AccommodationsByDestination(d.ID)) != 6 {
			t.Errorf("%s: expected 6 accommodation tiers", d.Name)
		}
	}

	// Every activity must belong to a known destination and category.
	categories := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		categories[c] = true
	}
	for _, a := range seedActivities(dests) {
		if _, err := store.DestinationByID(a.DestinationID); err != nil {
			t.Errorf("activity %d: unknown destination %d", a.ID, a.DestinationID)
		}
		if !categories[a.Category] {
			t.Errorf("activity %d: unknown category %q", a.ID, a.Category)
		}
		if a.Popularity <= 0 || a.Popularity > 1 {
			t.Errorf("activity %d: popularity %f out of range", a.ID, a.Popularity)
		}
	}
}

func TestActivityCostScalesWithCostLevel(t *testing.T) {
	store := NewStore()
	bangkok, _ := store.DestinationByName("Bangkok, Thailand") // level 2
	tokyo, _ := store.DestinationByName("Tokyo, Japan")        // level 4

	avg := func(destID int) int64 {
		acts := store.ActivitiesByDestination(destID)
		var sum int64
		for _, a := range acts {
			sum += a.Cost.Amount
		}
		return sum / int64(len(acts))
	}
	if avg(bangkok.ID) >= avg(tokyo.ID) {
		t.Fatalf("expected Bangkok activities cheaper than Tokyo on average: %d vs %d",
			avg(bangkok.ID), avg(tokyo.ID))
	}
}

func TestListDestinationsFilter(t *testing.T) {
	svc := NewService(NewStore())

	cases := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"all", Filter{}, 10},
		{"europe", Filter{Region: "Europe"}, 3},
		{"tropical", Filter{Climate: "tropical"}, 3},
		{"budget", Filter{MaxCostLevel: 2}, 4},
		{"query name", Filter{Query: "tokyo"}, 1},
		{"query attraction", Filter{Query: "eiffel"}, 1},
		{"combined", Filter{Region: "Asia", MaxCostLevel: 2}, 2},
		{"no match", Filter{Region: "Antarctica"}, 0},
	}
	for _, tc := range cases {
		got := svc.ListDestinations(tc.filter)
		if len(got) != tc.want {
			t.Errorf("%s: expected %d destinations, got %d", tc.name, tc.want, len(got))
		}
	}
}

func TestLookups(t *testing.T) {
	svc := NewService(NewStore())

	if _, err := svc.GetDestination(99); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
	d, err := svc.GetDestinationByName("  paris, france ")
	if err != nil {
		t.Fatalf("case/space-insensitive name lookup: %v", err)
	}
	if d.ID != 1 {
		t.Fatalf("expected Paris id 1, got %d", d.ID)
	}

	cultural := svc.Activities(d.ID, CategoryCultural)
	for _, a := range cultural {
		if a.Category != CategoryCultural {
			t.Fatalf("category filter leaked %q", a.Category)
		}
	}

	hostels := svc.Accommodations(d.ID, "Hostel")
	if len(hostels) != 1 {
		t.Fatalf("expected 1 hostel in Paris, got %d", len(hostels))
	}
	if got := svc.Accommodations(d.ID, "Any"); len(got) != 6 {
		t.Fatalf("Any should match all tiers, got %d", len(got))
	}

	if _, err := svc.TransportByMode("plane"); err != nil {
		t.Fatalf("mode lookup should be case-insensitive: %v", err)
	}
	if _, err := svc.TransportByMode("Teleport"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
