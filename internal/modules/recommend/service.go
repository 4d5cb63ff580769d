// README: Hybrid recommender: content-based destination ranking plus
// rule-based transport, lodging, activity, and daily-plan selection.
package recommend

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"travelbuddy/internal/modules/catalog"
	"travelbuddy/internal/types"
)

// DistanceEstimator abstracts the geo layer so tests can run offline.
type DistanceEstimator interface {
	DistanceKm(ctx context.Context, origin, destination string, originPos, destPos *types.Point) (float64, error)
}

type Service struct {
	catalog  *catalog.Service
	distance DistanceEstimator
	// lodgingShare is the fraction of the daily budget reserved for lodging.
	lodgingShare float64

	mu  sync.Mutex
	rng *rand.Rand
}

// NewService builds a recommender. rng may be nil, in which case a
// time-seeded source is used; tests inject a fixed seed.
func NewService(cat *catalog.Service, distance DistanceEstimator, lodgingShare float64, rng *rand.Rand) *Service {
	if lodgingShare <= 0 || lodgingShare >= 1 {
		lodgingShare = 0.35
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{catalog: cat, distance: distance, lodgingShare: lodgingShare, rng: rng}
}

func (s *Service) pick(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// costLevelFromDailyBudget maps a daily budget in USD to the 1..5 catalog
// cost scale.
func costLevelFromDailyBudget(daily types.Money) int {
	switch d := daily.Float(); {
	case d < 50:
		return 1
	case d < 100:
		return 2
	case d < 200:
		return 3
	case d < 350:
		return 4
	default:
		return 5
	}
}

// UserVector builds the traveller's 8-dim feature vector: one dim per
// interest category (0.5 + 0.5/n when selected) plus the normalized cost
// level.
func (s *Service) UserVector(p Preferences) []float64 {
	vec := make([]float64, 0, len(catalog.Categories)+1)
	selected := make(map[string]bool, len(p.Interests))
	for _, in := range p.Interests {
		selected[in] = true
	}
	weight := 0.0
	if n := len(p.Interests); n > 0 {
		weight = 0.5 + 0.5/float64(n)
	}
	for _, cat := range catalog.Categories {
		if selected[cat] {
			vec = append(vec, weight)
		} else {
			vec = append(vec, 0)
		}
	}
	return append(vec, float64(costLevelFromDailyBudget(p.DailyBudget()))/5.0)
}

func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// RankDestinations scores every catalog destination against the traveller's
// feature vector. An explicitly requested destination short-circuits the
// ranking.
func (s *Service) RankDestinations(p Preferences) ([]DestinationScore, error) {
	if p.Destination != "" {
		d, err := s.catalog.GetDestinationByName(p.Destination)
		if err != nil {
			return nil, ErrUnknownDestination
		}
		return []DestinationScore{{Destination: d, Similarity: 1}}, nil
	}

	user := s.UserVector(p)
	dests := s.catalog.ListDestinations(catalog.Filter{})
	scores := make([]DestinationScore, 0, len(dests))
	for _, d := range dests {
		scores = append(scores, DestinationScore{
			Destination: d,
			Similarity:  cosineSimilarity(user, d.FeatureVector()),
		})
	}
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Similarity > scores[j].Similarity
	})
	return scores, nil
}

// defaultDistanceKm is the assumption used when neither the Maps API nor
// catalog coordinates can resolve the origin.
func defaultDistanceKm(mode string) float64 {
	switch mode {
	case "Train", "Bus", "Car":
		return 400
	case "Ferry":
		return 200
	case "Plane":
		return 2000
	default:
		return 1500
	}
}

func (s *Service) resolveDistanceKm(ctx context.Context, origin string, dest catalog.Destination, mode string) float64 {
	var originPos *types.Point
	if od, err := s.catalog.GetDestinationByName(origin); err == nil {
		originPos = &od.Position
	}
	destPos := dest.Position
	km, err := s.distance.DistanceKm(ctx, origin, dest.Name, originPos, &destPos)
	if err != nil || km <= 0 {
		return defaultDistanceKm(mode)
	}
	return km
}

// Transportation picks the travel mode. A stated preference wins; with
// "Any" the mode follows the distance: long haul flies, mid range takes the
// train, short hops drive.
func (s *Service) Transportation(ctx context.Context, p Preferences, dest catalog.Destination) (TransportPlan, error) {
	preferred := strings.TrimSpace(p.Transportation)
	if preferred != "" && !strings.EqualFold(preferred, "Any") {
		mode, err := s.catalog.TransportByMode(preferred)
		if err != nil {
			return TransportPlan{}, fmt.Errorf("transport mode %q: %w", preferred, err)
		}
		return s.buildTransportPlan(ctx, p, dest, mode), nil
	}

	km := s.resolveDistanceKm(ctx, p.Origin, dest, "")
	var name string
	switch {
	case km > 1000:
		name = "Plane"
	case km >= 50:
		name = "Train"
	default:
		name = "Car"
	}
	mode, err := s.catalog.TransportByMode(name)
	if err != nil {
		return TransportPlan{}, err
	}
	return transportPlanFor(p, dest, mode, km), nil
}

func (s *Service) buildTransportPlan(ctx context.Context, p Preferences, dest catalog.Destination, mode catalog.TransportMode) TransportPlan {
	km := s.resolveDistanceKm(ctx, p.Origin, dest, mode.Mode)
	return transportPlanFor(p, dest, mode, km)
}

func transportPlanFor(p Preferences, dest catalog.Destination, mode catalog.TransportMode, km float64) TransportPlan {
	travelHours := km / mode.SpeedKmH
	return TransportPlan{
		Mode:       mode.Mode,
		DistanceKm: km,
		Cost:       types.FromFloat(km*mode.CostPerKm, "USD"),
		TravelTime: time.Duration(travelHours * float64(time.Hour)),
		Details:    fmt.Sprintf("From %s to %s via %s", p.Origin, dest.Name, mode.Mode),
	}
}

// Accommodation selects lodging for the stay: affordable options (nightly
// rate within the lodging share of the daily budget) sorted by rating, the
// cheapest option when nothing is affordable, and a generic fallback when
// the catalog has nothing at all.
func (s *Service) Accommodation(p Preferences, destID int) LodgingPlan {
	nights := p.DurationDays()
	options := s.catalog.Accommodations(destID, p.Accommodation)
	if len(options) == 0 {
		options = s.catalog.Accommodations(destID, "Any")
	}
	if len(options) == 0 {
		typ := p.Accommodation
		if typ == "" || strings.EqualFold(typ, "Any") {
			typ = "Hotel"
		}
		nightly := types.FromFloat(100, "USD")
		return LodgingPlan{
			Accommodation: catalog.Accommodation{
				DestinationID: destID,
				Name:          "Local Accommodation",
				Type:          typ,
				CostPerNight:  nightly,
				Rating:        4.0,
				Amenities:     []string{"WiFi", "Breakfast"},
			},
			TotalCost: nightly.Mul(nights),
		}
	}

	nightlyCap := int64(float64(p.DailyBudget().Amount) * s.lodgingShare)
	var affordable []catalog.Accommodation
	for _, a := range options {
		if a.CostPerNight.Amount <= nightlyCap {
			affordable = append(affordable, a)
		}
	}

	var selected catalog.Accommodation
	if len(affordable) == 0 {
		selected = options[0]
		for _, a := range options[1:] {
			if a.CostPerNight.Amount < selected.CostPerNight.Amount {
				selected = a
			}
		}
	} else {
		sort.SliceStable(affordable, func(i, j int) bool {
			if affordable[i].Rating != affordable[j].Rating {
				return affordable[i].Rating > affordable[j].Rating
			}
			return affordable[i].CostPerNight.Amount < affordable[j].CostPerNight.Amount
		})
		selected = affordable[0]
	}

	return LodgingPlan{Accommodation: selected, TotalCost: selected.CostPerNight.Mul(nights)}
}

// Activities recommends activities for the destination honoring interests,
// slot suitability, and budget caps. Results are sorted by popularity
// descending with cost ascending as tiebreak.
func (s *Service) Activities(p Preferences, destID int, c ActivityConstraints) []catalog.Activity {
	all := s.catalog.Activities(destID, "")
	if len(all) == 0 {
		return nil
	}

	interests := make(map[string]bool, len(p.Interests))
	for _, in := range p.Interests {
		interests[in] = true
	}

	var preferred []catalog.Activity
	for _, a := range all {
		if len(interests) == 0 || interests[a.Category] {
			preferred = append(preferred, a)
		}
	}
	if len(preferred) == 0 {
		preferred = all
	}

	var filtered []catalog.Activity
	for _, a := range preferred {
		if c.Slot != "" && !a.SuitableFor(c.Slot) {
			continue
		}
		if c.MaxCost != nil && a.Cost.Amount > c.MaxCost.Amount {
			continue
		}
		filtered = append(filtered, a)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Popularity != filtered[j].Popularity {
			return filtered[i].Popularity > filtered[j].Popularity
		}
		return filtered[i].Cost.Amount < filtered[j].Cost.Amount
	})

	max := c.MaxResults
	if max <= 0 {
		max = 10
	}
	if len(filtered) > max {
		filtered = filtered[:max]
	}
	return filtered
}

// slot budget split: morning 30%, afternoon 40%, evening 30%.
var slotShares = map[string]float64{
	"morning":   0.3,
	"afternoon": 0.4,
	"evening":   0.3,
}

// DailyPlan assembles one day from top-rated slot activities. Ties among the
// top three candidates per slot are broken randomly so consecutive days
// differ.
func (s *Service) DailyPlan(p Preferences, dest catalog.Destination, dayNumber int, dailyBudget types.Money) DayPlan {
	plans := make(map[string]SlotPlan, 3)
	chosen := make(map[string]catalog.Activity, 3)

	for slot, share := range slotShares {
		slotBudget := types.Money{Amount: int64(float64(dailyBudget.Amount) * share), Currency: dailyBudget.Currency}
		candidates := s.Activities(p, dest.ID, ActivityConstraints{Slot: slot, MaxCost: &slotBudget, MaxResults: 3})
		if len(candidates) == 0 {
			plans[slot] = fallbackSlotPlan(slot, dest, slotBudget)
			continue
		}
		a := candidates[s.pick(len(candidates))]
		chosen[slot] = a
		plans[slot] = SlotPlan{Description: a.Description, Cost: a.Cost}
	}

	total := plans["morning"].Cost.Add(plans["afternoon"].Cost).Add(plans["evening"].Cost)
	return DayPlan{
		Day:       dayNumber,
		Title:     s.dayTitle(p, dest, dayNumber, chosen),
		Morning:   plans["morning"],
		Afternoon: plans["afternoon"],
		Evening:   plans["evening"],
		TotalCost: total,
	}
}

func fallbackSlotPlan(slot string, dest catalog.Destination, budget types.Money) SlotPlan {
	switch slot {
	case "morning":
		return SlotPlan{
			Description: fmt.Sprintf("Explore the area near your accommodation in %s.", dest.Name),
			Cost:        types.Money{Currency: budget.Currency},
		}
	case "afternoon":
		return SlotPlan{
			Description: fmt.Sprintf("Enjoy local sights and culture in %s.", dest.Name),
			Cost:        types.Money{Amount: budget.Amount / 2, Currency: budget.Currency},
		}
	default:
		return SlotPlan{
			Description: fmt.Sprintf("Dine at a local restaurant and experience %s's nightlife.", dest.Name),
			Cost:        types.Money{Amount: budget.Amount / 2, Currency: budget.Currency},
		}
	}
}

func (s *Service) dayTitle(p Preferences, dest catalog.Destination, dayNumber int, chosen map[string]catalog.Activity) string {
	switch {
	case dayNumber == 1:
		return fmt.Sprintf("Welcome to %s", dest.Name)
	case dayNumber == p.DurationDays():
		return fmt.Sprintf("Final Day in %s", dest.Name)
	}

	var keywords []string
	if a, ok := chosen["morning"]; ok && containsAny(a.Description, "cultural", "museum") {
		keywords = append(keywords, "Cultural")
	}
	if a, ok := chosen["afternoon"]; ok && containsAny(a.Description, "outdoor", "nature", "natural") {
		keywords = append(keywords, "Outdoor")
	}
	if a, ok := chosen["evening"]; ok && containsAny(a.Description, "food", "cuisine") {
		keywords = append(keywords, "Culinary")
	}
	if len(keywords) > 0 {
		kw := keywords[s.pick(len(keywords))]
		return fmt.Sprintf("Day of %s Exploration in %s", kw, dest.Name)
	}
	return fmt.Sprintf("Exploring %s - Day %d", dest.Name, dayNumber)
}

func containsAny(text string, words ...string) bool {
	lower := strings.ToLower(text)
	for _, w := range words {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}
