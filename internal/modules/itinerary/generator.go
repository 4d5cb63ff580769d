// README: Itinerary generation: destination, transport, lodging, day plans,
// budget breakdown, and the trip overview text.
package itinerary

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"travelbuddy/internal/modules/catalog"
	"travelbuddy/internal/modules/recommend"
	"travelbuddy/internal/types"
)

// activityBudgetFloor kicks in when transport plus lodging already exceed
// the budget: a fifth of the total is still set aside for activities so the
// plan stays usable.
const activityBudgetFloor = 0.2

const (
	foodShare = 0.4
	miscShare = 0.1
)

type Generator struct {
	rec *recommend.Service

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator builds a plan generator. rng may be nil; tests inject a fixed
// seed so overview wording is reproducible.
func NewGenerator(rec *recommend.Service, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rec: rec, rng: rng}
}

func (g *Generator) pick(n int) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Intn(n)
}

func (g *Generator) perm(n int) []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Perm(n)
}

// Generate assembles a complete trip plan from the traveller's preferences.
// When no destination is stated the top-ranked one is used.
func (g *Generator) Generate(ctx context.Context, p recommend.Preferences) (Plan, error) {
	if err := p.Validate(); err != nil {
		return Plan{}, fmt.Errorf("%w: %s", ErrBadRequest, err)
	}

	ranked, err := g.rec.RankDestinations(p)
	if err != nil {
		return Plan{}, err
	}
	dest := ranked[0].Destination

	transport, err := g.rec.Transportation(ctx, p, dest)
	if err != nil {
		return Plan{}, err
	}
	lodging := g.rec.Accommodation(p, dest.ID)

	remaining := types.Money{
		Amount:   p.Budget.Amount - transport.Cost.Amount - lodging.TotalCost.Amount,
		Currency: p.Budget.Currency,
	}
	if remaining.Amount < 0 {
		remaining.Amount = int64(float64(p.Budget.Amount) * activityBudgetFloor)
	}

	days := p.DurationDays()
	daily := types.Money{Amount: remaining.Amount / int64(days), Currency: remaining.Currency}

	plans := make([]recommend.DayPlan, 0, days)
	activitiesCost := types.Money{Currency: p.Budget.Currency}
	for day := 1; day <= days; day++ {
		dp := g.rec.DailyPlan(p, dest, day, daily)
		plans = append(plans, dp)
		activitiesCost = activitiesCost.Add(dp.TotalCost)
	}

	food := types.Money{Amount: int64(float64(remaining.Amount) * foodShare), Currency: remaining.Currency}
	misc := types.Money{Amount: int64(float64(remaining.Amount) * miscShare), Currency: remaining.Currency}

	breakdown := BudgetBreakdown{
		Transportation: transport.Cost,
		Accommodation:  lodging.TotalCost,
		Activities:     activitiesCost,
		Food:           food,
		Miscellaneous:  misc,
	}
	breakdown.Total = transport.Cost.Add(lodging.TotalCost).Add(activitiesCost).Add(food).Add(misc)

	return Plan{
		Destination: dest,
		Transport:   transport,
		Lodging:     lodging,
		Days:        plans,
		Overview:    g.overview(p, dest, transport, lodging, plans),
		Breakdown:   breakdown,
	}, nil
}

func (g *Generator) overview(p recommend.Preferences, dest catalog.Destination, transport recommend.TransportPlan, lodging recommend.LodgingPlan, days []recommend.DayPlan) string {
	total := len(days)
	intros := []string{
		fmt.Sprintf("Get ready for an amazing %d-day adventure in %s!", total, dest.Name),
		fmt.Sprintf("Your %d-day journey to beautiful %s awaits!", total, dest.Name),
		fmt.Sprintf("Prepare for an unforgettable %d-day experience in %s!", total, dest.Name),
	}
	intro := intros[g.pick(len(intros))]

	transportDesc := fmt.Sprintf("You'll travel from %s to %s by %s.",
		p.Origin, dest.Name, strings.ToLower(transport.Mode))
	lodgingDesc := fmt.Sprintf("During your stay, you'll be enjoying the comfort of a %s accommodation at %s.",
		strings.ToLower(lodging.Type), lodging.Name)

	var candidates []string
	for _, dp := range days {
		for _, desc := range []string{dp.Morning.Description, dp.Afternoon.Description, dp.Evening.Description} {
			if desc != "" {
				candidates = append(candidates, desc)
			}
		}
	}
	var activitiesDesc string
	if len(candidates) > 0 {
		n := len(candidates)
		if n > 3 {
			n = 3
		}
		highlights := make([]string, 0, n)
		for _, idx := range g.perm(len(candidates))[:n] {
			highlights = append(highlights, candidates[idx])
		}
		activitiesDesc = "Some highlights of your trip include: " + strings.Join(highlights, "; ")
	} else {
		activitiesDesc = fmt.Sprintf("You'll have plenty of time to explore the best of %s.", dest.Name)
	}

	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "From %s to %s, you'll be exploring %s. ",
		p.StartDate.Format("January 2, 2006"), p.EndDate.Format("January 2, 2006"), dest.Name)
	b.WriteString(transportDesc)
	b.WriteString(" ")
	b.WriteString(lodgingDesc)
	b.WriteString("\n\n")
	b.WriteString(activitiesDesc)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s is known for %s", dest.Name, dest.Description)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Enjoy your %s!", types.TripDurationText(total))
	return b.String()
}
