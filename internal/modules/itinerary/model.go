// README: Itinerary aggregate and status definitions.
package itinerary

import (
	"time"

	"travelbuddy/internal/modules/catalog"
	"travelbuddy/internal/modules/recommend"
	"travelbuddy/internal/types"
)

type Status string

const (
	StatusNone      Status = "none"
	StatusDraft     Status = "draft"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// BudgetBreakdown splits the trip budget: transport and lodging are actual
// plan costs, food and miscellaneous are allowances carved out of whatever
// the fixed costs left over.
type BudgetBreakdown struct {
	Transportation types.Money
	Accommodation  types.Money
	Activities     types.Money
	Food           types.Money
	Miscellaneous  types.Money
	Total          types.Money
}

// Plan is the generated trip content, stored as a document alongside the
// itinerary row.
type Plan struct {
	Destination catalog.Destination
	Transport   recommend.TransportPlan
	Lodging     recommend.LodgingPlan
	Days        []recommend.DayPlan
	Overview    string
	Breakdown   BudgetBreakdown
}

type Itinerary struct {
	ID            types.ID
	UserID        types.ID
	Origin        string
	Destination   string
	StartDate     time.Time
	EndDate       time.Time
	Budget        types.Money
	Interests     []string
	Status        Status
	StatusVersion int
	Plan          Plan
	CreatedAt     time.Time
	ExpiresAt     time.Time
	ConfirmedAt   *time.Time
	CompletedAt   *time.Time
	CancelledAt   *time.Time
	CancelReason  *string
}

type Event struct {
	ID          int64
	ItineraryID types.ID
	FromStatus  Status
	ToStatus    Status
	ActorType   string
	ActorID     *types.ID
	CreatedAt   time.Time
}

// AllowedTransitions represents the itinerary lifecycle as code. Drafts can
// be confirmed, cancelled, or swept as expired; confirmed trips end either
// completed or cancelled. Terminal states have no outgoing edges.
var AllowedTransitions = map[Status][]Status{
	StatusDraft:     {StatusConfirmed, StatusCancelled, StatusExpired},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func CanTransition(from, to Status) bool {
	next, ok := AllowedTransitions[from]
	if !ok {
		return false
	}
	for _, s := range next {
		if s == to {
			return true
		}
	}
	return false
}
