// README: Recommendation inputs and results.
package recommend

import (
	"errors"
	"time"

	"travelbuddy/internal/modules/catalog"
	"travelbuddy/internal/types"
)

var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnknownDestination = errors.New("unknown destination")
)

// Preferences captures everything the traveller told us about the trip.
type Preferences struct {
	Origin          string
	Destination     string // empty = recommend one
	StartDate       time.Time
	EndDate         time.Time
	Budget          types.Money
	Transportation  string // mode name or "Any"
	Accommodation   string // lodging type or "Any"
	Interests       []string
	SpecialRequests string
}

// DurationDays is the trip length in nights/days.
func (p Preferences) DurationDays() int {
	return int(p.EndDate.Sub(p.StartDate).Hours() / 24)
}

// DailyBudget spreads the total budget over the trip.
func (p Preferences) DailyBudget() types.Money {
	days := p.DurationDays()
	if days < 1 {
		days = 1
	}
	return types.Money{Amount: p.Budget.Amount / int64(days), Currency: p.Budget.Currency}
}

// Validate enforces the minimum viable trip request.
func (p Preferences) Validate() error {
	if p.DurationDays() < 1 {
		return errors.New("end date must be after start date")
	}
	if len(p.Interests) == 0 {
		return errors.New("select at least one activity interest")
	}
	if p.Budget.Amount <= 0 {
		return errors.New("budget must be positive")
	}
	return nil
}

// DestinationScore is a ranked recommendation.
type DestinationScore struct {
	Destination catalog.Destination
	Similarity  float64
}

// TransportPlan describes the recommended way to reach the destination.
type TransportPlan struct {
	Mode       string
	DistanceKm float64
	Cost       types.Money
	TravelTime time.Duration
	Details    string
}

// LodgingPlan is the selected accommodation plus the stay total.
type LodgingPlan struct {
	catalog.Accommodation
	TotalCost types.Money
}

// ActivityConstraints narrow activity recommendations.
type ActivityConstraints struct {
	Slot       string // "morning", "afternoon", "evening" or empty
	MaxCost    *types.Money
	MaxResults int
}

// SlotPlan is one time slot of a day.
type SlotPlan struct {
	Description string
	Cost        types.Money
}

// DayPlan is a full day of the itinerary.
type DayPlan struct {
	Day       int
	Title     string
	Morning   SlotPlan
	Afternoon SlotPlan
	Evening   SlotPlan
	TotalCost types.Money
}

// DateOption is a scored candidate travel window.
type DateOption struct {
	StartDate time.Time
	EndDate   time.Time
	Score     float64
	Reason    string
}
