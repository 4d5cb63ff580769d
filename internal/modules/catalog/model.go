// README: Catalog datasets: destinations, activities, accommodations, transport modes.
package catalog

import (
	"errors"

	"travelbuddy/internal/types"
)

var ErrNotFound = errors.New("catalog entry not found")

// Interest categories offered to travellers. Feature scores and activity
// categories both key off these.
const (
	CategoryCultural      = "Cultural & Historical"
	CategoryOutdoor       = "Outdoor & Adventure"
	CategoryCulinary      = "Food & Culinary"
	CategoryRelaxation    = "Relaxation & Wellness"
	CategoryShopping      = "Shopping"
	CategoryEntertainment = "Entertainment"
	CategorySightseeing   = "Sightseeing"
)

// Categories lists every interest category in feature-vector order.
var Categories = []string{
	CategoryCultural,
	CategoryOutdoor,
	CategoryCulinary,
	CategoryRelaxation,
	CategoryShopping,
	CategoryEntertainment,
	CategorySightseeing,
}

// FeatureScores rates a destination 0..1 per interest category.
type FeatureScores struct {
	Cultural      float64
	Outdoor       float64
	Culinary      float64
	Relaxation    float64
	Shopping      float64
	Entertainment float64
	Sightseeing   float64
}

// Vector returns the scores in canonical category order.
func (f FeatureScores) Vector() []float64 {
	return []float64{
		f.Cultural, f.Outdoor, f.Culinary, f.Relaxation,
		f.Shopping, f.Entertainment, f.Sightseeing,
	}
}

type Destination struct {
	ID             int
	Name           string
	Region         string
	CostLevel      int // 1 = budget .. 5 = luxury
	Features       FeatureScores
	Climate        string
	BestSeasons    []string
	AvgDailyCost   types.Money
	Languages      []string
	Currency       string
	Description    string
	LocalTransport []string
	Attractions    []string
	Position       types.Point
}

// FeatureVector is the destination's 8-dim vector used by the recommender:
// the seven interest scores plus the normalized cost level.
func (d Destination) FeatureVector() []float64 {
	return append(d.Features.Vector(), float64(d.CostLevel)/5.0)
}

type Activity struct {
	ID              int
	DestinationID   int
	Name            string
	Category        string
	Description     string
	DurationHours   float64
	Cost            types.Money
	MorningSuitable bool
	AfternoonOK     bool
	EveningSuitable bool
	Popularity      float64 // 0..1
}

// SuitableFor reports whether the activity fits the given time slot
// ("morning", "afternoon", "evening"). Unknown slots match everything.
func (a Activity) SuitableFor(slot string) bool {
	switch slot {
	case "morning":
		return a.MorningSuitable
	case "afternoon":
		return a.AfternoonOK
	case "evening":
		return a.EveningSuitable
	}
	return true
}

type Accommodation struct {
	DestinationID   int
	Name            string
	Type            string // Hotel, Hostel, Airbnb, Resort
	CostPerNight    types.Money
	Rating          float64
	Amenities       []string
	SuitableFor     []string
	LocationQuality float64
}

type TransportMode struct {
	Mode            string
	CostPerKm       float64 // USD per km
	SpeedKmH        float64
	ComfortLevel    int
	EcoFriendliness int
	MinDistanceKm   float64
	MaxDistanceKm   float64
}
