// README: Rule-based packing suggestions with optional LLM refinement.
package packing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"travelbuddy/internal/modules/catalog"
)

var ErrBadRequest = errors.New("bad request")

// Polisher lets an LLM extend or reword the rule-based list. A failing
// polisher never loses the trip: the rule-based list is returned as-is.
type Polisher interface {
	Polish(ctx context.Context, trip Trip, list List) (List, error)
}

type Service struct {
	catalog  *catalog.Service
	polisher Polisher
	log      *logrus.Logger
}

func NewService(cat *catalog.Service, polisher Polisher, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{catalog: cat, polisher: polisher, log: log}
}

// Suggest builds the packing list for the trip. Unknown destinations still
// get a list; climate-specific items just need the climate stated.
func (s *Service) Suggest(ctx context.Context, trip Trip) (List, error) {
	if trip.Destination == "" && trip.Climate == "" {
		return List{}, ErrBadRequest
	}
	if trip.EndDate.Before(trip.StartDate) {
		return List{}, ErrBadRequest
	}

	list := s.buildRuleBased(trip)
	if s.polisher == nil {
		return list, nil
	}

	polished, err := s.polisher.Polish(ctx, trip, list)
	if err != nil {
		s.log.WithError(err).Warn("packing list polish failed, using rule-based list")
		return list, nil
	}
	polished.AIGenerated = true
	return polished, nil
}

func (s *Service) buildRuleBased(trip Trip) List {
	list := List{
		Essentials: []string{
			"Passport / ID",
			"Travel insurance documents",
			"Phone and charger",
			"Universal power adapter",
			"Credit/debit cards and some cash",
			"Copies of important documents",
			"Toiletries kit",
		},
		HealthCare: []string{
			"Personal medications",
			"Basic first-aid kit",
			"Hand sanitizer",
		},
	}

	climate := trip.Climate
	var dest *catalog.Destination
	if trip.Destination != "" {
		if d, err := s.catalog.GetDestinationByName(trip.Destination); err == nil {
			dest = &d
			if climate == "" {
				climate = d.Climate
			}
			if d.Currency != "USD" {
				list.Notes = append(list.Notes,
					fmt.Sprintf("Local currency is %s; carry a travel card or exchange cash on arrival.", d.Currency))
			}
		}
	}

	switch climate {
	case "tropical":
		list.Clothing = append(list.Clothing,
			"Lightweight breathable clothing",
			"Swimwear",
			"Sandals",
			"Wide-brim hat",
			"Light rain jacket")
		list.HealthCare = append(list.HealthCare,
			"High-SPF sunscreen",
			"Insect repellent")
	case "mediterranean":
		list.Clothing = append(list.Clothing,
			"Light summer clothing",
			"Light sweater for evenings",
			"Swimwear",
			"Sunglasses")
		list.HealthCare = append(list.HealthCare, "Sunscreen")
	case "temperate":
		list.Clothing = append(list.Clothing,
			"Layered clothing",
			"Light jacket",
			"Comfortable walking shoes")
		list.Gear = append(list.Gear, "Compact umbrella")
	default:
		list.Clothing = append(list.Clothing, "Versatile layered clothing")
	}

	if coldSeason(trip.StartDate, dest) {
		list.Clothing = append(list.Clothing,
			"Warm coat",
			"Gloves and scarf",
			"Thermal layers")
	}

	days := trip.DurationDays()
	switch {
	case days > 7:
		list.Extras = append(list.Extras,
			"Travel laundry detergent",
			"Laundry bag")
		list.Notes = append(list.Notes,
			fmt.Sprintf("%d-day trip: plan to do laundry rather than pack for every day.", days))
	case days <= 3:
		list.Notes = append(list.Notes, "Short trip: a carry-on should be enough.")
	}

	for _, activity := range trip.Activities {
		switch activity {
		case catalog.CategoryOutdoor:
			list.Gear = append(list.Gear,
				"Hiking shoes",
				"Daypack",
				"Reusable water bottle")
		case catalog.CategoryRelaxation:
			list.Clothing = append(list.Clothing, "Swimwear / spa wear")
		case catalog.CategoryCultural:
			list.Clothing = append(list.Clothing, "Modest attire for temples and religious sites")
		case catalog.CategoryEntertainment:
			list.Clothing = append(list.Clothing, "One dressier evening outfit")
		case catalog.CategorySightseeing:
			list.Gear = append(list.Gear, "Camera", "Portable power bank")
		case catalog.CategoryShopping:
			list.Gear = append(list.Gear, "Foldable extra bag for purchases")
		}
	}

	return list
}

// coldSeason reports whether the trip starts in the destination's cold
// months, using the hemisphere when coordinates are known.
func coldSeason(start time.Time, dest *catalog.Destination) bool {
	if start.IsZero() {
		return false
	}
	m := start.Month()
	southern := dest != nil && dest.Position.Lat < 0
	if southern {
		return m >= time.May && m <= time.September
	}
	return m == time.November || m == time.December || m <= time.March
}
