// README: Catalog service: destination filtering and dataset lookups.
package catalog

import "strings"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Filter narrows the destination list. Zero values mean "no constraint".
type Filter struct {
	Region       string
	Climate      string
	MaxCostLevel int
	// Query is matched case-insensitively against name, description, and
	// attraction names.
	Query string
}

func (s *Service) ListDestinations(f Filter) []Destination {
	var out []Destination
	q := strings.ToLower(strings.TrimSpace(f.Query))
	for _, d := range s.store.Destinations() {
		if f.Region != "" && !strings.EqualFold(d.Region, f.Region) {
			continue
		}
		if f.Climate != "" && !strings.EqualFold(d.Climate, f.Climate) {
			continue
		}
		if f.MaxCostLevel > 0 && d.CostLevel > f.MaxCostLevel {
			continue
		}
		if q != "" && !matchesQuery(d, q) {
			continue
		}
		out = append(out, d)
	}
	return out
}

func matchesQuery(d Destination, q string) bool {
	if strings.Contains(strings.ToLower(d.Name), q) ||
		strings.Contains(strings.ToLower(d.Description), q) {
		return true
	}
	for _, a := range d.Attractions {
		if strings.Contains(strings.ToLower(a), q) {
			return true
		}
	}
	return false
}

func (s *Service) DestinationNames() []string {
	dests := s.store.Destinations()
	names := make([]string, 0, len(dests))
	for _, d := range dests {
		names = append(names, d.Name)
	}
	return names
}

func (s *Service) GetDestination(id int) (Destination, error) {
	return s.store.DestinationByID(id)
}

func (s *Service) GetDestinationByName(name string) (Destination, error) {
	return s.store.DestinationByName(name)
}

// Activities returns a destination's activities, optionally limited to one
// category.
func (s *Service) Activities(destID int, category string) []Activity {
	acts := s.store.ActivitiesByDestination(destID)
	if category == "" {
		return acts
	}
	var out []Activity
	for _, a := range acts {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out
}

// Accommodations returns a destination's lodging options, optionally limited
// to one type. "Any" matches everything.
func (s *Service) Accommodations(destID int, typ string) []Accommodation {
	all := s.store.AccommodationsByDestination(destID)
	if typ == "" || strings.EqualFold(typ, "Any") {
		return all
	}
	var out []Accommodation
	for _, l := range all {
		if strings.EqualFold(l.Type, typ) {
			out = append(out, l)
		}
	}
	return out
}

func (s *Service) TransportModes() []TransportMode {
	return s.store.TransportModes()
}

func (s *Service) TransportByMode(mode string) (TransportMode, error) {
	return s.store.TransportByMode(mode)
}
