// README: In-memory catalog store with index maps for lookups.
package catalog

import "strings"

// Store holds the seed datasets and answers lookups. All data is immutable
// after construction so the store is safe for concurrent readers.
type Store struct {
	destinations []Destination
	activities   []Activity
	lodging      []Accommodation
	transport    []TransportMode

	destByID   map[int]*Destination
	destByName map[string]*Destination
	actsByDest map[int][]Activity
	lodgByDest map[int][]Accommodation
}

func NewStore() *Store {
	s := &Store{
		destinations: seedDestinations(),
		transport:    seedTransportModes(),
	}
	s.activities = seedActivities(s.destinations)
	s.lodging = seedAccommodations(s.destinations)

	s.destByID = make(map[int]*Destination, len(s.destinations))
	s.destByName = make(map[string]*Destination, len(s.destinations))
	for i := range s.destinations {
		d := &s.destinations[i]
		s.destByID[d.ID] = d
		s.destByName[strings.ToLower(d.Name)] = d
	}
	s.actsByDest = make(map[int][]Activity)
	for _, a := range s.activities {
		s.actsByDest[a.DestinationID] = append(s.actsByDest[a.DestinationID], a)
	}
	s.lodgByDest = make(map[int][]Accommodation)
	for _, l := range s.lodging {
		s.lodgByDest[l.DestinationID] = append(s.lodgByDest[l.DestinationID], l)
	}
	return s
}

func (s *Store) Destinations() []Destination {
	return s.destinations
}

func (s *Store) DestinationByID(id int) (Destination, error) {
	if d, ok := s.destByID[id]; ok {
		return *d, nil
	}
	return Destination{}, ErrNotFound
}

func (s *Store) DestinationByName(name string) (Destination, error) {
	if d, ok := s.destByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return *d, nil
	}
	return Destination{}, ErrNotFound
}

func (s *Store) ActivitiesByDestination(destID int) []Activity {
	return s.actsByDest[destID]
}

func (s *Store) AccommodationsByDestination(destID int) []Accommodation {
	return s.lodgByDest[destID]
}

func (s *Store) TransportModes() []TransportMode {
	return s.transport
}

func (s *Store) TransportByMode(mode string) (TransportMode, error) {
	for _, t := range s.transport {
		if strings.EqualFold(t.Mode, mode) {
			return t, nil
		}
	}
	return TransportMode{}, ErrNotFound
}
