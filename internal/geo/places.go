package geo

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"
)

// Place is a simplified attraction result from the Places API.
type Place struct {
	Name             string
	Address          string
	Rating           float32
	PlaceID          string
	UserRatingsTotal int
}

// PlacesService looks up live attractions to supplement the static catalog.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// SearchAttractions queries the Places API for attractions near the
// destination, optionally narrowed by query (e.g. "street food", "museums").
// Only well-rated results are kept, capped at limit.
func (s *PlacesService) SearchAttractions(ctx context.Context, destination, query string, limit int) ([]Place, error) {
	fullQuery := "top attractions in " + destination
	if q := strings.TrimSpace(query); q != "" {
		fullQuery = fmt.Sprintf("%s in %s", q, destination)
	}

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{Query: fullQuery})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	if limit <= 0 {
		limit = 5
	}
	var results []Place
	for _, result := range resp.Results {
		if result.Rating < 4.0 {
			continue
		}
		results = append(results, Place{
			Name:             result.Name,
			Address:          result.FormattedAddress,
			Rating:           result.Rating,
			PlaceID:          result.PlaceID,
			UserRatingsTotal: result.UserRatingsTotal,
		})
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}
