package geo

import (
	"context"
	"fmt"
	"math"

	"googlemaps.github.io/maps"

	"travelbuddy/internal/types"
)

const earthRadiusKm = 6371.0

// DistanceService estimates travel distance between an origin string and a
// destination. When a Maps client is configured it asks the Distance Matrix
// API; otherwise it falls back to the great-circle distance between known
// coordinates.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a DistanceService. apiKey may be empty, in which
// case only the haversine fallback is available.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	if apiKey == "" {
		return &DistanceService{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client}, nil
}

// Live reports whether the Maps API is available.
func (s *DistanceService) Live() bool {
	return s.client != nil
}

// DistanceKm returns the travel distance in kilometres from origin (a
// free-text place) to the destination. destPos is used for the offline
// fallback.
func (s *DistanceService) DistanceKm(ctx context.Context, origin string, destination string, originPos, destPos *types.Point) (float64, error) {
	if s.client != nil {
		if km, err := s.matrixDistanceKm(ctx, origin, destination); err == nil {
			return km, nil
		}
		// API errors degrade to the offline estimate when coordinates exist.
	}
	if originPos != nil && destPos != nil {
		return HaversineKm(*originPos, *destPos), nil
	}
	return 0, fmt.Errorf("no route found from %q to %q", origin, destination)
}

func (s *DistanceService) matrixDistanceKm(ctx context.Context, origin, destination string) (float64, error) {
	r := &maps.DistanceMatrixRequest{
		Origins:      []string{origin},
		Destinations: []string{destination},
	}
	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return 0, fmt.Errorf("distance matrix api error: %w", err)
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("no route found")
	}
	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return 0, fmt.Errorf("distance matrix element status %s", el.Status)
	}
	return float64(el.Distance.Meters) / 1000.0, nil
}

// HaversineKm returns the great-circle distance in kilometres between two
// points specified in decimal degrees.
func HaversineKm(a, b types.Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
