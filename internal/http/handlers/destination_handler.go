// README: Destination catalog handlers (list/get/activities).
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"travelbuddy/internal/geo"
	"travelbuddy/internal/modules/catalog"
	"travelbuddy/internal/types"
)

type DestinationHandler struct {
	catalog *catalog.Service
	// places is optional; without it attraction search falls back to the
	// static catalog.
	places *geo.PlacesService
}

func NewDestinationHandler(svc *catalog.Service, places *geo.PlacesService) *DestinationHandler {
	return &DestinationHandler{catalog: svc, places: places}
}

func moneyJSON(m types.Money) gin.H {
	return gin.H{
		"amount":    m.Float(),
		"currency":  m.Currency,
		"formatted": m.Format(),
	}
}

func destinationJSON(d catalog.Destination) gin.H {
	return gin.H{
		"id":              d.ID,
		"name":            d.Name,
		"region":          d.Region,
		"cost_level":      d.CostLevel,
		"climate":         d.Climate,
		"best_seasons":    d.BestSeasons,
		"avg_daily_cost":  moneyJSON(d.AvgDailyCost),
		"languages":       d.Languages,
		"currency":        d.Currency,
		"description":     d.Description,
		"local_transport": d.LocalTransport,
		"attractions":     d.Attractions,
		"position":        gin.H{"lat": d.Position.Lat, "lng": d.Position.Lng},
	}
}

func activityJSON(a catalog.Activity) gin.H {
	return gin.H{
		"id":               a.ID,
		"name":             a.Name,
		"category":         a.Category,
		"description":      a.Description,
		"duration_hours":   a.DurationHours,
		"cost":             moneyJSON(a.Cost),
		"morning_suitable": a.MorningSuitable,
		"afternoon_ok":     a.AfternoonOK,
		"evening_suitable": a.EveningSuitable,
		"popularity":       a.Popularity,
	}
}

// List handles GET /api/destinations.
func (h *DestinationHandler) List(c *gin.Context) {
	filter := catalog.Filter{
		Region:  c.Query("region"),
		Climate: c.Query("climate"),
		Query:   c.Query("q"),
	}
	if v := c.Query("max_cost_level"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 5 {
			writeError(c, http.StatusBadRequest, "max_cost_level must be 1..5")
			return
		}
		filter.MaxCostLevel = n
	}

	dests := h.catalog.ListDestinations(filter)
	out := make([]gin.H, 0, len(dests))
	for _, d := range dests {
		out = append(out, destinationJSON(d))
	}
	writeJSON(c, http.StatusOK, gin.H{"destinations": out})
}

// Get handles GET /api/destinations/:id.
func (h *DestinationHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid destination id")
		return
	}
	d, err := h.catalog.GetDestination(id)
	if err != nil {
		writeRecommendError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, destinationJSON(d))
}

// Activities handles GET /api/destinations/:id/activities.
func (h *DestinationHandler) Activities(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid destination id")
		return
	}
	if _, err := h.catalog.GetDestination(id); err != nil {
		writeRecommendError(c, err)
		return
	}

	acts := h.catalog.Activities(id, c.Query("category"))
	out := make([]gin.H, 0, len(acts))
	for _, a := range acts {
		out = append(out, activityJSON(a))
	}
	writeJSON(c, http.StatusOK, gin.H{"activities": out})
}

// Attractions handles GET /api/destinations/:id/attractions. With a Places
// client configured it returns live results; otherwise the catalog's static
// attraction names.
func (h *DestinationHandler) Attractions(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid destination id")
		return
	}
	d, err := h.catalog.GetDestination(id)
	if err != nil {
		writeRecommendError(c, err)
		return
	}

	if h.places == nil {
		out := make([]gin.H, 0, len(d.Attractions))
		for _, name := range d.Attractions {
			out = append(out, gin.H{"name": name, "source": "catalog"})
		}
		writeJSON(c, http.StatusOK, gin.H{"attractions": out})
		return
	}

	places, err := h.places.SearchAttractions(c.Request.Context(), d.Name, c.Query("q"), 10)
	if err != nil {
		writeError(c, http.StatusBadGateway, "attraction search failed")
		return
	}
	out := make([]gin.H, 0, len(places))
	for _, p := range places {
		out = append(out, gin.H{
			"name":    p.Name,
			"address": p.Address,
			"rating":  p.Rating,
			"source":  "places",
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"attractions": out})
}
