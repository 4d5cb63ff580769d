// README: Recommendation handlers: destination ranking and travel-date scoring.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelbuddy/internal/modules/recommend"
	"travelbuddy/internal/types"
)

const dateLayout = "2006-01-02"

// preferencesDTO is the wire form of recommend.Preferences shared by the
// recommendation and itinerary endpoints.
type preferencesDTO struct {
	Origin          string   `json:"origin"`
	Destination     string   `json:"destination"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	Budget          float64  `json:"budget"`
	Currency        string   `json:"currency"`
	Transportation  string   `json:"transportation"`
	Accommodation   string   `json:"accommodation"`
	Interests       []string `json:"interests"`
	SpecialRequests string   `json:"special_requests"`
}

func (d preferencesDTO) toPreferences() (recommend.Preferences, error) {
	start, err := time.Parse(dateLayout, d.StartDate)
	if err != nil {
		return recommend.Preferences{}, err
	}
	end, err := time.Parse(dateLayout, d.EndDate)
	if err != nil {
		return recommend.Preferences{}, err
	}
	currency := d.Currency
	if currency == "" {
		currency = "USD"
	}
	return recommend.Preferences{
		Origin:          d.Origin,
		Destination:     d.Destination,
		StartDate:       start,
		EndDate:         end,
		Budget:          types.FromFloat(d.Budget, currency),
		Transportation:  d.Transportation,
		Accommodation:   d.Accommodation,
		Interests:       d.Interests,
		SpecialRequests: d.SpecialRequests,
	}, nil
}

type RecommendHandler struct {
	rec *recommend.Service
}

func NewRecommendHandler(svc *recommend.Service) *RecommendHandler {
	return &RecommendHandler{rec: svc}
}

// Destinations handles POST /api/recommendations/destinations.
func (h *RecommendHandler) Destinations(c *gin.Context) {
	var dto preferencesDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	prefs, err := dto.toPreferences()
	if err != nil {
		writeError(c, http.StatusBadRequest, "dates must use YYYY-MM-DD")
		return
	}

	scores, err := h.rec.RankDestinations(prefs)
	if err != nil {
		writeRecommendError(c, err)
		return
	}

	out := make([]gin.H, 0, len(scores))
	for _, s := range scores {
		out = append(out, gin.H{
			"destination": destinationJSON(s.Destination),
			"similarity":  s.Similarity,
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"recommendations": out})
}

type dateRequest struct {
	Destination  string `json:"destination"`
	WindowStart  string `json:"window_start"`
	WindowEnd    string `json:"window_end"`
	DurationDays int    `json:"duration_days"`
}

// Dates handles POST /api/recommendations/dates.
func (h *RecommendHandler) Dates(c *gin.Context) {
	var req dateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	start, err := time.Parse(dateLayout, req.WindowStart)
	if err != nil {
		writeError(c, http.StatusBadRequest, "dates must use YYYY-MM-DD")
		return
	}
	end, err := time.Parse(dateLayout, req.WindowEnd)
	if err != nil {
		writeError(c, http.StatusBadRequest, "dates must use YYYY-MM-DD")
		return
	}

	options, err := h.rec.OptimizeDates(req.Destination, start, end, req.DurationDays)
	if err != nil {
		writeRecommendError(c, err)
		return
	}

	out := make([]gin.H, 0, len(options))
	for _, o := range options {
		out = append(out, gin.H{
			"start_date": o.StartDate.Format(dateLayout),
			"end_date":   o.EndDate.Format(dateLayout),
			"score":      o.Score,
			"reason":     o.Reason,
		})
	}
	writeJSON(c, http.StatusOK, gin.H{"options": out})
}
