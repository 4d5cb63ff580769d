// README: Packing list handler.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelbuddy/internal/modules/packing"
)

type PackingHandler struct {
	svc *packing.Service
}

func NewPackingHandler(svc *packing.Service) *PackingHandler {
	return &PackingHandler{svc: svc}
}

type packingRequest struct {
	Destination string   `json:"destination"`
	Climate     string   `json:"climate"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Activities  []string `json:"activities"`
}

// Suggest handles POST /api/packing.
func (h *PackingHandler) Suggest(c *gin.Context) {
	var req packingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	trip := packing.Trip{
		Destination: req.Destination,
		Climate:     req.Climate,
		Activities:  req.Activities,
	}
	if req.StartDate != "" {
		start, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			writeError(c, http.StatusBadRequest, "dates must use YYYY-MM-DD")
			return
		}
		trip.StartDate = start
	}
	if req.EndDate != "" {
		end, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			writeError(c, http.StatusBadRequest, "dates must use YYYY-MM-DD")
			return
		}
		trip.EndDate = end
	}

	list, err := h.svc.Suggest(c.Request.Context(), trip)
	if err != nil {
		writePackingError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"essentials":   list.Essentials,
		"clothing":     list.Clothing,
		"gear":         list.Gear,
		"health_care":  list.HealthCare,
		"extras":       list.Extras,
		"notes":        list.Notes,
		"ai_generated": list.AIGenerated,
	})
}
