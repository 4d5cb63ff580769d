// README: Itinerary lifecycle handlers (create/get/list/confirm/cancel/complete).
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbuddy/internal/http/middleware"
	"travelbuddy/internal/modules/itinerary"
	"travelbuddy/internal/modules/recommend"
	"travelbuddy/internal/types"
)

type ItineraryHandler struct {
	svc *itinerary.Service
}

func NewItineraryHandler(svc *itinerary.Service) *ItineraryHandler {
	return &ItineraryHandler{svc: svc}
}

// callerID resolves the acting user: the authenticated uid when present,
// otherwise the one supplied in the request.
func callerID(c *gin.Context, fromBody string) (types.ID, bool) {
	if uid := middleware.CallerUID(c); uid != "" {
		return types.ID(uid), true
	}
	if isValidID(fromBody) {
		return types.ID(fromBody), true
	}
	return "", false
}

type createItineraryRequest struct {
	UserID      string         `json:"user_id"`
	Preferences preferencesDTO `json:"preferences"`
}

// Create handles POST /api/itineraries.
func (h *ItineraryHandler) Create(c *gin.Context) {
	var req createItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	uid, ok := callerID(c, req.UserID)
	if !ok {
		writeError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	prefs, err := req.Preferences.toPreferences()
	if err != nil {
		writeError(c, http.StatusBadRequest, "dates must use YYYY-MM-DD")
		return
	}

	id, err := h.svc.Create(c.Request.Context(), itinerary.CreateCommand{
		UserID:      uid,
		Preferences: prefs,
	})
	if err != nil {
		writeItineraryError(c, err)
		return
	}

	it, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, itineraryJSON(it))
}

// Get handles GET /api/itineraries/:id.
func (h *ItineraryHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid itinerary id")
		return
	}
	it, err := h.svc.Get(c.Request.Context(), types.ID(id))
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, itineraryJSON(it))
}

// List handles GET /api/itineraries?user_id=.
func (h *ItineraryHandler) List(c *gin.Context) {
	uid, ok := callerID(c, c.Query("user_id"))
	if !ok {
		writeError(c, http.StatusBadRequest, "user_id is required")
		return
	}
	items, err := h.svc.ListByUser(c.Request.Context(), uid)
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	out := make([]gin.H, 0, len(items))
	for _, it := range items {
		out = append(out, itinerarySummaryJSON(it))
	}
	writeJSON(c, http.StatusOK, gin.H{"itineraries": out})
}

// Confirm handles POST /api/itineraries/:id/confirm.
func (h *ItineraryHandler) Confirm(c *gin.Context) {
	h.lifecycle(c, func(id, uid types.ID) error {
		return h.svc.Confirm(c.Request.Context(), itinerary.ConfirmCommand{
			ItineraryID: id,
			UserID:      uid,
		})
	})
}

// Complete handles POST /api/itineraries/:id/complete.
func (h *ItineraryHandler) Complete(c *gin.Context) {
	h.lifecycle(c, func(id, uid types.ID) error {
		return h.svc.Complete(c.Request.Context(), itinerary.CompleteCommand{
			ItineraryID: id,
			UserID:      uid,
		})
	})
}

type cancelRequest struct {
	UserID string `json:"user_id"`
	Reason string `json:"reason"`
}

// Cancel handles POST /api/itineraries/:id/cancel.
func (h *ItineraryHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid itinerary id")
		return
	}
	var req cancelRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	uid, ok := callerID(c, req.UserID)
	if !ok {
		writeError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	err := h.svc.Cancel(c.Request.Context(), itinerary.CancelCommand{
		ItineraryID: types.ID(id),
		ActorType:   "traveller",
		ActorID:     uid,
		Reason:      req.Reason,
	})
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	h.respondStatus(c, types.ID(id))
}

type lifecycleFn func(id, uid types.ID) error

func (h *ItineraryHandler) lifecycle(c *gin.Context, fn lifecycleFn) {
	id := c.Param("id")
	if !isValidID(id) {
		writeError(c, http.StatusBadRequest, "invalid itinerary id")
		return
	}
	var req struct {
		UserID string `json:"user_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		writeError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	uid, ok := callerID(c, req.UserID)
	if !ok {
		writeError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	if err := fn(types.ID(id), uid); err != nil {
		writeItineraryError(c, err)
		return
	}
	h.respondStatus(c, types.ID(id))
}

func (h *ItineraryHandler) respondStatus(c *gin.Context, id types.ID) {
	it, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeItineraryError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"id":             string(it.ID),
		"status":         string(it.Status),
		"status_version": it.StatusVersion,
	})
}

func transportJSON(tp recommend.TransportPlan) gin.H {
	return gin.H{
		"mode":              tp.Mode,
		"distance_km":       tp.DistanceKm,
		"cost":              moneyJSON(tp.Cost),
		"travel_time_hours": tp.TravelTime.Hours(),
		"details":           tp.Details,
	}
}

func lodgingJSON(lp recommend.LodgingPlan) gin.H {
	return gin.H{
		"name":           lp.Name,
		"type":           lp.Type,
		"cost_per_night": moneyJSON(lp.CostPerNight),
		"rating":         lp.Rating,
		"amenities":      lp.Amenities,
		"total_cost":     moneyJSON(lp.TotalCost),
	}
}

func dayJSON(d recommend.DayPlan) gin.H {
	slot := func(s recommend.SlotPlan) gin.H {
		return gin.H{"description": s.Description, "cost": moneyJSON(s.Cost)}
	}
	return gin.H{
		"day":        d.Day,
		"title":      d.Title,
		"morning":    slot(d.Morning),
		"afternoon":  slot(d.Afternoon),
		"evening":    slot(d.Evening),
		"total_cost": moneyJSON(d.TotalCost),
	}
}

func breakdownJSON(b itinerary.BudgetBreakdown) gin.H {
	return gin.H{
		"transportation": moneyJSON(b.Transportation),
		"accommodation":  moneyJSON(b.Accommodation),
		"activities":     moneyJSON(b.Activities),
		"food":           moneyJSON(b.Food),
		"miscellaneous":  moneyJSON(b.Miscellaneous),
		"total":          moneyJSON(b.Total),
	}
}

func itinerarySummaryJSON(it *itinerary.Itinerary) gin.H {
	out := gin.H{
		"id":             string(it.ID),
		"user_id":        string(it.UserID),
		"origin":         it.Origin,
		"destination":    it.Destination,
		"start_date":     it.StartDate.Format(dateLayout),
		"end_date":       it.EndDate.Format(dateLayout),
		"budget":         moneyJSON(it.Budget),
		"interests":      it.Interests,
		"status":         string(it.Status),
		"status_version": it.StatusVersion,
		"created_at":     it.CreatedAt,
		"expires_at":     it.ExpiresAt,
		"summary":        types.Truncate(it.Plan.Overview, 140),
	}
	if it.ConfirmedAt != nil {
		out["confirmed_at"] = it.ConfirmedAt
	}
	if it.CompletedAt != nil {
		out["completed_at"] = it.CompletedAt
	}
	if it.CancelledAt != nil {
		out["cancelled_at"] = it.CancelledAt
	}
	if it.CancelReason != nil {
		out["cancel_reason"] = *it.CancelReason
	}
	return out
}

func itineraryJSON(it *itinerary.Itinerary) gin.H {
	out := itinerarySummaryJSON(it)

	days := make([]gin.H, 0, len(it.Plan.Days))
	for _, d := range it.Plan.Days {
		days = append(days, dayJSON(d))
	}
	out["plan"] = gin.H{
		"destination": destinationJSON(it.Plan.Destination),
		"transport":   transportJSON(it.Plan.Transport),
		"lodging":     lodgingJSON(it.Plan.Lodging),
		"days":        days,
		"overview":    it.Plan.Overview,
		"breakdown":   breakdownJSON(it.Plan.Breakdown),
	}
	return out
}
