// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"travelbuddy/internal/modules/assist"
	"travelbuddy/internal/modules/catalog"
	"travelbuddy/internal/modules/itinerary"
	"travelbuddy/internal/modules/packing"
	"travelbuddy/internal/modules/recommend"
)

type errorResponse struct {
	Error string `json:"error"`
}

// isValidID ensures IDs are hex-ish and at most 32 chars (matches the ID generator).
func isValidID(v string) bool {
	if v == "" || len(v) > 32 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_' || c == '-' {
			continue
		}
		return false
	}
	return true
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func writeItineraryError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, itinerary.ErrBadRequest), errors.Is(err, recommend.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, itinerary.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, recommend.ErrUnknownDestination):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, itinerary.ErrInvalidState), errors.Is(err, itinerary.ErrConflict):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeRecommendError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recommend.ErrBadRequest), errors.Is(err, recommend.ErrUnknownDestination):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writePackingError(c *gin.Context, err error) {
	if errors.Is(err, packing.ErrBadRequest) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeError(c, http.StatusInternalServerError, "internal error")
}

func writeAssistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assist.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, assist.ErrInsufficientTokens):
		writeError(c, http.StatusTooManyRequests, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}
