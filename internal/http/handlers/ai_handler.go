// README: AI assistant handler (token-guarded travel chat).
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"travelbuddy/internal/http/middleware"
	"travelbuddy/internal/modules/assist"
)

type AIHandler struct {
	assist *assist.Service
}

func NewAIHandler(svc *assist.Service) *AIHandler {
	return &AIHandler{assist: svc}
}

type aiChatReq struct {
	UID     string `json:"uid"`
	Message string `json:"message"`
}

// Chat handles POST /api/ai/chat.
func (h *AIHandler) Chat(c *gin.Context) {
	var req aiChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	uid := middleware.CallerUID(c)
	if uid == "" {
		uid = strings.TrimSpace(req.UID)
	}
	req.Message = strings.TrimSpace(req.Message)
	if uid == "" || req.Message == "" {
		writeError(c, http.StatusBadRequest, "missing uid or message")
		return
	}
	if !isValidID(uid) {
		writeError(c, http.StatusBadRequest, "invalid uid")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	result, err := h.assist.Chat(ctx, uid, req.Message)
	if err != nil {
		writeAssistError(c, err)
		return
	}

	out := gin.H{
		"intent":    result.Intent,
		"reply":     result.Reply,
		"interests": result.Interests,
	}
	if result.Destination != nil {
		out["destination"] = *result.Destination
	}
	writeJSON(c, http.StatusOK, out)
}
