// README: Natural-language Q&A: token quota gate in front of the LLM.
package assist

import (
	"context"
	"errors"
	"strings"
	"time"

	"travelbuddy/internal/ai"
	"travelbuddy/internal/modules/aiusage"
	"travelbuddy/internal/types"
)

var ErrBadRequest = errors.New("bad request")

// ErrInsufficientTokens mirrors the quota error so handlers need only this
// package.
var ErrInsufficientTokens = aiusage.ErrInsufficientTokens

// TokenGate consumes one unit of a user's monthly chat allowance.
type TokenGate interface {
	UseToken(ctx context.Context, uid string) error
}

type Service struct {
	gate      TokenGate
	assistant ai.TravelAssistant
}

func NewService(gate TokenGate, assistant ai.TravelAssistant) *Service {
	return &Service{gate: gate, assistant: assistant}
}

// Chat answers one user message. The token is consumed before the model is
// called; quota exhaustion surfaces as ErrInsufficientTokens.
func (s *Service) Chat(ctx context.Context, uid, message string) (*ai.QueryResult, error) {
	uid = strings.TrimSpace(uid)
	message = strings.TrimSpace(message)
	if uid == "" || message == "" {
		return nil, ErrBadRequest
	}
	if s.assistant == nil {
		return nil, errors.New("assistant not configured")
	}

	if s.gate != nil {
		if err := s.gate.UseToken(ctx, uid); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	return s.assistant.AnswerQuery(ctx, message, map[string]string{
		"current_time": now.Format(time.RFC3339),
		"time_of_day":  types.TimePeriod(now.Hour()),
	})
}
