package ai

import (
	"context"

	"travelbuddy/internal/modules/packing"
)

// TravelAssistant defines the contract for interacting with AI models.
// This interface allows for swapping different AI providers (Gemini, OpenAI, etc.) in the future.
type TravelAssistant interface {
	// AnswerQuery analyzes the user's natural language travel question and
	// returns a structured result: the detected intent plus a conversational
	// reply. contextMap carries dynamic information like "current_time".
	AnswerQuery(ctx context.Context, userMessage string, currentContext map[string]string) (*QueryResult, error)

	// Polish extends or rewords a rule-based packing list for the given
	// trip. Implementations satisfy packing.Polisher.
	Polish(ctx context.Context, trip packing.Trip, list packing.List) (packing.List, error)
}
