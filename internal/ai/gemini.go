package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"travelbuddy/internal/modules/catalog"
	"travelbuddy/internal/modules/packing"
)

// GeminiAssistant implements TravelAssistant using Google's Gemini models.
type GeminiAssistant struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	catalog *catalog.Service
}

// NewGeminiAssistant initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiAssistant(ctx context.Context, apiKey string, cat *catalog.Service) (*GeminiAssistant, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Use Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"

	// Set a reasonable temperature for creative but structured output.
	model.SetTemperature(0.4)

	return &GeminiAssistant{
		client:  client,
		model:   model,
		catalog: cat,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiAssistant) Close() {
	p.client.Close()
}

// AnswerQuery analyzes user input to extract travel intent and a reply.
func (p *GeminiAssistant) AnswerQuery(ctx context.Context, userMessage string, currentContext map[string]string) (*QueryResult, error) {
	systemPrompt := p.buildSystemPrompt(currentContext)

	// Appending context directly to the prompt keeps per-request context
	// injection simple.
	fullPrompt := fmt.Sprintf("%s\n\nUser Message: %s", systemPrompt, userMessage)

	cleanJSON, err := p.generate(ctx, fullPrompt)
	if err != nil {
		return nil, err
	}

	var result QueryResult
	if err := json.Unmarshal([]byte(cleanJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, cleanJSON)
	}
	return &result, nil
}

// Polish asks the model to refine a rule-based packing list. Satisfies
// packing.Polisher.
func (p *GeminiAssistant) Polish(ctx context.Context, trip packing.Trip, list packing.List) (packing.List, error) {
	base, err := json.Marshal(list)
	if err != nil {
		return packing.List{}, err
	}

	prompt := fmt.Sprintf(`Role: You are a seasoned travel packing expert.

A traveller is going to %s from %s to %s (%d days). Planned activity
categories: %s.

Below is a rule-generated packing list as JSON. Improve it: keep every
essential, remove duplicates, and add up to five destination-specific items
the rules missed. Respond with JSON in EXACTLY the same shape (keys:
Essentials, Clothing, Gear, HealthCare, Extras, Notes). Do not add keys.

%s`,
		trip.Destination,
		trip.StartDate.Format("January 2, 2006"),
		trip.EndDate.Format("January 2, 2006"),
		trip.DurationDays(),
		strings.Join(trip.Activities, ", "),
		string(base),
	)

	cleanJSON, err := p.generate(ctx, prompt)
	if err != nil {
		return packing.List{}, err
	}

	var polished packing.List
	if err := json.Unmarshal([]byte(cleanJSON), &polished); err != nil {
		return packing.List{}, fmt.Errorf("failed to parse packing JSON: %w. Raw: %s", err, cleanJSON)
	}
	if len(polished.Essentials) == 0 {
		return packing.List{}, fmt.Errorf("model dropped the essentials group")
	}
	return polished, nil
}

func (p *GeminiAssistant) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}

	// Clean up potential markdown formatting (though json mode should handle this, safety first).
	return cleanJSONString(responseText.String()), nil
}

// buildSystemPrompt constructs the instructions for the AI, injecting the
// destination catalog so answers stay grounded in places we can plan for.
func (p *GeminiAssistant) buildSystemPrompt(ctxMap map[string]string) string {
	currentTime := ctxMap["current_time"]
	if currentTime == "" {
		currentTime = "UNKNOWN_TIME"
	}

	names := "NONE"
	categories := "NONE"
	if p.catalog != nil {
		names = strings.Join(p.catalog.DestinationNames(), "; ")
		categories = strings.Join(catalog.Categories, "; ")
	}

	return fmt.Sprintf(`Role: You are "Travel Buddy", a friendly AI travel planner.
Context:
- Current System Time: %s
- Destinations we can plan trips for: %s
- Activity categories we understand: %s

RULES:

1. INTENT CLASSIFICATION:
   - "recommend": the user wants destination or trip suggestions
     (keywords: "where should I go", "suggest", "recommend", "best place for").
   - "packing": the user asks what to bring or pack.
   - "ask": any other travel question (weather, transport, food, culture, safety).

2. DESTINATION EXTRACTION:
   - If the message names a place, set "destination" to the MATCHING catalog
     entry (full "City, Country" form). Places outside the catalog go in the
     reply text but leave "destination" null.

3. INTEREST EXTRACTION:
   - Map mentioned activities onto the category list EXACTLY as spelled above.
   - E.g. "hiking" -> "Outdoor & Adventure"; "museums" -> "Cultural & Historical";
     "street food" -> "Food & Culinary". Leave the array empty when unclear.

4. REPLY:
   - Short, warm, and concrete. 2-4 sentences.
   - When recommending, mention at most three catalog destinations and why.
   - Never invent prices or schedules; speak in general terms.
   - Plain text only, no markdown.

5. Output JSON Schema:
{
  "intent": "recommend" | "packing" | "ask",
  "destination": "string or null",
  "interests": ["string"],
  "reply": "string (user facing response)"
}
`, currentTime, names, categories)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
