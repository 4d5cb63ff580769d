package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"travelbuddy/internal/ai"
	"travelbuddy/internal/modules/catalog"
)

func main() {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		log.Fatal("GEMINI_API_KEY environment variable not set")
	}

	message := "I have about $2000 and love food and museums, where should I go in September?"
	if len(os.Args) > 1 {
		message = strings.Join(os.Args[1:], " ")
	}

	ctx := context.Background()
	cat := catalog.NewService(catalog.NewStore())
	assistant, err := ai.NewGeminiAssistant(ctx, apiKey, cat)
	if err != nil {
		log.Fatalf("Failed to initialize assistant: %v", err)
	}
	defer assistant.Close()

	fmt.Printf("User: %s\n", message)

	result, err := assistant.AnswerQuery(ctx, message, nil)
	if err != nil {
		log.Fatalf("Error answering query: %v", err)
	}

	fmt.Printf("AI Reply: %s\n", result.Reply)
	fmt.Printf("Intent: %s\n", result.Intent)
	if result.Destination != nil {
		fmt.Printf("Destination: %s\n", *result.Destination)
	}
	if len(result.Interests) > 0 {
		fmt.Printf("Interests: %s\n", strings.Join(result.Interests, ", "))
	}
}
