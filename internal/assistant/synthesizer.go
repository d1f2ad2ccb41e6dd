package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
)

const synthesisFailureMessage = "I encountered an error while processing your request."

// Synthesizer narrates query result sets back into natural language
type Synthesizer struct {
	client CompletionClient
}

// NewSynthesizer creates a new response synthesizer
func NewSynthesizer(client CompletionClient) *Synthesizer {
	return &Synthesizer{client: client}
}

// GenerateResponse produces a short conversational summary of the results.
// Any failure degrades to a fixed apology string; the caller still gets the
// raw data either way.
func (s *Synthesizer) GenerateResponse(ctx context.Context, query string, results interface{}) string {
	serialized, err := json.Marshal(results)
	if err != nil {
		log.Printf("⚠️ [ASSISTANT] Failed to serialize results: %v", err)
		return synthesisFailureMessage
	}

	messages := []Message{
		{Role: "system", Content: synthesisSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Query: %s\n\nData found: %s", query, serialized)},
	}

	response, err := s.client.Complete(ctx, messages, false)
	if err != nil {
		log.Printf("⚠️ [ASSISTANT] Response synthesis failed: %v", err)
		return synthesisFailureMessage
	}
	if response == "" {
		return "I couldn't process your request."
	}

	return response
}
