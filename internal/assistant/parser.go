package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
)

// Parser turns free text into structured intents using the completion
// provider. Both parse methods never fail: on any provider or decoding
// error they return a zero-confidence intent so the caller can fall
// through to the deterministic rules.
type Parser struct {
	client CompletionClient
}

// NewParser creates a new intent parser
func NewParser(client CompletionClient) *Parser {
	return &Parser{client: client}
}

// ParseCommand parses a command string into a CommandIntent
func (p *Parser) ParseCommand(ctx context.Context, command string) CommandIntent {
	unknown := CommandIntent{
		Action:     ActionUnknown,
		Entity:     ActionUnknown,
		Confidence: 0,
	}

	messages := []Message{
		{Role: "system", Content: commandSystemPrompt},
		{Role: "user", Content: command},
	}

	content, err := p.client.Complete(ctx, messages, true)
	if err != nil {
		log.Printf("⚠️ [ASSISTANT] Command parse failed: %v", err)
		return unknown
	}

	intent, err := decodeCommandIntent([]byte(stripMarkdownCodeBlock(content)))
	if err != nil {
		log.Printf("⚠️ [ASSISTANT] Command intent decode failed: %v, content: %s", err, content)
		return unknown
	}

	return intent
}

// ParseQuery parses a query string into a QueryIntent. availableEntities
// lists the data types the executor can search.
func (p *Parser) ParseQuery(ctx context.Context, query string, availableEntities []string) QueryIntent {
	unknown := QueryIntent{
		Type:       "search",
		Entity:     ActionUnknown,
		Query:      query,
		Confidence: 0,
	}

	messages := []Message{
		{Role: "system", Content: fmt.Sprintf(querySystemPromptFormat, strings.Join(availableEntities, ", "))},
		{Role: "user", Content: query},
	}

	content, err := p.client.Complete(ctx, messages, true)
	if err != nil {
		log.Printf("⚠️ [ASSISTANT] Query parse failed: %v", err)
		return unknown
	}

	intent, err := decodeQueryIntent([]byte(stripMarkdownCodeBlock(content)), query)
	if err != nil {
		log.Printf("⚠️ [ASSISTANT] Query intent decode failed: %v, content: %s", err, content)
		return unknown
	}

	return intent
}

func decodeQueryIntent(raw []byte, originalQuery string) (QueryIntent, error) {
	var intent QueryIntent
	if err := json.Unmarshal(raw, &intent); err != nil {
		return QueryIntent{}, err
	}

	if intent.Type == "" {
		intent.Type = "search"
	}
	if intent.Entity == "" {
		intent.Entity = ActionUnknown
	}
	if intent.Query == "" {
		intent.Query = originalQuery
	}
	intent.Confidence = clampConfidence(intent.Confidence)

	return intent, nil
}
