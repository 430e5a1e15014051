package llm

import (
	"context"
	"errors"
)

// Client abstracts LLM providers for task priority suggestions.
type Client interface {
	SuggestPriority(ctx context.Context, input SuggestInput) (string, error)
}

// SuggestInput captures the task text sent for classification.
type SuggestInput struct {
	Title       string
	Description string
}

// ErrNotConfigured is returned when no provider credential is wired.
var ErrNotConfigured = errors.New("LLM not configured")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// SuggestPriority returns ErrNotConfigured.
func (PlaceholderClient) SuggestPriority(ctx context.Context, input SuggestInput) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotConfigured
}
