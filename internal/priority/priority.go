package priority

import (
	"context"
	"strings"
	"time"

	"todo-backend/internal/shared/metrics"
)

// Level is a task urgency bucket. Levels are ordered low < medium < high for
// reporting only; no arithmetic is attached to them.
type Level string

const (
	Low    Level = "low"
	Medium Level = "medium"
	High   Level = "high"
)

// ParseLevel maps raw text onto a Level, case-insensitively.
func ParseLevel(raw string) (Level, bool) {
	switch Level(strings.ToLower(strings.TrimSpace(raw))) {
	case Low:
		return Low, true
	case Medium:
		return Medium, true
	case High:
		return High, true
	}
	return "", false
}

// String returns the wire value of the level.
func (l Level) String() string { return string(l) }

// Valid reports whether the level is one of the three known buckets.
func (l Level) Valid() bool {
	switch l {
	case Low, Medium, High:
		return true
	}
	return false
}

// Suggestion is the immutable result of classifying one title/description pair.
type Suggestion struct {
	Priority Level
	Reason   string
}

// Suggester classifies a task's urgency from its free text. Implementations
// are total: they always return a usable Suggestion, never an error.
type Suggester interface {
	Suggest(ctx context.Context, title, description string) Suggestion
}

// Service fronts a Suggester with the suggestion cache. The underlying
// suggester is chosen once at construction and never re-evaluated per call;
// both the heuristic and remote paths cache through the same Service, so
// identical input behaves identically whichever one is configured.
type Service struct {
	suggester Suggester
	cache     *Cache
}

// NewService constructs the facade around the given suggester with a fresh cache.
func NewService(suggester Suggester) *Service {
	return &Service{
		suggester: suggester,
		cache:     NewCache(),
	}
}

// Suggest returns the suggestion for the given title/description, serving
// repeated inputs from cache without consulting the suggester again.
func (s *Service) Suggest(ctx context.Context, title, description string) Suggestion {
	start := time.Now()
	metrics.IncSuggestionRequest()
	defer func() {
		metrics.ObserveSuggestionDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	}()

	key := CacheKey(title, description)
	if cached, ok := s.cache.Get(key); ok {
		metrics.IncSuggestionCacheHit()
		return cached
	}

	suggestion := s.suggester.Suggest(ctx, title, description)
	s.cache.Put(key, suggestion)
	return suggestion
}

// Reanalyze refreshes the suggestion for already-stored task text. It is the
// same contract as Suggest; repeated input still serves from cache.
func (s *Service) Reanalyze(ctx context.Context, title, description string) Suggestion {
	return s.Suggest(ctx, title, description)
}
