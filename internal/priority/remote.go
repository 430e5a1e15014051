package priority

import (
	"context"
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"todo-backend/internal/llm"
	"todo-backend/internal/shared/metrics"
	"todo-backend/internal/shared/telemetry"
)

// Fallback reasons for the remote path. Fallback results are cached like
// successes, so a transient failure is sticky for the process lifetime.
const (
	reasonNotConfigured = "service not configured"
	reasonUnavailable   = "service unavailable, default priority used"
	reasonAnalysisDone  = "AI analysis completed"
)

const defaultRemoteTimeout = 10 * time.Second

// Remote delegates classification to an external LLM and absorbs every
// failure into a medium fallback; callers never observe an error.
type Remote struct {
	client  llm.Client
	timeout time.Duration
	flight  singleflight.Group
}

// NewRemote constructs the remote suggester. A non-positive timeout selects
// the default, which OPENAI_TIMEOUT_SECONDS can override.
func NewRemote(client llm.Client, timeout time.Duration) *Remote {
	if timeout <= 0 {
		timeout = remoteTimeoutFromEnv()
	}
	return &Remote{
		client:  client,
		timeout: timeout,
	}
}

func remoteTimeoutFromEnv() time.Duration {
	if raw := strings.TrimSpace(os.Getenv("OPENAI_TIMEOUT_SECONDS")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			return time.Duration(parsed) * time.Second
		}
	}
	return defaultRemoteTimeout
}

// Suggest performs one bounded remote attempt, no retries. Concurrent calls
// for the same normalized input collapse into a single in-flight request.
func (r *Remote) Suggest(ctx context.Context, title, description string) Suggestion {
	key := CacheKey(title, description)
	result, _, _ := r.flight.Do(key, func() (any, error) {
		return r.suggestOnce(ctx, title, description), nil
	})
	return result.(Suggestion)
}

func (r *Remote) suggestOnce(ctx context.Context, title, description string) Suggestion {
	if r.client == nil {
		return Suggestion{Priority: Medium, Reason: reasonNotConfigured}
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	reply, err := r.client.SuggestPriority(callCtx, llm.SuggestInput{
		Title:       title,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return Suggestion{Priority: Medium, Reason: reasonNotConfigured}
		}
		metrics.IncSuggestionRemoteFallback()
		telemetry.Warn("priority.remote_fallback", map[string]any{
			"error": err.Error(),
		})
		return Suggestion{Priority: Medium, Reason: reasonUnavailable}
	}

	return parseReply(reply)
}

// parseReply extracts the two-line PRIORITY/REASON reply format. The first
// line of each kind wins; an unrecognized level falls back to medium and a
// missing reason gets the analysis-completed placeholder. Never errors.
func parseReply(reply string) Suggestion {
	level := Medium
	reason := ""
	sawPriority := false
	sawReason := false

	for _, line := range strings.Split(reply, "\n") {
		switch {
		case strings.HasPrefix(line, "PRIORITY:"):
			if sawPriority {
				continue
			}
			sawPriority = true
			value := strings.TrimPrefix(line, "PRIORITY:")
			if i := strings.Index(value, ":"); i >= 0 {
				value = value[:i]
			}
			if parsed, ok := ParseLevel(value); ok {
				level = parsed
			}
		case strings.HasPrefix(line, "REASON:"):
			if sawReason {
				continue
			}
			sawReason = true
			reason = strings.TrimSpace(strings.TrimPrefix(line, "REASON:"))
		}
	}

	if reason == "" {
		reason = reasonAnalysisDone
	}
	return Suggestion{Priority: level, Reason: reason}
}

var _ Suggester = (*Remote)(nil)
