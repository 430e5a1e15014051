package health

import (
	"context"
	"database/sql"
	"time"
)

const pingTimeout = 2 * time.Second

// Service reports process liveness plus which task store and priority
// classifier the server is running with.
type Service struct {
	DB        *sql.DB
	Suggester string
}

// NewService constructs a health service with no database attached.
func NewService() *Service {
	return &Service{}
}

// Status returns the payload served by GET /health.
func (s *Service) Status() map[string]any {
	out := map[string]any{
		"ok":    true,
		"store": "memory",
	}
	if s.Suggester != "" {
		out["suggester"] = s.Suggester
	}
	if s.DB != nil {
		out["store"] = "postgres"
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()
		out["database_ok"] = s.DB.PingContext(ctx) == nil
	}
	return out
}
