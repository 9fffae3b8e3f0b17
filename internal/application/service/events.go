package service

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventTypePortfolioViewed  = "portfolio.viewed"
	EventTypePortfolioUpdated = "portfolio.updated"
)

type ViewEventPayload struct {
	EventID    uuid.UUID `json:"event_id"`
	EventType  string    `json:"event_type"`
	Path       string    `json:"path"`
	UserAgent  string    `json:"user_agent"`
	OccurredAt time.Time `json:"occurred_at"`
}

type PortfolioEventPayload struct {
	EventID    uuid.UUID `json:"event_id"`
	EventType  string    `json:"event_type"`
	Keys       []string  `json:"keys"`
	OccurredAt time.Time `json:"occurred_at"`
}

type EventPublisher interface {
	PublishViewEvent(ctx context.Context, payload ViewEventPayload) error
	PublishPortfolioEvent(ctx context.Context, payload PortfolioEventPayload) error
}

// ViewCounter accumulates page views reported by the worker.
type ViewCounter interface {
	Increment(ctx context.Context) (int64, error)
	Count(ctx context.Context) (int64, error)
}
