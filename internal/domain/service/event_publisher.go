package service

import (
	"context"
	"time"
)

// ReviewEvent describes a review lifecycle change for downstream consumers
type ReviewEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	EventType  string    `json:"event_type"`
	ReviewID   string    `json:"review_id"`
	MemberID   string    `json:"member_id"`
	StoreID    string    `json:"store_id"`
	Season     string    `json:"season"`
	Rating     int       `json:"rating"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReviewEvent publishes a review event after the change is committed
	PublishReviewEvent(ctx context.Context, event *ReviewEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
