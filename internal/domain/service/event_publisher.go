package service

import (
	"context"
)

// Task event kinds consumed by the worker.
const (
	TaskMailStoreWelcome      = "mail.store_welcome"
	TaskMailDNSFailed         = "mail.dns_failed"
	TaskMailStoreTeardown     = "mail.store_teardown"
	TaskMailOrderConfirmation = "mail.order_confirmation"
	TaskDNSTeardown           = "dns.teardown"
)

// TaskEvent represents a unit of asynchronous work dispatched to the worker:
// an email send or a DNS teardown. Events are fire-and-forget from the
// publisher's side; delivery retries belong to the queue.
type TaskEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing.
	Kind      string `json:"kind"`
	Email     string `json:"email,omitempty"`      // Recipient, for mail kinds.
	StoreID   string `json:"store_id,omitempty"`
	StoreName string `json:"store_name,omitempty"`
	StoreSlug string `json:"store_slug,omitempty"`
	DomainName string `json:"domain_name,omitempty"`
	OrderSN   string `json:"order_sn,omitempty"`
	Success   bool   `json:"success,omitempty"` // Teardown outcome, for the teardown mail.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishTaskEvent publishes a task event for async processing
	PublishTaskEvent(ctx context.Context, event *TaskEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
