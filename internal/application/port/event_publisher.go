package port

import (
	"context"
	"strings"
)

// EventPublisher publishes events to a message broker.
type EventPublisher interface {
	// PublishEvent publishes an event to the specified subject
	PublishEvent(ctx context.Context, subject string, event interface{}) error

	// Close closes the connection to the message broker
	Close() error
}

// AlertSubject builds "{prefix}.{severity}".
func AlertSubject(prefix, severity string) string {
	prefix = strings.TrimSuffix(prefix, ".")
	if prefix == "" {
		return severity
	}
	return prefix + "." + severity
}
