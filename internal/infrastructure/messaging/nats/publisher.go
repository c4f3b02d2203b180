package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/autoguardian/vehicle-safety/pkg/logger"
	"github.com/nats-io/nats.go"
)

const (
	defaultStreamName   = "VEHICLE_ALERTS"
	maxPendingAsync     = 256
	drainPendingTimeout = 5 * time.Second
)

// PublisherConfig configures the JetStream alert publisher.
type PublisherConfig struct {
	URL           string
	SubjectPrefix string
	// StreamName defaults to VEHICLE_ALERTS.
	StreamName string
	// OnAsyncError is called when the server rejects an async publish.
	OnAsyncError func(subject string, err error)
}

// NATSPublisher implements port.EventPublisher for NATS JetStream
type NATSPublisher struct {
	nc     *nats.Conn
	js     nats.JetStreamContext
	logger *logger.Logger
}

// NewNATSPublisher connects, then makes sure a stream captures prefix.>.
func NewNATSPublisher(cfg PublisherConfig, log *logger.Logger) (*NATSPublisher, error) {
	if cfg.SubjectPrefix == "" {
		return nil, errors.New("nats subject prefix is required")
	}

	nc, err := nats.Connect(cfg.URL,
		nats.Name("vehicle-safety"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(10),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				log.Warn("NATS disconnected", "error", err.Error())
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info("NATS reconnected", "url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	js, err := nc.JetStream(
		nats.PublishAsyncMaxPending(maxPendingAsync),
		nats.PublishAsyncErrHandler(func(_ nats.JetStream, msg *nats.Msg, err error) {
			log.Warn("NATS async publish rejected", "subject", msg.Subject, "error", err.Error())
			if cfg.OnAsyncError != nil {
				cfg.OnAsyncError(msg.Subject, err)
			}
		}),
	)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("failed to get JetStream context: %w", err)
	}

	streamName := cfg.StreamName
	if streamName == "" {
		streamName = defaultStreamName
	}
	if err := ensureStream(js, streamName, cfg.SubjectPrefix+".>"); err != nil {
		nc.Close()
		return nil, err
	}

	log.Info("Connected to NATS", "url", cfg.URL, "stream", streamName, "prefix", cfg.SubjectPrefix)

	return &NATSPublisher{
		nc:     nc,
		js:     js,
		logger: log,
	}, nil
}

func ensureStream(js nats.JetStreamContext, name, subject string) error {
	_, err := js.StreamInfo(name)
	if err == nil {
		return nil
	}
	if !errors.Is(err, nats.ErrStreamNotFound) {
		return fmt.Errorf("failed to look up stream %s: %w", name, err)
	}

	_, err = js.AddStream(&nats.StreamConfig{
		Name:     name,
		Subjects: []string{subject},
		Storage:  nats.FileStorage,
		MaxAge:   24 * time.Hour,
	})
	if err != nil {
		return fmt.Errorf("failed to create stream %s: %w", name, err)
	}
	return nil
}

// PublishEvent publishes an event to NATS (async)
func (p *NATSPublisher) PublishEvent(ctx context.Context, subject string, event interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	// fire-and-forget; rejections surface through OnAsyncError
	if _, err := p.js.PublishAsync(subject, data); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	p.logger.Debug("Event published",
		"subject", subject,
		"size", len(data),
	)

	return nil
}

// Close waits briefly for pending acks, then closes the connection.
func (p *NATSPublisher) Close() error {
	if p.nc == nil {
		return nil
	}

	select {
	case <-p.js.PublishAsyncComplete():
	case <-time.After(drainPendingTimeout):
		p.logger.Warn("NATS close timed out waiting for pending acks", "pending", p.js.PublishAsyncPending())
	}

	p.logger.Info("Closing NATS connection")
	p.nc.Close()
	return nil
}
