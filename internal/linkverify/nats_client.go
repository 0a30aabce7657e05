package linkverify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"git.home.luguber.info/inful/coffeedocs/internal/foundation/errors"
	"git.home.luguber.info/inful/coffeedocs/internal/logfields"
)

const publishTimeout = 5 * time.Second

// Publisher delivers broken link events.
type Publisher interface {
	PublishBrokenLink(ctx context.Context, event *BrokenLinkEvent) error
	Close() error
}

// NATSClient publishes broken link events on a NATS subject.
type NATSClient struct {
	conn    *nats.Conn
	subject string
}

// NewNATSClient connects to the server at url.
func NewNATSClient(url, subject string) (*NATSClient, error) {
	conn, err := nats.Connect(url,
		nats.Name("coffeedocs-linkverify"),
		nats.Timeout(publishTimeout),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryNetwork, "failed to connect to NATS").
			WithContext("url", url).
			Build()
	}
	slog.Info("NATS client initialized for link verification", logfields.URL(url), slog.String("subject", subject))
	return &NATSClient{conn: conn, subject: subject}, nil
}

// PublishBrokenLink publishes a broken link event and waits for the server to acknowledge the flush.
func (c *NATSClient) PublishBrokenLink(ctx context.Context, event *BrokenLinkEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal event").Build()
	}
	if err := c.conn.Publish(c.subject, data); err != nil {
		return errors.WrapError(err, errors.CategoryNetwork, "failed to publish event").
			WithContext("subject", c.subject).
			Build()
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := c.conn.FlushWithContext(ctx); err != nil {
		return errors.WrapError(err, errors.CategoryNetwork, "failed to flush event").
			WithContext("subject", c.subject).
			Build()
	}
	slog.Debug("Published broken link event", logfields.URL(event.URL), logfields.Path(event.Source))
	return nil
}

// Close drains and closes the connection.
func (c *NATSClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Drain()
}
