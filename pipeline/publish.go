package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
)

// DefaultSubject is the subject artifact notifications are published on.
const DefaultSubject = "rulings.converted"

// Notification announces a written artifact.
type Notification struct {
	RunID      string `json:"run_id"`
	Document   string `json:"document"`
	Identifier string `json:"identifier,omitempty"`
	Status     string `json:"status"`
	Output     string `json:"output"`
}

// MsgID returns the de-duplication id of the notification.
func (n Notification) MsgID() string {
	return n.RunID + "/" + n.Document
}

// Publisher delivers artifact notifications.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
	Close() error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Notification) error { return nil }
func (nopPublisher) Close() error                                { return nil }

// NopPublisher returns a Publisher that discards every notification.
func NopPublisher() Publisher {
	return nopPublisher{}
}

// NATSPublisher publishes notifications to a NATS subject.
type NATSPublisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// NewNATSPublisher connects to url and returns a publisher for subject.
func NewNATSPublisher(url, subject string, logger *slog.Logger) (*NATSPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if subject == "" {
		subject = DefaultSubject
	}

	conn, err := nats.Connect(url,
		nats.Name("rulingpipe"),
		nats.MaxReconnects(5),
		nats.ReconnectWait(time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", "error", err)
			}
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	logger.Info("Publishing artifact notifications", "url", conn.ConnectedUrl(), "subject", subject)
	return &NATSPublisher{conn: conn, subject: subject, logger: logger}, nil
}

// Publish sends n. NATS publishing does not observe ctx, so it is checked first.
func (p *NATSPublisher) Publish(ctx context.Context, n Notification) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context cancelled before publish: %w", err)
	}
	msg, err := newNotificationMsg(p.subject, n)
	if err != nil {
		return err
	}
	if err := p.conn.PublishMsg(msg); err != nil {
		return fmt.Errorf("publish %s: %w", n.Document, err)
	}
	return nil
}

// Close flushes pending notifications and closes the connection.
func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}

func newNotificationMsg(subject string, n Notification) (*nats.Msg, error) {
	data, err := json.Marshal(n)
	if err != nil {
		return nil, fmt.Errorf("marshal notification: %w", err)
	}
	msg := nats.NewMsg(subject)
	msg.Header.Set(nats.MsgIdHdr, n.MsgID())
	msg.Data = data
	return msg, nil
}
