// Package events publishes order lifecycle notifications over NATS. The
// storefront works fine without a broker; publishing is strictly fire and
// forget.
package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/Ibrakam/PartyLand/internal/domain"
)

const DefaultSubject = "orders.accepted"

// orderAccepted is the wire shape of an accepted-order event.
type orderAccepted struct {
	OrderID        int64  `json:"order_id"`
	TotalUZS       int64  `json:"total_uzs"`
	FormattedTotal string `json:"formatted_total"`
	Items          int    `json:"items"`
}

// Publisher sends accepted-order events to a NATS subject.
type Publisher struct {
	conn    *nats.Conn
	subject string
	logger  *slog.Logger
}

// Connect dials NATS and returns a Publisher. An empty URL means events are
// disabled and nil is returned without error.
func Connect(url, subject string, logger *slog.Logger) (*Publisher, error) {
	if url == "" {
		return nil, nil
	}
	if subject == "" {
		subject = DefaultSubject
	}

	conn, err := nats.Connect(url,
		nats.Name("partyland-storefront"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("connected to nats", slog.String("url", url), slog.String("subject", subject))
	return &Publisher{conn: conn, subject: subject, logger: logger}, nil
}

// OrderAccepted announces a successful checkout. Failures are logged and
// swallowed so the customer's receipt is never held hostage by the broker.
func (p *Publisher) OrderAccepted(ctx context.Context, receipt *domain.CheckoutReceipt) {
	event := orderAccepted{
		OrderID:        receipt.OrderID,
		TotalUZS:       receipt.SnapshotTotal,
		FormattedTotal: receipt.FormattedTotal,
		Items:          len(receipt.SnapshotItems),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to encode order event", slog.Any("error", err))
		return
	}

	if err := p.conn.Publish(p.subject, payload); err != nil {
		p.logger.WarnContext(ctx, "failed to publish order event",
			slog.Int64("order_id", receipt.OrderID),
			slog.Any("error", err))
	}
}

// Close drains the connection.
func (p *Publisher) Close() {
	if p == nil || p.conn == nil {
		return
	}
	_ = p.conn.Drain()
}
