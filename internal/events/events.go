// Package events publishes record lifecycle events to an AMQP broker so
// that companion apps can resync their local copies.
//
// Publishing is optional: when no broker is configured, the Default
// publisher stays nil and callers skip it.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
	"github.com/scastellanosl/coinary-backend/internal/models"
	"github.com/shopspring/decimal"
)

// Default is the publisher used by the API handlers. It is nil unless
// AMQP publishing was configured at startup.
var Default *Publisher

const (
	exchangeName = "coinary"
	queueName    = "record-events"

	publishTimeout = 5 * time.Second
)

// Actions for RecordEvent
const (
	ActionCreated = "created"
	ActionDeleted = "deleted"
)

// RecordEvent is the message published for every record change.
type RecordEvent struct {
	Action   string            `json:"action"`
	ID       uuid.UUID         `json:"id"`
	LedgerID uuid.UUID         `json:"ledgerId"`
	Kind     models.RecordKind `json:"kind"`
	Amount   decimal.Decimal   `json:"amount"`
	Category string            `json:"category"`
	Date     time.Time         `json:"date"`
	SentAt   time.Time         `json:"sentAt"`
}

// NewRecordEvent builds the event for a record and action.
func NewRecordEvent(action string, record models.Record) RecordEvent {
	return RecordEvent{
		Action:   action,
		ID:       record.ID,
		LedgerID: record.LedgerID,
		Kind:     record.Kind,
		Amount:   record.Amount,
		Category: record.Category,
		Date:     record.Date,
		SentAt:   time.Now().In(time.UTC),
	}
}

type Publisher struct {
	conn    *amqp091.Connection
	channel *amqp091.Channel
}

// NewPublisher connects to the broker and declares the exchange and
// queue used for record events.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	p := &Publisher{
		conn:    conn,
		channel: channel,
	}

	if err := p.setup(); err != nil {
		p.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return p, nil
}

func (p *Publisher) setup() error {
	err := p.channel.ExchangeDeclare(
		exchangeName,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = p.channel.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = p.channel.QueueBind(queueName, queueName, exchangeName, false, nil)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// PublishRecord publishes the event for a record change.
func (p *Publisher) PublishRecord(ctx context.Context, action string, record models.Record) error {
	event := NewRecordEvent(action, record)

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		exchangeName,
		queueName, // routing key, same as queue name for a direct exchange
		false,     // mandatory
		false,     // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.SentAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	log.Debug().
		Str("action", action).
		Stringer("record", record.ID).
		Msg("published record event")

	return nil
}

// Close shuts down the channel and connection.
func (p *Publisher) Close() {
	if p.channel != nil {
		p.channel.Close()
	}

	if p.conn != nil {
		p.conn.Close()
	}
}
