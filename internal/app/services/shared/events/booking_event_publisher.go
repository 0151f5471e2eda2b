package events

import (
	"context"
	"errors"
	"time"

	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// confirmation is the broker's answer to one published message.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

type amqpChannel interface {
	PublishDeferred(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error)
	Close() error
}

// confirmChannel is an amqp channel in confirm mode.
type confirmChannel struct {
	ch *amqp.Channel
}

func (c confirmChannel) PublishDeferred(ctx context.Context, key string, msg amqp.Publishing) (confirmation, error) {
	deferred, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, "", key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if deferred == nil {
		return nil, errors.New("channel is not in confirm mode")
	}
	return deferred, nil
}

func (c confirmChannel) Close() error {
	return c.ch.Close()
}

type publisher struct {
	ch    amqpChannel
	queue string
	log   *zap.Logger
}

// NewBookingEventPublisher declares queue as a durable queue and publishes
// booking events to it with publisher confirms. A nil connection yields a
// publisher that drops every event.
func NewBookingEventPublisher(conn *amqp.Connection, queue string, log *zap.Logger) (contracts.BookingEventPublisher, error) {
	if conn == nil {
		return NewNoopPublisher(log), nil
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrOpenMessagingChannel(err)
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		ch.Close()
		return nil, exceptions.ErrOpenMessagingChannel(err)
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, exceptions.ErrOpenMessagingChannel(err)
	}

	return &publisher{
		ch:    confirmChannel{ch: ch},
		queue: queue,
		log:   log,
	}, nil
}

// Publish fills in a missing id and timestamp, then waits for the broker
// to confirm this message. A confirm that arrives after ctx is done is
// dropped with the message's own deferred confirmation.
func (p *publisher) Publish(ctx context.Context, event models.BookingEvent) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    event.ID,
		Type:         event.Type,
		Timestamp:    event.OccurredAt,
	}

	confirm, err := p.ch.PublishDeferred(ctx, p.queue, msg)
	if err != nil {
		return exceptions.ErrPublishBookingEvent(err, event.Type)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrPublishBookingEvent(err, event.Type)
	}
	if !acked {
		return exceptions.ErrPublishBookingEvent(errors.New("message not confirmed"), event.Type)
	}

	p.log.Debug("booking event published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.Int(constvars.LoggingSlotIDKey, event.SlotID),
	)
	return nil
}

func (p *publisher) Close() error {
	return p.ch.Close()
}

type noopPublisher struct {
	log *zap.Logger
}

func NewNoopPublisher(log *zap.Logger) contracts.BookingEventPublisher {
	return &noopPublisher{log: log}
}

func (p *noopPublisher) Publish(ctx context.Context, event models.BookingEvent) error {
	p.log.Debug("booking event dropped, publishing disabled",
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
