package contracts

import (
	"context"

	"booking-service/internal/app/models"
)

type BookingEventPublisher interface {
	Publish(ctx context.Context, event models.BookingEvent) error
	Close() error
}
