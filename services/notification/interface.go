package notification

import (
	"context"

	"apna/models"
)

// Notifier is told about bookings as they are created. Implementations are
// best effort from the caller's point of view: a returned error is logged,
// never surfaced to the customer.
type Notifier interface {
	BookingCreated(ctx context.Context, booking models.Booking) error
}
