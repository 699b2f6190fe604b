package notify

import (
	"context"

	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/sirupsen/logrus"
	kafkaGo "github.com/segmentio/kafka-go"
)

type HotelInvalidator interface {
	InvalidateHotels(ctx context.Context, hotelIDs ...int64) error
}

type UserNotifier interface {
	Notify(ctx context.Context, event kafka.BookingEvent) error
}

// Processor handles booking events read by the worker.
type Processor struct {
	cache    HotelInvalidator
	notifier UserNotifier
}

func NewProcessor(cache HotelInvalidator, notifier UserNotifier) *Processor {
	return &Processor{cache: cache, notifier: notifier}
}

// Handle drops the cached detail of every hotel whose occupancy changed and
// notifies the user. Malformed messages are logged and skipped so one bad
// payload cannot stall the partition.
func (p *Processor) Handle(ctx context.Context, msg kafkaGo.Message) error {
	event, err := kafka.DecodeBookingEvent(msg)
	if err != nil {
		logrus.WithError(err).Error("skipping booking event")
		return nil
	}

	if p.cache != nil {
		if err := p.cache.InvalidateHotels(ctx, event.HotelIDs()...); err != nil {
			logrus.WithError(err).WithField("event_id", event.ID).Warn("hotel cache invalidation failed")
		}
	}
	return p.notifier.Notify(ctx, event)
}
