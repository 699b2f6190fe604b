package notify

import (
	"context"

	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/sirupsen/logrus"
)

// Notifier tells a user about a change to their booking. The current
// implementation only writes a log line per notification.
type Notifier struct {
	log logrus.FieldLogger
}

func NewNotifier(log logrus.FieldLogger) *Notifier {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Notifier{log: log}
}

func (n *Notifier) Notify(ctx context.Context, event kafka.BookingEvent) error {
	fields := logrus.Fields{
		"user_id":    event.UserID,
		"booking_id": event.BookingID,
		"room_id":    event.RoomID,
		"hotel_id":   event.HotelID,
	}
	switch event.Type {
	case kafka.EventBookingCreated:
		n.log.WithFields(fields).Info("notify user: room booked")
	case kafka.EventBookingChanged:
		fields["previous_room_id"] = event.PreviousRoomID
		n.log.WithFields(fields).Info("notify user: booking moved to another room")
	default:
		n.log.WithFields(fields).WithField("type", event.Type).Debug("no notification for event type")
	}
	return nil
}
