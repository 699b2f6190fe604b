package kafka

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	EventBookingCreated = "booking_created"
	EventBookingChanged = "booking_changed"
)

// BookingEvent is published after a booking is created or moved to another room.
// Previous* fields are only set for booking_changed.
type BookingEvent struct {
	ID              string    `json:"id"`
	Type            string    `json:"type"`
	BookingID       int64     `json:"booking_id"`
	UserID          int64     `json:"user_id"`
	RoomID          int64     `json:"room_id"`
	HotelID         int64     `json:"hotel_id"`
	PreviousRoomID  int64     `json:"previous_room_id,omitempty"`
	PreviousHotelID int64     `json:"previous_hotel_id,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// HotelIDs returns the distinct hotels whose occupancy the event changed.
func (e BookingEvent) HotelIDs() []int64 {
	ids := []int64{e.HotelID}
	if e.PreviousHotelID != 0 && e.PreviousHotelID != e.HotelID {
		ids = append(ids, e.PreviousHotelID)
	}
	return ids
}

func DecodeBookingEvent(msg kafka.Message) (BookingEvent, error) {
	var event BookingEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		return BookingEvent{}, fmt.Errorf("decode booking event at offset %d: %w", msg.Offset, err)
	}
	return event, nil
}
