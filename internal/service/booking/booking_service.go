package booking

import (
	"context"
	"strconv"
	"time"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BookingUseCase interface {
	GetBooking(ctx context.Context, userID int64) (*domain.Booking, error)
	PostBooking(ctx context.Context, userID, roomID int64) (*domain.Booking, error)
	ChangeBooking(ctx context.Context, userID, bookingID, roomID int64) (*domain.Booking, error)
}

type EligibilityChecker interface {
	Check(ctx context.Context, userID int64) error
}

type CapacityChecker interface {
	Check(ctx context.Context, roomID int64) (*domain.Room, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings    repository.BookingRepository
	eligibility EligibilityChecker
	capacity    CapacityChecker
	producer    Producer
	eventsTopic string

	recheckEligibilityOnChange bool
	now                        func() time.Time
}

type BookingServiceOption func(*BookingService)

// WithEligibilityRecheck makes ChangeBooking run the eligibility check again
// after the ownership check.
func WithEligibilityRecheck(enabled bool) BookingServiceOption {
	return func(s *BookingService) {
		s.recheckEligibilityOnChange = enabled
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	eligibility EligibilityChecker,
	capacity CapacityChecker,
	producer Producer,
	eventsTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:    bookings,
		eligibility: eligibility,
		capacity:    capacity,
		producer:    producer,
		eventsTopic: eventsTopic,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) GetBooking(ctx context.Context, userID int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, domain.NotFound("booking not found")
	}
	return booking, nil
}

// PostBooking checks eligibility, then vacancy, then writes. Check failures
// are returned unchanged.
func (s *BookingService) PostBooking(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	if err := s.eligibility.Check(ctx, userID); err != nil {
		return nil, err
	}

	room, err := s.capacity.Check(ctx, roomID)
	if err != nil {
		return nil, err
	}

	created, err := s.bookings.Create(ctx, userID, roomID)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, kafka.BookingEvent{
		Type:      kafka.EventBookingCreated,
		BookingID: created.ID,
		UserID:    userID,
		RoomID:    roomID,
		HotelID:   room.HotelID,
	})
	return created, nil
}

// ChangeBooking moves the user's booking to roomID. The user must own
// bookingID; eligibility is only re-checked when enabled by option.
func (s *BookingService) ChangeBooking(ctx context.Context, userID, bookingID, roomID int64) (*domain.Booking, error) {
	current, err := s.bookings.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, domain.Unauthorized("user has no booking")
	}
	if current.ID != bookingID {
		return nil, domain.Unauthorized("booking belongs to another user")
	}

	if s.recheckEligibilityOnChange {
		if err := s.eligibility.Check(ctx, userID); err != nil {
			return nil, err
		}
	}

	room, err := s.capacity.Check(ctx, roomID)
	if err != nil {
		return nil, err
	}

	updated, err := s.bookings.UpdateRoom(ctx, bookingID, roomID)
	if err != nil {
		return nil, err
	}

	event := kafka.BookingEvent{
		Type:           kafka.EventBookingChanged,
		BookingID:      updated.ID,
		UserID:         userID,
		RoomID:         roomID,
		HotelID:        room.HotelID,
		PreviousRoomID: current.RoomID,
	}
	if current.Room != nil {
		event.PreviousHotelID = current.Room.HotelID
	}
	s.publish(ctx, event)
	return updated, nil
}

// publish is best effort: the booking is already stored, so a broker failure
// is logged and never returned to the caller.
func (s *BookingService) publish(ctx context.Context, event kafka.BookingEvent) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event.ID = uuid.NewString()
	event.OccurredAt = s.now().UTC()

	key := strconv.FormatInt(event.BookingID, 10)
	if err := s.producer.Publish(ctx, s.eventsTopic, key, event); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event":      event.Type,
			"booking_id": event.BookingID,
		}).Warn("failed to publish booking event")
	}
}

var _ BookingUseCase = (*BookingService)(nil)
