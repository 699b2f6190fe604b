package capacity

import (
	"context"
	"errors"
	"testing"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.RoomOccupancy, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]domain.RoomOccupancy), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountByRoom(ctx context.Context, roomID int64) (int, error) {
	args := m.Called(ctx, roomID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	args := m.Called(ctx, userID, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID, roomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func TestChecker_Check_Occupancy(t *testing.T) {
	ctx := context.Background()
	room := &domain.Room{ID: 7, HotelID: 2, Capacity: 3}

	testCases := []struct {
		name   string
		booked int
		wantOK bool
	}{
		{name: "empty room", booked: 0, wantOK: true},
		{name: "one place left", booked: 2, wantOK: true},
		{name: "exactly at capacity", booked: 3, wantOK: false},
		{name: "over capacity", booked: 4, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rooms := &MockRoomRepository{}
			bookings := &MockBookingRepository{}
			rooms.On("GetByID", ctx, int64(7)).Return(room, nil).Once()
			bookings.On("CountByRoom", ctx, int64(7)).Return(tc.booked, nil).Once()

			got, err := NewChecker(rooms, bookings).Check(ctx, 7)

			if tc.wantOK {
				assert.NoError(t, err)
				assert.Equal(t, room, got)
			} else {
				assert.Nil(t, got)
				assert.ErrorIs(t, err, domain.ErrForbidden)
			}
		})
	}
}

func TestChecker_Check_RoomNotFound(t *testing.T) {
	ctx := context.Background()
	rooms := &MockRoomRepository{}
	bookings := &MockBookingRepository{}
	rooms.On("GetByID", ctx, int64(7)).Return(nil, nil).Once()

	got, err := NewChecker(rooms, bookings).Check(ctx, 7)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	bookings.AssertNotCalled(t, "CountByRoom", mock.Anything, mock.Anything)
}

func TestChecker_Check_CountError(t *testing.T) {
	ctx := context.Background()
	rooms := &MockRoomRepository{}
	bookings := &MockBookingRepository{}
	dbErr := errors.New("timeout")
	rooms.On("GetByID", ctx, int64(7)).Return(&domain.Room{ID: 7, Capacity: 1}, nil).Once()
	bookings.On("CountByRoom", ctx, int64(7)).Return(0, dbErr).Once()

	_, err := NewChecker(rooms, bookings).Check(ctx, 7)

	assert.Equal(t, dbErr, err)
	assert.Equal(t, domain.KindStorage, domain.KindOf(err))
}
