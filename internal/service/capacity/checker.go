// Package capacity checks whether a room can take one more booking.
package capacity

import (
	"context"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/repository"
)

type Checker struct {
	rooms    repository.RoomRepository
	bookings repository.BookingRepository
}

func NewChecker(rooms repository.RoomRepository, bookings repository.BookingRepository) *Checker {
	return &Checker{rooms: rooms, bookings: bookings}
}

// Check returns the room when it exists and holds fewer bookings than its
// capacity. A room with exactly capacity bookings is full.
func (c *Checker) Check(ctx context.Context, roomID int64) (*domain.Room, error) {
	room, err := c.rooms.GetByID(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, domain.NotFound("room not found")
	}

	booked, err := c.bookings.CountByRoom(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !room.HasVacancy(booked) {
		return nil, domain.Forbidden("room has no vacancy")
	}
	return room, nil
}
