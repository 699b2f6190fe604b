package domain

import "time"

type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Room struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	HotelID   int64     `json:"hotelId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RoomOccupancy is a room together with the number of bookings currently in it.
type RoomOccupancy struct {
	Room
	Booked int `json:"booked"`
}

// HasVacancy reports whether one more booking fits into the room.
func (r Room) HasVacancy(booked int) bool {
	return booked < r.Capacity
}

type HotelWithRooms struct {
	Hotel
	Rooms []RoomOccupancy `json:"Rooms"`
}

// Booking is one user's occupancy of one room. Room is only populated on reads.
type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	RoomID    int64     `json:"-"`
	Room      *Room     `json:"Room,omitempty"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
