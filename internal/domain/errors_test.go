package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "not found", err: NotFound("room"), want: KindNotFound},
		{name: "forbidden", err: Forbidden("room is full"), want: KindForbidden},
		{name: "unauthorized", err: Unauthorized("booking"), want: KindUnauthorized},
		{name: "wrapped forbidden", err: fmt.Errorf("post booking: %w", Forbidden("ticket")), want: KindForbidden},
		{name: "storage", err: Storage("insert", errors.New("conn reset")), want: KindStorage},
		{name: "plain error", err: errors.New("boom"), want: KindStorage},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestError_IsMatchesKind(t *testing.T) {
	err := fmt.Errorf("check: %w", NotFound("enrollment"))

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, errors.Is(err, ErrForbidden))
	assert.False(t, errors.Is(errors.New("not found"), ErrNotFound))
}

func TestError_UnwrapsCause(t *testing.T) {
	cause := errors.New("unique violation")
	err := Storage("create booking", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, "storage: create booking: unique violation", err.Error())
}

func TestTicket_AllowsHotel(t *testing.T) {
	paidHotel := TicketType{IncludesHotel: true}

	testCases := []struct {
		name   string
		ticket Ticket
		want   bool
	}{
		{name: "paid with hotel", ticket: Ticket{Status: TicketStatusPaid, TicketType: paidHotel}, want: true},
		{name: "reserved", ticket: Ticket{Status: TicketStatusReserved, TicketType: paidHotel}, want: false},
		{name: "remote", ticket: Ticket{Status: TicketStatusPaid, TicketType: TicketType{IsRemote: true, IncludesHotel: true}}, want: false},
		{name: "no hotel", ticket: Ticket{Status: TicketStatusPaid, TicketType: TicketType{}}, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.ticket.AllowsHotel())
		})
	}
}

func TestRoom_HasVacancy(t *testing.T) {
	room := Room{Capacity: 3}

	assert.True(t, room.HasVacancy(2))
	assert.False(t, room.HasVacancy(3))
	assert.False(t, room.HasVacancy(4))
}
