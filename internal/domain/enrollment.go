package domain

import "time"

type TicketStatus string

const (
	TicketStatusReserved TicketStatus = "RESERVED"
	TicketStatusPaid     TicketStatus = "PAID"
)

type Enrollment struct {
	ID        int64
	UserID    int64
	Name      string
	CPF       string
	Birthday  time.Time
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type TicketType struct {
	ID            int64
	Name          string
	Price         int
	IsRemote      bool
	IncludesHotel bool
}

type Ticket struct {
	ID           int64
	EnrollmentID int64
	Status       TicketStatus
	TicketType   TicketType
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AllowsHotel reports whether the ticket entitles its holder to a hotel room:
// it must be paid, for in-person attendance and include the hotel stay.
func (t Ticket) AllowsHotel() bool {
	return t.Status != TicketStatusReserved && !t.TicketType.IsRemote && t.TicketType.IncludesHotel
}
