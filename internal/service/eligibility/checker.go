// Package eligibility decides whether a user may book a hotel room at all,
// based on their enrollment and ticket.
package eligibility

import (
	"context"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/Domenick1991/hotelbooking/internal/repository"
)

type Checker struct {
	enrollments repository.EnrollmentRepository
	tickets     repository.TicketRepository
}

func NewChecker(enrollments repository.EnrollmentRepository, tickets repository.TicketRepository) *Checker {
	return &Checker{enrollments: enrollments, tickets: tickets}
}

// Check fails with a not-found error when the user has no enrollment or no
// ticket, and with a forbidden error when the ticket is unpaid, remote or
// does not include the hotel stay.
func (c *Checker) Check(ctx context.Context, userID int64) error {
	enrollment, err := c.enrollments.FindByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if enrollment == nil {
		return domain.NotFound("enrollment not found")
	}

	ticket, err := c.tickets.FindByEnrollmentID(ctx, enrollment.ID)
	if err != nil {
		return err
	}
	if ticket == nil {
		return domain.NotFound("ticket not found")
	}
	if !ticket.AllowsHotel() {
		return domain.Forbidden("ticket does not include a hotel stay")
	}
	return nil
}
