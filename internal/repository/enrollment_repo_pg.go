package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EnrollmentRepository interface {
	// FindByUserID returns nil when the user has not enrolled.
	FindByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error)
}

type TicketRepository interface {
	// FindByEnrollmentID returns the ticket with its type, or nil when none was issued.
	FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error)
}

type PGEnrollmentRepository struct {
	db *pgxpool.Pool
}

func NewEnrollmentRepository(db *pgxpool.Pool) EnrollmentRepository {
	return &PGEnrollmentRepository{db: db}
}

func (r *PGEnrollmentRepository) FindByUserID(ctx context.Context, userID int64) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, cpf, birthday, phone, created_at, updated_at
		FROM enrollments WHERE user_id = $1`, userID).
		Scan(&e.ID, &e.UserID, &e.Name, &e.CPF, &e.Birthday, &e.Phone, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get enrollment: %w", err)
	}
	return &e, nil
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

func (r *PGTicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*domain.Ticket, error) {
	var t domain.Ticket
	err := r.db.QueryRow(ctx, `
		SELECT t.id, t.enrollment_id, t.status, t.created_at, t.updated_at,
		       tt.id, tt.name, tt.price, tt.is_remote, tt.includes_hotel
		FROM tickets t
		JOIN ticket_types tt ON tt.id = t.ticket_type_id
		WHERE t.enrollment_id = $1`, enrollmentID).
		Scan(&t.ID, &t.EnrollmentID, &t.Status, &t.CreatedAt, &t.UpdatedAt,
			&t.TicketType.ID, &t.TicketType.Name, &t.TicketType.Price, &t.TicketType.IsRemote, &t.TicketType.IncludesHotel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	return &t, nil
}

var (
	_ EnrollmentRepository = (*PGEnrollmentRepository)(nil)
	_ TicketRepository     = (*PGTicketRepository)(nil)
)
