package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ErrUserHasBooking is the cause of the storage failure returned when a user
// that already owns a booking tries to create another one.
var ErrUserHasBooking = errors.New("user already has a booking")

type BookingRepository interface {
	// GetByUserID returns the user's booking with its room, or nil when the user has none.
	GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error)
	CountByRoom(ctx context.Context, roomID int64) (int, error)
	Create(ctx context.Context, userID, roomID int64) (*domain.Booking, error)
	UpdateRoom(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error)
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Booking, error) {
	row := r.db.QueryRow(ctx, `
		SELECT b.id, b.user_id, b.room_id, b.created_at, b.updated_at,
		       r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at
		FROM bookings b
		JOIN rooms r ON r.id = b.room_id
		WHERE b.user_id = $1`, userID)

	var b domain.Booking
	var room domain.Room
	err := row.Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt,
		&room.ID, &room.Name, &room.Capacity, &room.HotelID, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get booking by user: %w", err)
	}
	b.Room = &room
	return &b, nil
}

func (r *PGBookingRepository) CountByRoom(ctx context.Context, roomID int64) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count room bookings: %w", err)
	}
	return count, nil
}

// Create inserts a booking while holding a row lock on the room, so two
// concurrent requests cannot both take the last free place.
func (r *PGBookingRepository) Create(ctx context.Context, userID, roomID int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin create booking: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := reserveRoomPlace(ctx, tx, roomID); err != nil {
		return nil, err
	}

	b := domain.Booking{UserID: userID, RoomID: roomID}
	err = tx.QueryRow(ctx, `
		INSERT INTO bookings (user_id, room_id)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at`, userID, roomID).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.Storage("create booking", ErrUserHasBooking)
		}
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, domain.Storage("create booking", err)
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit create booking: %w", err)
	}
	return &b, nil
}

// UpdateRoom moves an existing booking to roomID under the same room lock as Create.
func (r *PGBookingRepository) UpdateRoom(ctx context.Context, bookingID, roomID int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, fmt.Errorf("begin update booking: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := reserveRoomPlace(ctx, tx, roomID); err != nil {
		return nil, err
	}

	var b domain.Booking
	err = tx.QueryRow(ctx, `
		UPDATE bookings SET room_id = $1, updated_at = now()
		WHERE id = $2
		RETURNING id, user_id, room_id, created_at, updated_at`, roomID, bookingID).
		Scan(&b.ID, &b.UserID, &b.RoomID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.NotFound("booking not found")
		}
		return nil, fmt.Errorf("update booking room: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit update booking: %w", err)
	}
	return &b, nil
}

// reserveRoomPlace locks the room row for the rest of tx and fails when the
// room is missing or already holds capacity bookings.
func reserveRoomPlace(ctx context.Context, tx pgx.Tx, roomID int64) error {
	var capacity int
	err := tx.QueryRow(ctx, `SELECT capacity FROM rooms WHERE id = $1 FOR UPDATE`, roomID).Scan(&capacity)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NotFound("room not found")
		}
		return fmt.Errorf("lock room: %w", err)
	}

	var booked int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE room_id = $1`, roomID).Scan(&booked); err != nil {
		return fmt.Errorf("count room bookings: %w", err)
	}
	if booked >= capacity {
		return domain.Forbidden("room has no vacancy")
	}
	return nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
