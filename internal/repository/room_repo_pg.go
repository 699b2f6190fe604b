package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/hotelbooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository interface {
	// GetByID returns nil when the room does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.RoomOccupancy, error)
}

type PGRoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) RoomRepository {
	return &PGRoomRepository{db: db}
}

func (r *PGRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	row := r.db.QueryRow(ctx, `SELECT id, name, capacity, hotel_id, created_at, updated_at FROM rooms WHERE id=$1`, id)
	var room domain.Room
	if err := row.Scan(&room.ID, &room.Name, &room.Capacity, &room.HotelID, &room.CreatedAt, &room.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get room: %w", err)
	}
	return &room, nil
}

func (r *PGRoomRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.RoomOccupancy, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.name, r.capacity, r.hotel_id, r.created_at, r.updated_at, COUNT(b.id)
		FROM rooms r
		LEFT JOIN bookings b ON b.room_id = r.id
		WHERE r.hotel_id = $1
		GROUP BY r.id
		ORDER BY r.id`, hotelID)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	rooms := make([]domain.RoomOccupancy, 0)
	for rows.Next() {
		var o domain.RoomOccupancy
		if err := rows.Scan(&o.ID, &o.Name, &o.Capacity, &o.HotelID, &o.CreatedAt, &o.UpdatedAt, &o.Booked); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		rooms = append(rooms, o)
	}
	return rooms, rows.Err()
}

var _ RoomRepository = (*PGRoomRepository)(nil)
