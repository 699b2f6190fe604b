package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CreateSchema creates the tables the repositories read and write. It is safe
// to run against an already initialised database.
func CreateSchema(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id         BIGSERIAL PRIMARY KEY,
			email      VARCHAR(255) NOT NULL UNIQUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS enrollments (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT NOT NULL UNIQUE REFERENCES users(id),
			name       VARCHAR(255) NOT NULL,
			cpf        VARCHAR(14) NOT NULL,
			birthday   TIMESTAMPTZ NOT NULL,
			phone      VARCHAR(32) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS ticket_types (
			id             BIGSERIAL PRIMARY KEY,
			name           VARCHAR(255) NOT NULL,
			price          INTEGER NOT NULL,
			is_remote      BOOLEAN NOT NULL,
			includes_hotel BOOLEAN NOT NULL
		);

		CREATE TABLE IF NOT EXISTS tickets (
			id             BIGSERIAL PRIMARY KEY,
			enrollment_id  BIGINT NOT NULL UNIQUE REFERENCES enrollments(id),
			ticket_type_id BIGINT NOT NULL REFERENCES ticket_types(id),
			status         VARCHAR(16) NOT NULL CHECK (status IN ('RESERVED', 'PAID')),
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS hotels (
			id         BIGSERIAL PRIMARY KEY,
			name       VARCHAR(255) NOT NULL,
			image      TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS rooms (
			id         BIGSERIAL PRIMARY KEY,
			name       VARCHAR(255) NOT NULL,
			capacity   INTEGER NOT NULL CHECK (capacity > 0),
			hotel_id   BIGINT NOT NULL REFERENCES hotels(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id         BIGSERIAL PRIMARY KEY,
			user_id    BIGINT NOT NULL UNIQUE REFERENCES users(id),
			room_id    BIGINT NOT NULL REFERENCES rooms(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);

		CREATE INDEX IF NOT EXISTS bookings_room_id_idx ON bookings (room_id);
	`)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
