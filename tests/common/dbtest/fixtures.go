//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestRoom appends a room to the catalog. The catalog keeps insertion
// order, so call order matters for tie-break assertions.
func CreateTestRoom(t *testing.T, db DBLike, name string, capacity int) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (name, people_capacity) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING",
		name, capacity)
	require.NoError(t, err)
}

// CreateTestBooking places a booking row directly, bypassing the engine.
func CreateTestBooking(t *testing.T, db DBLike, roomName string, date time.Time, start, end string, numPeople int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO bookings (id, date, start_time, end_time, room_name, num_people) VALUES ($1, $2, $3, $4, $5, $6)",
		id, date, start, end, roomName, numPeople)
	require.NoError(t, err)

	return id
}

// CreateTestBufferTime inserts a blackout window directly.
func CreateTestBufferTime(t *testing.T, db DBLike, start, end string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO buffer_times (id, start_time, end_time) VALUES ($1, $2, $3) ON CONFLICT (start_time, end_time) DO NOTHING",
		id, start, end)
	require.NoError(t, err)

	return id
}

// SeedReferenceData inserts the canonical three-room catalog used across the
// e2e suites: capacities 3, 7 and 20 in that catalog order.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rooms (name, people_capacity) VALUES
		    ('Amaze', 3),
		    ('Beauty', 7),
		    ('Creativity', 20)
		ON CONFLICT (name) DO NOTHING;
	`)
	return err
}

// ResetDB truncates all mutable tables and reseeds the room catalog.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, "TRUNCATE TABLE bookings, buffer_times, rooms RESTART IDENTITY CASCADE")
	if err != nil {
		return err
	}
	return SeedReferenceData(pool)
}
