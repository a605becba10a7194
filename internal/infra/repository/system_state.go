package repository

import (
	"context"
	"time"

	"makespace/internal/domain/booking"
	"makespace/internal/infra"
	"makespace/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/pgtype"
)

// SystemStateRepository assembles the per-date snapshot the allocation engine
// plans against: room catalog, bookings for the date and buffer windows. All
// three reads run on one connection so the snapshot is internally consistent.
type SystemStateRepository struct {
	db *pgxpool.Pool
}

func NewSystemStateRepository(db *pgxpool.Pool) *SystemStateRepository {
	return &SystemStateRepository{db: db}
}

func (r *SystemStateRepository) FindByDate(ctx context.Context, date time.Time) (*booking.SystemState, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to acquire connection", err)
	}
	defer conn.Release()

	rooms, err := findAllRooms(ctx, conn.Conn())
	if err != nil {
		return nil, err
	}
	bookings, err := findBookingsByDate(ctx, conn.Conn(), date)
	if err != nil {
		return nil, err
	}
	buffers, err := findAllBufferTimes(ctx, conn.Conn())
	if err != nil {
		return nil, err
	}

	return booking.NewSystemState(date, rooms, bookings, buffers), nil
}

func findAllRooms(ctx context.Context, conn *pgx.Conn) ([]booking.Room, error) {
	rows, err := conn.Query(ctx, `SELECT name, people_capacity FROM rooms ORDER BY created_at, name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rooms", err)
	}
	defer rows.Close()

	var rooms []booking.Room
	for rows.Next() {
		var (
			name     string
			capacity int
		)
		if err := rows.Scan(&name, &capacity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		room, err := booking.NewRoom(name, capacity)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid room row", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}
	return rooms, nil
}

func findBookingsByDate(ctx context.Context, conn *pgx.Conn, date time.Time) ([]booking.Booking, error) {
	sql := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN rooms r ON b.room_name = r.name
		WHERE b.date = $1
	`
	rows, err := conn.Query(ctx, sql, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings for snapshot", err)
	}
	defer rows.Close()

	var bookings []booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return bookings, nil
}

func findAllBufferTimes(ctx context.Context, conn *pgx.Conn) ([]booking.TimeSlot, error) {
	rows, err := conn.Query(ctx, `SELECT start_time, end_time FROM buffer_times`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query buffer times", err)
	}
	defer rows.Close()

	var buffers []booking.TimeSlot
	for rows.Next() {
		var start, end pgtype.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan buffer time row", err)
		}
		slot, err := bufferSlot(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid buffer time row", err)
		}
		buffers = append(buffers, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read buffer time rows", err)
	}
	return buffers, nil
}

func bufferSlot(start, end pgtype.Time) (booking.TimeSlot, error) {
	s, err := pgconv.TimeOfDayFromPgtype(start)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	e, err := pgconv.TimeOfDayFromPgtype(end)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	return booking.NewTimeSlot(s, e)
}
