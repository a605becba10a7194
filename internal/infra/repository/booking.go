package repository

import (
	"context"
	"errors"
	"time"

	"makespace/internal/domain/booking"
	"makespace/internal/infra"
	"makespace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/pgtype"
)

const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `
	b.id, b.date, b.start_time, b.end_time, b.room_name, b.num_people, r.people_capacity
`

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	sql := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN rooms r ON b.room_name = r.name
		WHERE b.id = $1
	`
	row := r.db.QueryRow(ctx, sql, id)
	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by id", err)
	}
	return b, nil
}

func (r *BookingRepository) FindByDate(ctx context.Context, date time.Time) ([]booking.Booking, error) {
	sql := `
		SELECT ` + bookingColumns + `
		FROM bookings b
		JOIN rooms r ON b.room_name = r.name
		WHERE b.date = $1
		ORDER BY b.start_time, b.room_name
	`
	rows, err := r.db.Query(ctx, sql, pgconv.DateToPgtype(date))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings by date", err)
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

// Save persists a booking and returns it as stored. The bookings table carries
// an exclusion constraint rejecting overlapping slots for the same room and
// date; losing that race surfaces as KindConflict.
func (r *BookingRepository) Save(ctx context.Context, b *booking.Booking) (*booking.Booking, error) {
	sql := `
		INSERT INTO bookings (id, date, start_time, end_time, room_name, num_people)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, sql,
		b.ID(),
		pgconv.DateToPgtype(b.Date()),
		pgconv.TimeOfDayToPgtype(b.TimeSlot().Start()),
		pgconv.TimeOfDayToPgtype(b.TimeSlot().End()),
		b.Room().Name(),
		b.NumPeople(),
	)
	if err != nil {
		if isConflict(err) {
			return nil, infra.WrapRepoErr("booking overlaps an existing reservation", err, infra.KindConflict)
		}
		return nil, infra.WrapRepoErr("failed to save booking", err)
	}
	return r.FindByID(ctx, b.ID())
}

func (r *BookingRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete booking", err)
	}
	return tag.RowsAffected(), nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id        uuid.UUID
		date      pgtype.Date
		start     pgtype.Time
		end       pgtype.Time
		roomName  string
		numPeople int
		capacity  int
	)
	if err := row.Scan(&id, &date, &start, &end, &roomName, &numPeople, &capacity); err != nil {
		return nil, err
	}

	startTime, err := pgconv.TimeOfDayFromPgtype(start)
	if err != nil {
		return nil, err
	}
	endTime, err := pgconv.TimeOfDayFromPgtype(end)
	if err != nil {
		return nil, err
	}
	slot, err := booking.NewTimeSlot(startTime, endTime)
	if err != nil {
		return nil, err
	}
	room, err := booking.NewRoom(roomName, capacity)
	if err != nil {
		return nil, err
	}
	return booking.ReconstructBooking(id, pgconv.DateFromPgtype(date), slot, room, numPeople), nil
}

func isConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation || pgErr.Code == pgExclusionViolation
	}
	return false
}
