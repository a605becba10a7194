// Package pgconv converts between pgx/pgtype column values and domain types.
package pgconv

import (
	"errors"
	"time"

	"makespace/internal/domain/booking"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// TimeOfDayFromPgtype converts a Postgres time-of-day column to a domain
// TimeOfDay, dropping sub-minute precision (the schema never stores any).
func TimeOfDayFromPgtype(t pgtype.Time) (booking.TimeOfDay, error) {
	if !t.Valid {
		return booking.TimeOfDay{}, errors.New("pgconv: null time column")
	}
	minutes := int(t.Microseconds / int64(time.Minute/time.Microsecond))
	return booking.NewTimeOfDay(minutes/60, minutes%60)
}

func TimeOfDayToPgtype(t booking.TimeOfDay) pgtype.Time {
	return pgtype.Time{
		Microseconds: int64(t.MinutesOfDay()) * int64(time.Minute/time.Microsecond),
		Valid:        true,
	}
}

func DateFromPgtype(d pgtype.Date) time.Time {
	return booking.DateOf(d.Time)
}

func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: booking.DateOf(t), Valid: true}
}

// IsNoRows reports whether err is pgx's empty-result sentinel.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
