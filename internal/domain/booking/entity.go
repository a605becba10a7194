package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrZeroBookingDate  = errors.New("booking date is required")
	ErrInvalidNumPeople = errors.New("numPeople must be greater than zero")
	ErrCapacityExceeded = errors.New("numPeople exceeds room capacity")
)

// Booking is an immutable fact: a room reserved for a time slot on a date,
// for a number of people.
type Booking struct {
	id        uuid.UUID
	date      time.Time
	timeSlot  TimeSlot
	room      Room
	numPeople int
}

func NewBooking(id uuid.UUID, date time.Time, slot TimeSlot, room Room, numPeople int) (*Booking, error) {
	if date.IsZero() {
		return nil, ErrZeroBookingDate
	}
	if numPeople <= 0 {
		return nil, ErrInvalidNumPeople
	}
	if !room.Fits(numPeople) {
		return nil, ErrCapacityExceeded
	}
	return &Booking{
		id:        id,
		date:      DateOf(date),
		timeSlot:  slot,
		room:      room,
		numPeople: numPeople,
	}, nil
}

// ReconstructBooking rehydrates a persisted booking without re-running
// construction validation.
func ReconstructBooking(id uuid.UUID, date time.Time, slot TimeSlot, room Room, numPeople int) *Booking {
	return &Booking{
		id:        id,
		date:      DateOf(date),
		timeSlot:  slot,
		room:      room,
		numPeople: numPeople,
	}
}

func (b *Booking) ID() uuid.UUID      { return b.id }
func (b *Booking) Date() time.Time    { return b.date }
func (b *Booking) TimeSlot() TimeSlot { return b.timeSlot }
func (b *Booking) Room() Room         { return b.room }
func (b *Booking) NumPeople() int     { return b.numPeople }

// DateOf strips the clock portion, leaving a calendar date at midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
