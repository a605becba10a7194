//go:build unit || e2e

package builder

import (
	"time"

	dombooking "makespace/internal/domain/booking"
	reqdto "makespace/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	Date      time.Time
	Start     string
	End       string
	RoomName  string
	Capacity  int
	NumPeople int
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        uuid.New(),
		Date:      time.Date(2020, 12, 10, 0, 0, 0, 0, time.UTC),
		Start:     "10:00",
		End:       "11:00",
		RoomName:  "Green Room",
		Capacity:  7,
		NumPeople: 4,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*dombooking.Booking, error) {
	room, err := dombooking.NewRoom(b.RoomName, b.Capacity)
	if err != nil {
		return nil, err
	}
	return dombooking.NewBooking(b.ID, b.Date, MustSlot(b.Start, b.End), room, b.NumPeople)
}

func (b *BookingBuilder) BuildReconstructed() *dombooking.Booking {
	return dombooking.ReconstructBooking(b.ID, b.Date, MustSlot(b.Start, b.End), MustRoom(b.RoomName, b.Capacity), b.NumPeople)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Date:      b.Date.Format(time.DateOnly),
		Start:     b.Start,
		End:       b.End,
		NumPeople: b.NumPeople,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithDate(date time.Time) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) WithSlot(start, end string) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithRoom(name string, capacity int) *BookingBuilder {
	b.RoomName = name
	b.Capacity = capacity
	return b
}

func (b *BookingBuilder) WithNumPeople(numPeople int) *BookingBuilder {
	b.NumPeople = numPeople
	return b
}

// MustSlot builds a TimeSlot from "HH:MM" bounds and panics on invalid input.
// Test fixtures only.
func MustSlot(start, end string) dombooking.TimeSlot {
	s, err := dombooking.ParseTimeOfDay(start)
	if err != nil {
		panic(err)
	}
	e, err := dombooking.ParseTimeOfDay(end)
	if err != nil {
		panic(err)
	}
	slot, err := dombooking.NewTimeSlot(s, e)
	if err != nil {
		panic(err)
	}
	return slot
}

// MustRoom builds a Room and panics on invalid input. Test fixtures only.
func MustRoom(name string, capacity int) dombooking.Room {
	room, err := dombooking.NewRoom(name, capacity)
	if err != nil {
		panic(err)
	}
	return room
}
