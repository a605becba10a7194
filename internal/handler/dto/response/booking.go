package response

import (
	"time"

	"makespace/internal/domain/booking"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID        uuid.UUID    `json:"id"`
	Date      string       `json:"date"`
	Start     string       `json:"start"`
	End       string       `json:"end"`
	Room      RoomResponse `json:"room"`
	NumPeople int          `json:"numPeople"`
}

type BookingsListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func FromBooking(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID(),
		Date:      b.Date().Format(time.DateOnly),
		Start:     b.TimeSlot().Start().String(),
		End:       b.TimeSlot().End().String(),
		Room:      FromRoom(b.Room()),
		NumPeople: b.NumPeople(),
	}
}

func FromBookings(bs []booking.Booking) BookingsListResponse {
	out := make([]BookingResponse, len(bs))
	for i := range bs {
		out[i] = FromBooking(&bs[i])
	}
	return BookingsListResponse{Bookings: out}
}
