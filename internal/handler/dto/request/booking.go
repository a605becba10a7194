package request

import (
	"time"

	"makespace/internal/domain/booking"
)

type CreateBookingRequest struct {
	Date      string `json:"date" binding:"required"`
	Start     string `json:"start" binding:"required"`
	End       string `json:"end" binding:"required"`
	NumPeople int    `json:"numPeople" binding:"required,gt=0"`
}

func (r CreateBookingRequest) ToDomain() (time.Time, booking.TimeSlot, error) {
	return parseDateAndSlot(r.Date, r.Start, r.End)
}

func parseDateAndSlot(dateStr, startStr, endStr string) (time.Time, booking.TimeSlot, error) {
	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return time.Time{}, booking.TimeSlot{}, err
	}
	start, err := booking.ParseTimeOfDay(startStr)
	if err != nil {
		return time.Time{}, booking.TimeSlot{}, err
	}
	end, err := booking.ParseTimeOfDay(endStr)
	if err != nil {
		return time.Time{}, booking.TimeSlot{}, err
	}
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return time.Time{}, booking.TimeSlot{}, err
	}
	return booking.DateOf(date), slot, nil
}

// AvailableRoomsQuery is bound from the availability query string.
type AvailableRoomsQuery struct {
	Date  string `form:"date" binding:"required"`
	Start string `form:"start" binding:"required"`
	End   string `form:"end" binding:"required"`
}

func (q AvailableRoomsQuery) ToDomain() (time.Time, booking.TimeSlot, error) {
	return parseDateAndSlot(q.Date, q.Start, q.End)
}
