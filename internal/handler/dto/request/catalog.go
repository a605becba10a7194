package request

import (
	"makespace/internal/domain/booking"
)

type CreateRoomRequest struct {
	Name           string `json:"name" binding:"required"`
	PeopleCapacity int    `json:"peopleCapacity" binding:"required,gt=0"`
}

func (r CreateRoomRequest) ToDomain() (booking.Room, error) {
	return booking.NewRoom(r.Name, r.PeopleCapacity)
}

type CreateBufferTimeRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

func (r CreateBufferTimeRequest) ToDomain() (booking.TimeSlot, error) {
	start, err := booking.ParseTimeOfDay(r.Start)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	end, err := booking.ParseTimeOfDay(r.End)
	if err != nil {
		return booking.TimeSlot{}, err
	}
	return booking.NewTimeSlot(start, end)
}
