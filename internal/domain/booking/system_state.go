package booking

import "time"

// SystemState is a read snapshot of the system for a single date: the room
// catalog, the bookings already placed on that date and the administrative
// buffer (blackout) windows. It is assembled per request by the system state
// repository and never persisted as such. Every booking it carries shares the
// snapshot date; the repository is responsible for that filtering.
type SystemState struct {
	Date            time.Time
	AvailableRooms  []Room
	CurrentBookings []Booking
	BufferTimes     []TimeSlot
}

func NewSystemState(date time.Time, rooms []Room, bookings []Booking, buffers []TimeSlot) *SystemState {
	return &SystemState{
		Date:            DateOf(date),
		AvailableRooms:  rooms,
		CurrentBookings: bookings,
		BufferTimes:     buffers,
	}
}
