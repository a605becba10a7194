package response

import (
	"makespace/internal/domain/booking"
	"makespace/internal/infra/repository"

	"github.com/google/uuid"
)

type RoomResponse struct {
	Name           string `json:"name"`
	PeopleCapacity int    `json:"peopleCapacity"`
}

type RoomsListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

func FromRoom(r booking.Room) RoomResponse {
	return RoomResponse{
		Name:           r.Name(),
		PeopleCapacity: r.PeopleCapacity(),
	}
}

func FromRooms(rooms []booking.Room) RoomsListResponse {
	out := make([]RoomResponse, len(rooms))
	for i, r := range rooms {
		out[i] = FromRoom(r)
	}
	return RoomsListResponse{Rooms: out}
}

type BufferTimeResponse struct {
	ID    uuid.UUID `json:"id"`
	Start string    `json:"start"`
	End   string    `json:"end"`
}

type BufferTimesListResponse struct {
	BufferTimes []BufferTimeResponse `json:"bufferTimes"`
}

func FromBufferWindow(w repository.BufferWindow) BufferTimeResponse {
	return BufferTimeResponse{
		ID:    w.ID,
		Start: w.Slot.Start().String(),
		End:   w.Slot.End().String(),
	}
}

func FromBufferWindows(ws []repository.BufferWindow) BufferTimesListResponse {
	out := make([]BufferTimeResponse, len(ws))
	for i, w := range ws {
		out[i] = FromBufferWindow(w)
	}
	return BufferTimesListResponse{BufferTimes: out}
}
