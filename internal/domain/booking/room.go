package booking

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoomName   = errors.New("room name cannot be empty")
	ErrInvalidCapacity = errors.New("room capacity must be greater than zero")
)

// Room is a bookable space with a finite people capacity. Rooms are value
// objects: two rooms are the same room when name and capacity match.
type Room struct {
	name           string
	peopleCapacity int
}

func NewRoom(name string, peopleCapacity int) (Room, error) {
	if strings.TrimSpace(name) == "" {
		return Room{}, ErrEmptyRoomName
	}
	if peopleCapacity <= 0 {
		return Room{}, ErrInvalidCapacity
	}
	return Room{name: name, peopleCapacity: peopleCapacity}, nil
}

func (r Room) Name() string        { return r.name }
func (r Room) PeopleCapacity() int { return r.peopleCapacity }

// Fits reports whether the room can hold the given party size.
func (r Room) Fits(numPeople int) bool {
	return numPeople <= r.peopleCapacity
}
