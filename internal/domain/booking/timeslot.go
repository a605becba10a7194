package booking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidClockTime   = errors.New("time of day out of range")
	ErrOffGridMinute      = errors.New("slot minutes must fall on a 15 minute increment")
	ErrInvalidSlotRange   = errors.New("slot end must be after slot start")
	ErrUnparsableTimeSpec = errors.New("time must be in HH:MM form")
)

// SlotIncrementMinutes is the booking grid: slots start and end on quarter hours.
const SlotIncrementMinutes = 15

// TimeOfDay is a wall-clock instant within a day, precise to the minute.
type TimeOfDay struct {
	hour   int
	minute int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidClockTime
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// ParseTimeOfDay parses "HH:MM" (24-hour clock). Exactly five characters;
// trailing input is rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return TimeOfDay{}, ErrUnparsableTimeSpec
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return TimeOfDay{}, ErrUnparsableTimeSpec
		}
	}
	hour := int(s[0]-'0')*10 + int(s[1]-'0')
	minute := int(s[3]-'0')*10 + int(s[4]-'0')
	return NewTimeOfDay(hour, minute)
}

func (t TimeOfDay) Hour() int   { return t.hour }
func (t TimeOfDay) Minute() int { return t.minute }

// MinutesOfDay returns minutes elapsed since midnight.
func (t TimeOfDay) MinutesOfDay() int {
	return t.hour*60 + t.minute
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.MinutesOfDay() < other.MinutesOfDay()
}

func (t TimeOfDay) After(other TimeOfDay) bool {
	return t.MinutesOfDay() > other.MinutesOfDay()
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// TimeSlot is a half-open time range [start, end) on the 15 minute grid.
type TimeSlot struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeSlot(start, end TimeOfDay) (TimeSlot, error) {
	if start.minute%SlotIncrementMinutes != 0 || end.minute%SlotIncrementMinutes != 0 {
		return TimeSlot{}, ErrOffGridMinute
	}
	if end.Before(start) || start == end {
		return TimeSlot{}, ErrInvalidSlotRange
	}
	return TimeSlot{start: start, end: end}, nil
}

func (s TimeSlot) Start() TimeOfDay { return s.start }
func (s TimeSlot) End() TimeOfDay   { return s.end }

// Overlaps reports whether the two slots share any time, treating slots as
// half-open ranges: 10:30-10:45 and 10:45-11:00 do not overlap, identical
// slots do. The relation is symmetric.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.start.Before(other.end) && s.end.After(other.start)
}

func (s TimeSlot) String() string {
	return s.start.String() + "-" + s.end.String()
}
