package usecase

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	"makespace/internal/domain/booking"
	"makespace/internal/infra"
	"makespace/internal/pkg/errs"
	"makespace/internal/pkg/result"
	"makespace/internal/pkg/uuidgen"

	"github.com/google/uuid"
)

var (
	// Expected business outcomes, delivered inside a Result.
	ErrNoRoomAvailable = errors.New("no room available")
	ErrBookingNotFound = errors.New("booking not found")

	// Error marker for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type SystemStateRepository interface {
	FindByDate(ctx context.Context, date time.Time) (*booking.SystemState, error)
}

type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByDate(ctx context.Context, date time.Time) ([]booking.Booking, error)
	Save(ctx context.Context, b *booking.Booking) (*booking.Booking, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

// BookingUseCase allocates rooms to booking requests. It is a stateless
// planner over a per-date snapshot: each operation reads one snapshot and
// makes at most one mutating store call. Serialization of concurrent requests
// is the storage layer's job (exclusion constraint on the bookings table).
type BookingUseCase interface {
	// GetAvailableRooms returns the rooms bookable for the slot, ascending by
	// capacity with catalog order breaking ties. An empty list is a valid
	// outcome, not an error.
	GetAvailableRooms(ctx context.Context, date time.Time, slot booking.TimeSlot) ([]booking.Room, error)

	// BookNextAvailableRoom books the smallest room that fits numPeople.
	BookNextAvailableRoom(ctx context.Context, date time.Time, slot booking.TimeSlot, numPeople int) (result.Result[*booking.Booking], error)

	GetAllBookingsByDate(ctx context.Context, date time.Time) ([]booking.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (result.Result[*booking.Booking], error)
	DeleteBooking(ctx context.Context, id uuid.UUID) (result.Result[result.Unit], error)
}

type bookingUseCaseImpl struct {
	systemStateRepo SystemStateRepository
	bookingRepo     BookingRepository
	idGen           uuidgen.Generator
}

func NewBookingUseCase(
	systemStateRepo SystemStateRepository,
	bookingRepo BookingRepository,
	idGen uuidgen.Generator,
) BookingUseCase {
	return &bookingUseCaseImpl{
		systemStateRepo: systemStateRepo,
		bookingRepo:     bookingRepo,
		idGen:           idGen,
	}
}

func (u *bookingUseCaseImpl) GetAvailableRooms(ctx context.Context, date time.Time, slot booking.TimeSlot) ([]booking.Room, error) {
	state, err := u.systemStateRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// A slot touching any buffer window is blocked outright.
	for _, buffer := range state.BufferTimes {
		if slot.Overlaps(buffer) {
			return []booking.Room{}, nil
		}
	}

	reserved := make(map[booking.Room]struct{}, len(state.CurrentBookings))
	for _, b := range state.CurrentBookings {
		if b.TimeSlot().Overlaps(slot) {
			reserved[b.Room()] = struct{}{}
		}
	}

	available := make([]booking.Room, 0, len(state.AvailableRooms))
	for _, room := range state.AvailableRooms {
		if _, taken := reserved[room]; !taken {
			available = append(available, room)
		}
	}

	// Stable sort keeps catalog order as the tie-break between equal capacities.
	slices.SortStableFunc(available, func(a, b booking.Room) int {
		return cmp.Compare(a.PeopleCapacity(), b.PeopleCapacity())
	})
	return available, nil
}

func (u *bookingUseCaseImpl) BookNextAvailableRoom(ctx context.Context, date time.Time, slot booking.TimeSlot, numPeople int) (result.Result[*booking.Booking], error) {
	rooms, err := u.GetAvailableRooms(ctx, date, slot)
	if err != nil {
		return result.Result[*booking.Booking]{}, err
	}

	var chosen *booking.Room
	for _, room := range rooms {
		if room.Fits(numPeople) {
			// First fit of the capacity-sorted list is the best fit.
			chosen = &room
			break
		}
	}
	if chosen == nil {
		return result.Failure[*booking.Booking](ErrNoRoomAvailable), nil
	}

	newBooking, err := booking.NewBooking(u.idGen.NewID(), date, slot, *chosen, numPeople)
	if err != nil {
		return result.Result[*booking.Booking]{}, err
	}

	saved, err := u.bookingRepo.Save(ctx, newBooking)
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			// Lost the snapshot-to-write race; same outcome as never having
			// seen the room.
			return result.Failure[*booking.Booking](ErrNoRoomAvailable), nil
		}
		return result.Result[*booking.Booking]{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result.Success(saved), nil
}

func (u *bookingUseCaseImpl) GetAllBookingsByDate(ctx context.Context, date time.Time) ([]booking.Booking, error) {
	bookings, err := u.bookingRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return bookings, nil
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, id uuid.UUID) (result.Result[*booking.Booking], error) {
	b, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return result.Failure[*booking.Booking](ErrBookingNotFound), nil
		}
		return result.Result[*booking.Booking]{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result.Success(b), nil
}

func (u *bookingUseCaseImpl) DeleteBooking(ctx context.Context, id uuid.UUID) (result.Result[result.Unit], error) {
	found, err := u.GetBooking(ctx, id)
	if err != nil {
		return result.Result[result.Unit]{}, err
	}
	if found.IsFailure() {
		return result.Failure[result.Unit](found.Err()), nil
	}

	// Existence is already confirmed; the reported row count does not matter.
	if _, err := u.bookingRepo.DeleteByID(ctx, id); err != nil {
		return result.Result[result.Unit]{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result.Success(result.Unit{}), nil
}
