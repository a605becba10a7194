package usecase

import (
	"context"
	"errors"

	"makespace/internal/domain/booking"
	"makespace/internal/infra"
	"makespace/internal/infra/repository"
	"makespace/internal/pkg/errs"
	"makespace/internal/pkg/result"
	"makespace/internal/pkg/uuidgen"

	"github.com/google/uuid"
)

var (
	ErrRoomAlreadyExists   = errors.New("room already exists")
	ErrBufferAlreadyExists = errors.New("buffer time already exists")
	ErrBufferNotFound      = errors.New("buffer time not found")
)

type RoomRepository interface {
	FindAll(ctx context.Context) ([]booking.Room, error)
	Create(ctx context.Context, room booking.Room) error
}

type BufferTimeRepository interface {
	FindAll(ctx context.Context) ([]repository.BufferWindow, error)
	Create(ctx context.Context, w repository.BufferWindow) error
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

// CatalogUseCase manages the room catalog and the administrative buffer
// (blackout) windows the allocation engine plans around.
type CatalogUseCase interface {
	ListRooms(ctx context.Context) ([]booking.Room, error)
	CreateRoom(ctx context.Context, room booking.Room) (result.Result[booking.Room], error)
	ListBufferTimes(ctx context.Context) ([]repository.BufferWindow, error)
	AddBufferTime(ctx context.Context, slot booking.TimeSlot) (result.Result[repository.BufferWindow], error)
	RemoveBufferTime(ctx context.Context, id uuid.UUID) (result.Result[result.Unit], error)
}

type catalogUseCaseImpl struct {
	roomRepo   RoomRepository
	bufferRepo BufferTimeRepository
	idGen      uuidgen.Generator
}

func NewCatalogUseCase(roomRepo RoomRepository, bufferRepo BufferTimeRepository, idGen uuidgen.Generator) CatalogUseCase {
	return &catalogUseCaseImpl{
		roomRepo:   roomRepo,
		bufferRepo: bufferRepo,
		idGen:      idGen,
	}
}

func (u *catalogUseCaseImpl) ListRooms(ctx context.Context) ([]booking.Room, error) {
	rooms, err := u.roomRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rooms, nil
}

func (u *catalogUseCaseImpl) CreateRoom(ctx context.Context, room booking.Room) (result.Result[booking.Room], error) {
	if err := u.roomRepo.Create(ctx, room); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return result.Failure[booking.Room](ErrRoomAlreadyExists), nil
		}
		return result.Result[booking.Room]{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result.Success(room), nil
}

func (u *catalogUseCaseImpl) ListBufferTimes(ctx context.Context) ([]repository.BufferWindow, error) {
	windows, err := u.bufferRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return windows, nil
}

func (u *catalogUseCaseImpl) AddBufferTime(ctx context.Context, slot booking.TimeSlot) (result.Result[repository.BufferWindow], error) {
	window := repository.BufferWindow{ID: u.idGen.NewID(), Slot: slot}
	if err := u.bufferRepo.Create(ctx, window); err != nil {
		if infra.IsKind(err, infra.KindConflict) {
			return result.Failure[repository.BufferWindow](ErrBufferAlreadyExists), nil
		}
		return result.Result[repository.BufferWindow]{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return result.Success(window), nil
}

func (u *catalogUseCaseImpl) RemoveBufferTime(ctx context.Context, id uuid.UUID) (result.Result[result.Unit], error) {
	count, err := u.bufferRepo.DeleteByID(ctx, id)
	if err != nil {
		return result.Result[result.Unit]{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if count == 0 {
		return result.Failure[result.Unit](ErrBufferNotFound), nil
	}
	return result.Success(result.Unit{}), nil
}
