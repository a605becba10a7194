package repository

import (
	"context"

	"makespace/internal/domain/booking"
	"makespace/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

// FindAll returns the catalog in insertion order; the availability sort relies
// on this order being stable.
func (r *RoomRepository) FindAll(ctx context.Context) ([]booking.Room, error) {
	conn, err := r.db.Acquire(ctx)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to acquire connection", err)
	}
	defer conn.Release()
	return findAllRooms(ctx, conn.Conn())
}

func (r *RoomRepository) Create(ctx context.Context, room booking.Room) error {
	sql := `INSERT INTO rooms (name, people_capacity) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, sql, room.Name(), room.PeopleCapacity())
	if err != nil {
		if isConflict(err) {
			return infra.WrapRepoErr("room already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create room", err)
	}
	return nil
}
