package repository

import (
	"context"

	"makespace/internal/domain/booking"
	"makespace/internal/infra"
	"makespace/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/pgtype"
)

// BufferWindow is a stored blackout window with its identifier, as exposed to
// the admin management endpoints. The allocation engine only ever sees the
// bare TimeSlot via the system state snapshot.
type BufferWindow struct {
	ID   uuid.UUID
	Slot booking.TimeSlot
}

type BufferTimeRepository struct {
	db *pgxpool.Pool
}

func NewBufferTimeRepository(db *pgxpool.Pool) *BufferTimeRepository {
	return &BufferTimeRepository{db: db}
}

func (r *BufferTimeRepository) FindAll(ctx context.Context) ([]BufferWindow, error) {
	rows, err := r.db.Query(ctx, `SELECT id, start_time, end_time FROM buffer_times ORDER BY start_time`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query buffer times", err)
	}
	defer rows.Close()

	var windows []BufferWindow
	for rows.Next() {
		var (
			id         uuid.UUID
			start, end pgtype.Time
		)
		if err := rows.Scan(&id, &start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan buffer time row", err)
		}
		slot, err := bufferSlot(start, end)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid buffer time row", err)
		}
		windows = append(windows, BufferWindow{ID: id, Slot: slot})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read buffer time rows", err)
	}
	return windows, nil
}

func (r *BufferTimeRepository) Create(ctx context.Context, w BufferWindow) error {
	sql := `INSERT INTO buffer_times (id, start_time, end_time) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, sql,
		w.ID,
		pgconv.TimeOfDayToPgtype(w.Slot.Start()),
		pgconv.TimeOfDayToPgtype(w.Slot.End()),
	)
	if err != nil {
		if isConflict(err) {
			return infra.WrapRepoErr("buffer time already exists", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to create buffer time", err)
	}
	return nil
}

func (r *BufferTimeRepository) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM buffer_times WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete buffer time", err)
	}
	return tag.RowsAffected(), nil
}
