package components

import (
	"makespace/internal/infra/repository"
	"makespace/internal/usecase"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(usecase.BookingRepository)),
		),
		fx.Annotate(
			repository.NewSystemStateRepository,
			fx.As(new(usecase.SystemStateRepository)),
		),
		fx.Annotate(
			repository.NewRoomRepository,
			fx.As(new(usecase.RoomRepository)),
		),
		fx.Annotate(
			repository.NewBufferTimeRepository,
			fx.As(new(usecase.BufferTimeRepository)),
		),
	),
)
