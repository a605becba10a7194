package components

import (
	"makespace/internal/pkg/clock"
	"makespace/internal/pkg/uuidgen"
	"makespace/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		uuidgen.NewRandomGenerator,
		usecase.NewBookingUseCase,
		usecase.NewCatalogUseCase,
		usecase.NewAuthUseCase,
		usecase.NewTokenValidator,
	),
)
