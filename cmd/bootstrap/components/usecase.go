package components

import (
	"resource-booking-api/internal/infra/msgraph"
	"resource-booking-api/internal/pkg/clock"
	"resource-booking-api/internal/pkg/config"
	"resource-booking-api/internal/usecase/commands"
	"resource-booking-api/internal/usecase/queries"
	"resource-booking-api/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewGraphClient,
		fx.As(new(commands.CalendarProvider)),
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewUnitQueries,
		NewReservationQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewUnitAuthorizationCommands,
		commands.NewCalendarLinkCommands,
		NewCalendarSyncCommands,
	),
)

func NewGraphClient(cfg config.Config) *msgraph.Client {
	return msgraph.NewClient(cfg.O365)
}

func NewReservationQueries(readStore queries.ReservationReadStore, cfg config.Config) queries.ReservationQueries {
	return queries.NewReservationQueries(readStore, cfg.Payment.RequestedWaitingTime)
}

func NewCalendarSyncCommands(
	uow shared.UnitOfWork,
	reads commands.SyncReads,
	provider commands.CalendarProvider,
	clk clock.Clock,
	lock commands.JobLock,
	cfg config.Config,
) commands.CalendarSyncCommands {
	return commands.NewCalendarSyncCommands(uow, reads, provider, clk, lock, cfg.Sync.FailureThreshold)
}
