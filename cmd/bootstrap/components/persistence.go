package components

import (
	"resource-booking-api/internal/infra/joblock"
	"resource-booking-api/internal/infra/readstore"
	"resource-booking-api/internal/infra/sqlq"
	"resource-booking-api/internal/infra/uow"
	"resource-booking-api/internal/usecase/commands"
	"resource-booking-api/internal/usecase/queries"
	"resource-booking-api/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserViewQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Unit
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UnitViewQueries)),
		),
		fx.Annotate(
			readstore.NewUnitReadStore,
			fx.As(new(queries.UnitReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// Calendar
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.CalendarViewQueries)),
		),
		fx.Annotate(
			readstore.NewCalendarReadStore,
			fx.As(new(commands.SyncReads)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
		fx.Annotate(
			joblock.NewAdvisoryLock,
			fx.As(new(commands.JobLock)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlq.Queries {
	return sqlq.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlq.DBTX {
	return pool
}
