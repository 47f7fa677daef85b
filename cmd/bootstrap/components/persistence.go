package components

import (
	"goalkick/internal/infra/metrics"
	"goalkick/internal/infra/readstore"
	sqlc "goalkick/internal/infra/sqlc/generated"
	"goalkick/internal/infra/uow"
	"goalkick/internal/usecase/queries"
	"goalkick/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are created per transaction by the unit of work,
// so only the read stores and the unit of work itself are provided here.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	uowModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Match
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.MatchReadQueries)),
		),
		fx.Annotate(
			readstore.NewMatchReadStore,
			fx.As(new(queries.MatchReadStore)),
		),
		// Ticket
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TicketReadQueries)),
		),
		fx.Annotate(
			readstore.NewTicketReadStore,
			fx.As(new(queries.TicketReadStore)),
		),
	),
)

var uowModule = fx.Module("persistence/uow",
	fx.Provide(
		NewUnitOfWork,
	),
)

func NewUnitOfWork(pool *pgxpool.Pool, q *sqlc.Queries, m *metrics.Metrics) shared.UnitOfWork {
	return uow.NewPostgresUoW(pool, q, uow.WithRetryObserver(m.TxRetry))
}

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
