package components

import (
	"goalkick/internal/domain/ticket"
	"goalkick/internal/pkg/clock"
	"goalkick/internal/pkg/config"
	"goalkick/internal/usecase"
	"goalkick/internal/usecase/commands"
	"goalkick/internal/usecase/queries"
	"goalkick/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewCodeGenerator,
		fx.As(new(ticket.CodeGenerator)),
	),
	NewSettlementConfig,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewReservationCommands,
		commands.NewSettlementCommands,
		commands.NewRedemptionCommands,
		NewAdminCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewMatchQueries,
		queries.NewTicketQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCodeGenerator(cfg config.Config) *ticket.RandomCodeGenerator {
	return ticket.NewRandomCodeGenerator(cfg.Ticket.CodePrefix, cfg.Ticket.CodeLength)
}

func NewSettlementConfig(cfg config.Config) commands.SettlementConfig {
	return commands.SettlementConfig{
		VerifyTimeout:   cfg.Gateway.VerifyTimeout,
		CodeMaxAttempts: cfg.Ticket.CodeMaxAttempts,
	}
}

func NewAdminCommands(
	cfg config.Config,
	uow shared.UnitOfWork,
	codes ticket.CodeGenerator,
	notifier commands.Notifier,
	clk clock.Clock,
	recorder commands.Recorder,
) commands.AdminCommands {
	return commands.NewAdminCommands(uow, codes, notifier, clk, recorder, cfg.Ticket.CodeMaxAttempts)
}
