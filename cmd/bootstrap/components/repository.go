package components

import (
	"smakownia-backend/internal/infra/repository"
	"smakownia-backend/internal/usecase/commands"
	"smakownia-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			repository.NewMasterclassRepository,
			fx.As(new(commands.MasterclassRepository)),
			fx.As(new(queries.MasterclassReader)),
		),
		fx.Annotate(
			repository.NewProductRepository,
			fx.As(new(commands.ProductRepository)),
			fx.As(new(queries.ProductReader)),
		),
		fx.Annotate(
			repository.NewPartnerRepository,
			fx.As(new(commands.PartnerRepository)),
			fx.As(new(queries.PartnerReader)),
		),
		fx.Annotate(
			repository.NewLocationRepository,
			fx.As(new(commands.LocationRepository)),
			fx.As(new(queries.LocationReader)),
		),
		fx.Annotate(
			repository.NewPaymentSessionRepository,
			fx.As(new(commands.SessionStore)),
		),
		fx.Annotate(
			repository.NewFulfillmentRepository,
			fx.As(new(commands.FulfillmentLedger)),
			fx.As(new(queries.FulfillmentReader)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
		),
	),
)
