package bootstrap

import (
	"smakownia-backend/internal/infra/mailer"
	"smakownia-backend/internal/infra/przelewy24"
	"smakownia-backend/internal/pkg/config"
	"smakownia-backend/internal/usecase/commands"
	"smakownia-backend/internal/usecase/queries"

	"go.uber.org/fx"
)

var GatewayModule = fx.Module("gateway",
	fx.Provide(
		fx.Annotate(
			NewPaymentGateway,
			fx.As(new(commands.Gateway)),
			fx.As(new(queries.Gateway)),
		),
		fx.Annotate(
			NewMailer,
			fx.As(new(commands.Mailer)),
		),
	),
)

func NewPaymentGateway(cfg config.Config) *przelewy24.Client {
	return przelewy24.NewClient(cfg.Gateway)
}

func NewMailer(cfg config.Config) *mailer.Mailer {
	return mailer.New(cfg.Mail)
}
