package bootstrap

import (
	"smakownia-backend/internal/pkg/metrics"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Invoke(
		metrics.Register,
	),
)
