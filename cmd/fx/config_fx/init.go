package config_fx

import (
	"go.uber.org/fx"

	"eventsnap/internal/config"
	"eventsnap/internal/infra"
)

var Module = fx.Provide(
	config.Load,
	infra.NewLogger)
