//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package main

import (
	"CredLane/internal/conf"
	"CredLane/internal/gateway"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
)

// wireApp init the gateway application.
func wireApp(*conf.GatewayBootstrap, log.Logger) (*kratos.App, func(), error) {
	panic(wire.Build(
		wire.FieldsOf(new(*conf.GatewayBootstrap), "Upstream", "Breaker"),
		gateway.ProviderSet,
		newApp,
	))
}
