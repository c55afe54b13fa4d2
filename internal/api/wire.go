//go:build wireinject

package api

import (
	"testing"

	"github.com/google/wire"
	"github/chapool/mht-transfers/internal/config"
	"github/chapool/mht-transfers/internal/metrics"
	"github/chapool/mht-transfers/internal/token"
)

// INJECTORS - https://github.com/google/wire/blob/main/docs/guide.md#injectors

// serviceSet groups the default set of providers that are required for initing a server
var serviceSet = wire.NewSet(
	newServerWithComponents,
	NewI18N,
	NewChain,
	NewWalletSession,
	NewToasts,
	NewOrchestrator,
	metrics.New,
	NewClock,
)

var tokenServiceSet = wire.NewSet(
	NewTokenClient,
	NewTokenService,
	wire.Bind(new(TokenService), new(*token.Service)),
)

// InitNewServer returns a new Server instance.
func InitNewServer(
	_ config.Server,
) (*Server, error) {
	wire.Build(serviceSet, tokenServiceSet, NoTest)
	return new(Server), nil
}

// InitNewServerWithToken returns a new Server instance with the given token service.
// All the other components are initialized via go wire according to the configuration.
func InitNewServerWithToken(
	_ config.Server,
	_ TokenService,
	t ...*testing.T,
) (*Server, error) {
	wire.Build(serviceSet)
	return new(Server), nil
}
