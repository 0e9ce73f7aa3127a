package gateway

import "github.com/google/wire"

// ProviderSet is gateway providers.
var ProviderSet = wire.NewSet(
	NewAuthClient,
	NewCircuitBreaker,
	NewResolver,
	NewSchema,
	NewHTTPServer,
)
