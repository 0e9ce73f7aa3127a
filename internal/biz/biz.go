// Package biz contains the credential use cases and the abstractions they
// orchestrate. It owns no storage or crypto: repositories, hashing and token
// signing are reached only through the interfaces defined here, which the
// data layer implements and tests replace with fakes.
package biz

import "github.com/google/wire"

// ProviderSet is biz providers.
var ProviderSet = wire.NewSet(
	NewAuthUsecase,
	NewSeeder,
)
