// Package conf provides configuration management using Viper.
// It supports loading configuration from YAML files and environment
// variables, with CLI flag overrides.
package conf

import (
	"google.golang.org/protobuf/types/known/durationpb"
)

// Bootstrap is the root configuration of the auth service.
type Bootstrap struct {
	Server *Server
	Data   *Data
	Auth   *Auth
	Log    *Log
}

// GatewayBootstrap is the root configuration of the API gateway.
type GatewayBootstrap struct {
	Server   *Server
	Upstream *Upstream
	Breaker  *Breaker
	Log      *Log
}

// Server holds the transport listener.
type Server struct {
	Http *Server_HTTP
}

// Server_HTTP configures the HTTP listener.
type Server_HTTP struct {
	Network string
	Addr    string
	Timeout *durationpb.Duration
}

// Data holds storage backends.
type Data struct {
	Database *Data_Database
	Redis    *Data_Redis
}

// Data_Database configures the MySQL connection.
type Data_Database struct {
	Driver string
	Source string
}

// Data_Redis configures the Redis connection.
type Data_Redis struct {
	Network      string
	Addr         string
	ReadTimeout  *durationpb.Duration
	WriteTimeout *durationpb.Duration
}

// Auth holds token issuance and seeding settings.
type Auth struct {
	Jwt        *Auth_JWT
	TokenCache *Auth_TokenCache
	Seed       *Auth_Seed
}

// Auth_JWT configures token signing.
type Auth_JWT struct {
	Secret  string
	Expires *durationpb.Duration
}

// Auth_TokenCache configures the token validation cache.
type Auth_TokenCache struct {
	Ttl         *durationpb.Duration
	MaxCapacity uint32
}

// Auth_Seed configures the admin user created at startup when absent.
type Auth_Seed struct {
	Enabled     bool
	Email       string
	Password    string
	DisplayName string
}

// Upstream points the gateway at the auth service.
type Upstream struct {
	Endpoint string
	Timeout  *durationpb.Duration
}

// Breaker configures the gateway-side circuit breaker.
type Breaker struct {
	Threshold      uint32
	RecoveryWindow *durationpb.Duration
}

// Log configures logging output.
type Log struct {
	Level      string
	Format     string
	OutputFile string
}
