package conf

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"google.golang.org/protobuf/types/known/durationpb"
)

// NewBootstrap loads the auth service configuration. Values come from the
// config file, overridden by environment variables prefixed with CREDLANE_.
//
// Required (file or environment):
//   - MYSQL_DSN or CREDLANE_DATA_DATABASE_SOURCE: MySQL connection string
//   - JWT_SECRET or CREDLANE_AUTH_JWT_SECRET: JWT signing secret
func NewBootstrap(configPath string) (*Bootstrap, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("CREDLANE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("data.database.source", "MYSQL_DSN", "CREDLANE_DATA_DATABASE_SOURCE")
	_ = v.BindEnv("data.redis.addr", "CREDLANE_DATA_REDIS_ADDR")
	_ = v.BindEnv("auth.jwt.secret", "JWT_SECRET", "CREDLANE_AUTH_JWT_SECRET")
	_ = v.BindEnv("auth.seed.password", "SEED_ADMIN_PASSWORD", "CREDLANE_AUTH_SEED_PASSWORD")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	bc := &Bootstrap{
		Server: &Server{
			Http: &Server_HTTP{
				Network: v.GetString("server.http.network"),
				Addr:    v.GetString("server.http.addr"),
				Timeout: durationpb.New(v.GetDuration("server.http.timeout")),
			},
		},
		Data: &Data{
			Database: &Data_Database{
				Driver: v.GetString("data.database.driver"),
				Source: v.GetString("data.database.source"),
			},
			Redis: &Data_Redis{
				Network:      v.GetString("data.redis.network"),
				Addr:         v.GetString("data.redis.addr"),
				ReadTimeout:  durationpb.New(v.GetDuration("data.redis.read_timeout")),
				WriteTimeout: durationpb.New(v.GetDuration("data.redis.write_timeout")),
			},
		},
		Auth: &Auth{
			Jwt: &Auth_JWT{
				Secret:  v.GetString("auth.jwt.secret"),
				Expires: durationpb.New(v.GetDuration("auth.jwt.expires")),
			},
			TokenCache: &Auth_TokenCache{
				Ttl:         durationpb.New(v.GetDuration("auth.token_cache.ttl")),
				MaxCapacity: v.GetUint32("auth.token_cache.max_capacity"),
			},
			Seed: &Auth_Seed{
				Enabled:     v.GetBool("auth.seed.enabled"),
				Email:       v.GetString("auth.seed.email"),
				Password:    v.GetString("auth.seed.password"),
				DisplayName: v.GetString("auth.seed.display_name"),
			},
		},
		Log: &Log{
			Level:      v.GetString("log.level"),
			Format:     v.GetString("log.format"),
			OutputFile: v.GetString("log.output_file"),
		},
	}

	if err := Validate(bc); err != nil {
		return nil, err
	}

	return bc, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.http.network", "tcp")
	v.SetDefault("server.http.addr", ":8000")
	v.SetDefault("server.http.timeout", 30*time.Second)


	v.SetDefault("data.database.driver", "mysql")
	// data.database.source (MYSQL_DSN) is required from environment

	v.SetDefault("data.redis.network", "tcp")
	v.SetDefault("data.redis.addr", "127.0.0.1:6379")
	v.SetDefault("data.redis.read_timeout", 200*time.Millisecond)
	v.SetDefault("data.redis.write_timeout", 200*time.Millisecond)

	// auth.jwt.secret is required from environment
	v.SetDefault("auth.jwt.expires", time.Hour)
	v.SetDefault("auth.token_cache.ttl", 30*time.Second)
	v.SetDefault("auth.token_cache.max_capacity", 10000)

	v.SetDefault("auth.seed.enabled", false)
	v.SetDefault("auth.seed.email", "admin@example.com")
	v.SetDefault("auth.seed.display_name", "System Administrator")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Validate checks that all required configuration fields are present.
func Validate(bc *Bootstrap) error {
	var missingFields []string

	if bc.Data == nil || bc.Data.Database == nil || bc.Data.Database.Source == "" {
		missingFields = append(missingFields, "data.database.source (MYSQL_DSN)")
	}

	if bc.Auth == nil || bc.Auth.Jwt == nil || bc.Auth.Jwt.Secret == "" {
		missingFields = append(missingFields, "auth.jwt.secret (JWT_SECRET)")
	}

	if bc.Auth != nil && bc.Auth.Seed != nil && bc.Auth.Seed.Enabled && bc.Auth.Seed.Password == "" {
		missingFields = append(missingFields, "auth.seed.password (SEED_ADMIN_PASSWORD)")
	}

	if len(missingFields) > 0 {
		return fmt.Errorf("missing required configuration fields: %s", strings.Join(missingFields, ", "))
	}

	return nil
}
