package conf

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"google.golang.org/protobuf/types/known/durationpb"
)

// NewGatewayBootstrap loads the API gateway configuration. Environment
// overrides use the CREDGATEWAY_ prefix.
func NewGatewayBootstrap(configPath string) (*GatewayBootstrap, error) {
	v := viper.New()

	setGatewayDefaults(v)

	v.SetEnvPrefix("CREDGATEWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("upstream.auth.endpoint", "AUTH_SERVICE_URL", "CREDGATEWAY_UPSTREAM_AUTH_ENDPOINT")

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	bc := &GatewayBootstrap{
		Server: &Server{
			Http: &Server_HTTP{
				Network: v.GetString("server.http.network"),
				Addr:    v.GetString("server.http.addr"),
				Timeout: durationpb.New(v.GetDuration("server.http.timeout")),
			},
		},
		Upstream: &Upstream{
			Endpoint: v.GetString("upstream.auth.endpoint"),
			Timeout:  durationpb.New(v.GetDuration("upstream.auth.timeout")),
		},
		Breaker: &Breaker{
			Threshold:      v.GetUint32("breaker.threshold"),
			RecoveryWindow: durationpb.New(v.GetDuration("breaker.recovery_window")),
		},
		Log: &Log{
			Level:      v.GetString("log.level"),
			Format:     v.GetString("log.format"),
			OutputFile: v.GetString("log.output_file"),
		},
	}

	return bc, nil
}

func setGatewayDefaults(v *viper.Viper) {
	v.SetDefault("server.http.network", "tcp")
	v.SetDefault("server.http.addr", ":3000")
	v.SetDefault("server.http.timeout", 30*time.Second)

	v.SetDefault("upstream.auth.endpoint", "http://127.0.0.1:8000")
	v.SetDefault("upstream.auth.timeout", 5*time.Second)

	v.SetDefault("breaker.threshold", 5)
	v.SetDefault("breaker.recovery_window", 30*time.Second)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
