// Package main is the entry point of the CredLane auth service.
// It initializes the Kratos application with the HTTP JSON transport.
package main

import (
	"context"
	"flag"
	"os"

	"CredLane/internal/biz"
	"CredLane/internal/conf"
	zapLogger "CredLane/pkg/log"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/robfig/cron/v3"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name = "CredLane"
	// Version is the version of the compiled software.
	Version string
	// flagconf is the config flag.
	flagconf string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs/config.yaml", "config path, eg: -conf config.yaml")
}

func newApp(logger log.Logger, hs *http.Server, seeder *biz.Seeder, tokens biz.TokenService, ac *conf.Auth) *kratos.App {
	var statsCron *cron.Cron

	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(
			hs,
		),
		kratos.BeforeStart(func(ctx context.Context) error {
			if err := seeder.Seed(ctx, ac.Seed); err != nil {
				return err
			}
			statsCron = startCacheStatsCron(tokens, logger)
			return nil
		}),
		kratos.AfterStop(func(context.Context) error {
			if statsCron != nil {
				statsCron.Stop()
			}
			return nil
		}),
	)
}

func main() {
	flag.Parse()

	bc, err := conf.NewBootstrap(flagconf)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLog, err := zapLogger.NewZapLogger(bc.Log, Name)
	if err != nil {
		log.Fatalf("failed to initialize zap logger: %v", err)
	}
	defer zapLog.Sync()

	logger := zapLogger.NewKratosAdapter(zapLog)
	logger = log.With(logger,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
	)

	log.NewHelper(logger).Infow(
		"msg", "CredLane service starting",
		"log.level", bc.Log.Level,
		"log.format", bc.Log.Format,
		"http.addr", bc.Server.Http.Addr,
	)

	app, cleanup, err := wireApp(bc.Server, bc.Data, bc.Auth, logger)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	// start and wait for stop signal
	if err := app.Run(); err != nil {
		panic(err)
	}
}
