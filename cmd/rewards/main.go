package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sudeep845/Raktsewa-sub001/internal/pkg/database"
	"github.com/Sudeep845/Raktsewa-sub001/internal/pkg/env"
	"github.com/Sudeep845/Raktsewa-sub001/internal/pkg/logging"
	"github.com/Sudeep845/Raktsewa-sub001/internal/rewards/bootstrap"
	"golang.org/x/sync/errgroup"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.StdoutLogger

	cfg := bootstrap.RewardsConfig{
		HttpPort: ":8080",
		DbSettings: database.PostgresSettings{
			User:       "admin",
			Password:   "password",
			Host:       "localhost",
			Port:       "5432",
			DBName:     "rewards_db",
			SSlEnabled: false,
		},
	}

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)

	app := bootstrap.NewRewardsApp(cfg, logger)

	g, gctx := errgroup.WithContext(mainCtx)

	g.Go(func() error {
		return app.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		app.Shutdown()
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("rewards service exited with error", "error", err.Error())
		os.Exit(1)
	}
}
