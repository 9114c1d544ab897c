package main

import (
	"context"
	"os"

	"go-northwind/internal/app"
	"go-northwind/internal/config"
	"go-northwind/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := newLogger(cfg.Primary.Env)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	a, err := app.BuildApp(cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer a.Close()

	ctx := contextutil.WithRequestID(context.Background(), uuid.NewString())
	if err := app.Run(ctx, a.Employees, os.Args[1:], logger); err != nil {
		logger.Error("command failed",
			zap.String("request_id", contextutil.GetRequestID(ctx)),
			zap.Error(err),
		)
		a.Close()
		logger.Sync()
		os.Exit(1)
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == config.EnvProduction {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
