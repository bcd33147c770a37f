// Command api runs the academic records HTTP API.
//
// @title Registra API
// @version 1.0
// @description Academic records service: students, courses, enrollments and classification.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"flag"
	"os"

	"github.com/campushub/registra/internal/bootstrap"
	"github.com/campushub/registra/internal/config"
	"github.com/campushub/registra/internal/pkg/logger"
	"github.com/campushub/registra/internal/server"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
		Output: os.Stdout,
	})

	deps, err := bootstrap.BuildDependencies(context.Background(), cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to build dependencies")
	}

	if err := server.New(deps).Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server error")
	}
}
