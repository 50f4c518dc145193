package main

import (
	"context"
	"flag"
	"os"

	"github.com/yigit/registrar/internal/pkg/logger"
	"github.com/yigit/registrar/internal/server"
)

// @title Course Registration API
// @version 1.0
// @description In-memory course registration manager
// @BasePath /api/v1
// @schemes http

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	flag.Parse()

	srv, err := server.NewServer(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(context.Background()); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
