package main

import (
	"os"

	"github.com/sykli/college-backend/internal/pkg/logger"
	"github.com/sykli/college-backend/internal/server"
)

// @title Sykli College API
// @version 1.0
// @description Administrative backend for Sykli College: admissions, enrollment, catalog, assets and news

// @contact.name IT Services
// @contact.email it@syklicollege.fi

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authorization

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Blocks until a shutdown signal arrives
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
