package main

import (
	"os"

	"github.com/anirudh/campusconnect/internal/bootstrap"
	"github.com/anirudh/campusconnect/internal/server"
)

// @title           CampusConnect API
// @version         1.0
// @description     REST API for campus events, clubs and event registrations.

// @contact.name   CampusConnect Team
// @contact.email  support@campusconnect.dev

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
func main() {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		os.Exit(1)
	}

	dbPool, err := bootstrap.SetupDatabase(cfg, lgr)
	if err != nil {
		lgr.Fatal().Err(err).Msg("Database setup failed")
	}

	deps, err := bootstrap.BuildDependencies(cfg, dbPool, lgr)
	if err != nil {
		dbPool.Close()
		lgr.Fatal().Err(err).Msg("Failed to build application dependencies")
	}

	router := bootstrap.SetupRouter(cfg, deps, lgr)

	srv := server.New(cfg, router, dbPool, deps.Redis, lgr)
	if err := srv.Run(); err != nil {
		lgr.Fatal().Err(err).Msg("Server exited with error")
	}
}
