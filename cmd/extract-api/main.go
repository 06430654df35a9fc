package main

import (
	"gbd-extract/internal/api"
	"gbd-extract/internal/api/handler"
	"gbd-extract/internal/config"
	"gbd-extract/internal/gbd"
	"gbd-extract/internal/store"
	"gbd-extract/pkg/router"
	"gbd-extract/pkg/utils"

	_ "gbd-extract/docs"
)

// @title GBD Extraction API
// @version 1.0
// @description Submit and track draw/population extraction jobs
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Init DB
	if err := store.InitDB(cfg.DBPath); err != nil {
		panic(err)
	}

	// Create router
	r := router.New()

	// Register API routes with the injected GBD client
	h := &handler.ExtractionHandler{
		Source:  gbd.NewClient(cfg.GBDAPIBaseURL),
		Outputs: utils.NewOutputManager(cfg.OutputDir),
	}
	api.RegisterRoutes(r, h)

	// Start server
	r.Start(":" + cfg.Port)
}
