package main

import (
	"os"

	"github.com/fsauctions/catalog-backend/internal/app"
	config "github.com/fsauctions/catalog-backend/internal/cfg"
	"github.com/fsauctions/catalog-backend/pkg/logger"
)

// @title			Auction Catalog API
// @version		1.0
// @description	Каталог лотов, аукционов и категорий ювелирного аукционного дома.
// @BasePath		/
func main() {
	log := logger.NewLogger()

	cfg, err := config.Load(log)
	if err != nil {
		log.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	application, err := app.NewApp(cfg, log)
	if err != nil {
		log.Errorf(err, "failed to initialize app")
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		os.Exit(1)
	}
}
