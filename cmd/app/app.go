package main

import (
	"os"

	"github.com/DRSN-tech/bifl-catalog/internal/app"
	config "github.com/DRSN-tech/bifl-catalog/internal/cfg"
	"github.com/DRSN-tech/bifl-catalog/pkg/logger"
)

//	@title			BIFL Catalog API
//	@version		1.0
//	@description	Каталог долговечных товаров и брендов: поиск, фильтры, карточки.
//	@BasePath		/api/v1

func main() {
	log := logger.NewSlogLogger()

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
