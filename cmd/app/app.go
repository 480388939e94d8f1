package app

import (
	"log"

	"github.com/tmohagan/portfolio-api/internal/config"
	"github.com/tmohagan/portfolio-api/internal/database"
	"github.com/tmohagan/portfolio-api/internal/repository"
	"github.com/tmohagan/portfolio-api/internal/service"
	"github.com/tmohagan/portfolio-api/internal/storage"
)

// App wires the long-lived dependencies once at startup: the database pool,
// the object-store client, repositories and services.
func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}

	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("could not initialize MinIO: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	return db, repo, services
}
