package service

import (
	"github.com/tmohagan/portfolio-api/internal/config"
	"github.com/tmohagan/portfolio-api/internal/repository"
	"github.com/tmohagan/portfolio-api/internal/storage"
)

type Service struct {
	Auth    AuthService
	Post    ContentService
	Project ContentService
	Mail    MailService
}

func NewService(rep *repository.Repository, cfg *config.Config, store storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, cfg),
		Post:    NewContentService(rep.Post, store),
		Project: NewContentService(rep.Project, store),
		Mail:    NewMailService(cfg),
	}
}
