package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/tmohagan/portfolio-api/internal/config"
	"github.com/tmohagan/portfolio-api/internal/database"
	"github.com/tmohagan/portfolio-api/internal/repository"
	"github.com/tmohagan/portfolio-api/internal/service"
)

type Handlers struct {
	AuthService    service.AuthService
	UserRepo       repository.UserRepository
	PostService    service.ContentService
	ProjectService service.ContentService
	MailService    service.MailService
	DB             *database.DB
	Cfg            *config.Config
	Validate       *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		AuthService:    services.Auth,
		UserRepo:       repo.User,
		PostService:    services.Post,
		ProjectService: services.Project,
		MailService:    services.Mail,
		DB:             db,
		Cfg:            cfg,
		Validate:       validator.New(),
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		writeError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
