package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tmohagan/portfolio-api/cmd/app"
	"github.com/tmohagan/portfolio-api/internal/config"
	handlers "github.com/tmohagan/portfolio-api/internal/handler"
	"github.com/tmohagan/portfolio-api/internal/middleware"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set")
	}

	db, repo, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, db, cfg)
	auth := services.Auth

	r := mux.NewRouter()

	r.HandleFunc("/health", handler.Health).Methods(http.MethodGet)

	r.HandleFunc("/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/logout", handler.Logout).Methods(http.MethodPost)
	r.HandleFunc("/profile", middleware.RequireAuth(auth, handler.Profile)).Methods(http.MethodGet)

	r.HandleFunc("/user/{id}", handler.GetUser).Methods(http.MethodGet)
	r.HandleFunc("/user", middleware.RequireAuth(auth, handler.UpdateUser)).Methods(http.MethodPut)

	r.HandleFunc("/contact", handler.Contact).Methods(http.MethodPost)

	r.HandleFunc("/post", middleware.RequireAuth(auth, handler.CreatePost)).Methods(http.MethodPost)
	r.HandleFunc("/post", middleware.RequireAuth(auth, handler.UpdatePost)).Methods(http.MethodPut)
	r.HandleFunc("/post", handler.GetPosts).Methods(http.MethodGet)
	r.HandleFunc("/post/{id}", handler.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/post/{id}", middleware.RequireAuth(auth, handler.DeletePost)).Methods(http.MethodDelete)

	r.HandleFunc("/project", middleware.RequireAuth(auth, handler.CreateProject)).Methods(http.MethodPost)
	r.HandleFunc("/project", middleware.RequireAuth(auth, handler.UpdateProject)).Methods(http.MethodPut)
	r.HandleFunc("/project", handler.GetProjects).Methods(http.MethodGet)
	r.HandleFunc("/project/{id}", handler.GetProject).Methods(http.MethodGet)
	r.HandleFunc("/project/{id}", middleware.RequireAuth(auth, handler.DeleteProject)).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		r,
		middleware.LoggingMiddleware,
		middleware.CORSMiddleware(cfg),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("server listening on %s", addr)

	if err := http.ListenAndServe(addr, handlerChain); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
