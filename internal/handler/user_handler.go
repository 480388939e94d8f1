package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tmohagan/portfolio-api/internal/middleware"
)

type UpdateUserRequest struct {
	ID   string `json:"id" validate:"required,uuid4"`
	Name string `json:"name" validate:"required"`
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	user, err := h.UserRepo.GetUserByID(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, user, http.StatusOK)
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	// Users may only rename themselves.
	if req.ID != claims.UserID {
		writeError(w, "not allowed to update this user", http.StatusForbidden)
		return
	}

	user, err := h.UserRepo.GetUserByID(r.Context(), req.ID)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.UserRepo.UpdateName(r.Context(), req.ID, req.Name); err != nil {
		respondError(w, err)
		return
	}

	user.Name = &req.Name

	writeJSON(w, user, http.StatusOK)
}
