package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "missing required fields", http.StatusBadRequest)
		return
	}

	if err := h.MailService.SendContact(r.Context(), req.Name, req.Email, req.Message); err != nil {
		log.Printf("could not send contact mail: %v", err)
		writeError(w, "failed to send message", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]bool{"success": true}, http.StatusOK)
}
