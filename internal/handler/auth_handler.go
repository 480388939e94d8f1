package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/tmohagan/portfolio-api/internal/middleware"
)

type RegisterRequest struct {
	Username        string `json:"username" validate:"required,min=3"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "username and a password of at least 6 characters are required", http.StatusBadRequest)
		return
	}

	user, err := h.AuthService.Register(r.Context(), req.Username, req.Password, req.ConfirmPassword)
	if err != nil {
		respondError(w, err)
		return
	}

	writeJSON(w, user, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	user, token, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token, int(h.Cfg.TokenDuration.Seconds())))

	writeJSON(w, LoginResponse{ID: user.UserID, Username: user.Username}, http.StatusOK)
}

// Profile echoes the verified claims from the session cookie.
func (h *Handlers) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	writeJSON(w, claims, http.StatusOK)
}

// Logout clears the cookie. The token itself is stateless and stays valid
// until expiry; there is no server-side revocation list.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))

	writeJSON(w, "ok", http.StatusOK)
}

// The session cookie is sent cross-site by the browser front end, so it is
// SameSite=None and therefore must be Secure.
func (h *Handlers) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
