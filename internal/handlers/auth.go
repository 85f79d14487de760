package handlers

import (
	"net/http"

	"github.com/crucial707/blog-api/internal/metrics"
	"github.com/crucial707/blog-api/internal/service"
)

// ==========================
// Auth Handler
// ==========================
type AuthHandler struct {
	Service *service.AuthService
}

// ==========================
// Signup (201 {id, token}; 409 when the email is taken)
// ==========================
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var input service.SignupInput
	if !decodeJSON(w, r, &input) {
		metrics.IncAuthEvent("signup", http.StatusBadRequest)
		return
	}

	res, err := h.Service.Signup(r.Context(), input)
	if err != nil {
		metrics.IncAuthEvent("signup", statusFor(err))
		writeServiceError(w, r, "signup", err, "user not found")
		return
	}

	metrics.IncAuthEvent("signup", http.StatusCreated)
	writeJSON(w, http.StatusCreated, res)
}

// ==========================
// Login (200 {id, token}; 404 unknown email, 400 wrong password)
// ==========================
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decodeJSON(w, r, &input) {
		metrics.IncAuthEvent("login", http.StatusBadRequest)
		return
	}

	res, err := h.Service.Login(r.Context(), input)
	if err != nil {
		metrics.IncAuthEvent("login", statusFor(err))
		writeServiceError(w, r, "login", err, "User not found")
		return
	}

	metrics.IncAuthEvent("login", http.StatusOK)
	writeJSON(w, http.StatusOK, res)
}
