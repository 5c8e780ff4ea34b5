package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"wallmagic/internal/common"
	"wallmagic/internal/server/accounts"
)

type registerRequest struct {
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	FullName *string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type rootResponse struct {
	Message   string `json:"message"`
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
	DocsURL   string `json:"docs_url"`
	HealthURL string `json:"health_url"`
}

type healthResponse struct {
	Status    string `json:"status"`
	AppName   string `json:"app_name"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {

	s.logger.Info(r.Context(), "Registration request")

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.accounts.Register(r.Context(), accounts.RegisterParams{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.metrics.RecordRegistration()
	s.logger.Info(r.Context(), "Registered", "username", req.Username)
	writeJSON(w, http.StatusCreated, result)
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := s.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.metrics.RecordLogin(false)
		if errors.Is(err, common.ErrorInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
		}
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.metrics.RecordLogin(true)
	writeJSON(w, http.StatusOK, result)
}

func (s *HTTPServer) handleMe(w http.ResponseWriter, r *http.Request) {

	user, err := userFromContext(r.Context())
	if err != nil {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	writeJSON(w, http.StatusOK, user.View())
}

func (s *HTTPServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Message:   "Welcome to " + s.appName + " API",
		AppName:   s.appName,
		Version:   s.version,
		DocsURL:   "/docs",
		HealthURL: "/health",
	})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		AppName:   s.appName,
		Version:   s.version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// writeServiceError translates service sentinels into HTTP responses.
// Anything unrecognized is logged and reported as a generic 500 so that
// internal detail never leaks to the client.
func (s *HTTPServer) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrEmailTaken):
		writeError(w, http.StatusConflict, "Email already registered")
	case errors.Is(err, common.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "Username already taken")
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, common.ErrTokenSignature),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrTokenMalformed):
		writeError(w, http.StatusUnauthorized, "Could not validate credentials")
	default:
		s.logger.Error(ctx, err.Error())
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
	}
}
