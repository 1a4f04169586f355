package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/chronoworks/timesheet-backend-go/internal/domain/auth"
	"github.com/chronoworks/timesheet-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Signup(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// Signup implements AuthHandler.
func (a *AuthHandlerImpl) Signup(w http.ResponseWriter, r *http.Request) {
	var signupReq auth.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&signupReq); err != nil {
		slog.Error("Signup decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := signupReq.Validate(); err != nil {
		slog.Error("Signup validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	profile, err := a.authService.CreateAccount(r.Context(), signupReq)
	if err != nil {
		slog.Error("Signup service error", "email", signupReq.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Account created", "email", profile.Email)
	response.Success(w, profile)
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	loginResp, err := a.authService.Authenticate(r.Context(), loginReq)
	if err != nil {
		slog.Error("Login service error", "email", loginReq.Email, "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User logged in successfully", "email", loginResp.Email)
	response.Success(w, loginResp)
}
