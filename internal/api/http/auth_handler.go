package http

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/service"
)

type AuthHandler struct {
	authSvc  service.AuthService
	validate *validator.Validate
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc:  authSvc,
		validate: validator.New(),
	}
}

type signupRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=VOLUNTEER ORGANIZATION"`
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, domain.InvalidArgumentError(err.Error()))
		return
	}

	account, access, refresh, err := h.authSvc.Signup(r.Context(), req.Name, req.Email, req.Password, domain.AccountRole(req.Role))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, map[string]any{
		"account":       account,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, domain.InvalidArgumentError(err.Error()))
		return
	}

	account, access, refresh, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{
		"account":       account,
		"access_token":  access,
		"refresh_token": refresh,
	})
}

type pushTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

func (h *AuthHandler) RegisterPushToken(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	var req pushTokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, domain.InvalidArgumentError(err.Error()))
		return
	}

	if err := h.authSvc.RegisterPushToken(r.Context(), claims.AccountID, req.Token); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}
