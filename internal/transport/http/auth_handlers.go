package httptransport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"serviceatlas/internal/httpx"
	"serviceatlas/internal/service"
)

type AuthHandlers struct {
	service AuthServices
}

type AuthServices interface {
	Login(ctx context.Context, username, password string) (string, error)
}

func NewAuthHandlers(service AuthServices) *AuthHandlers {
	return &AuthHandlers{
		service: service,
	}
}

func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	loginData, err := httpx.ReadBody[LoginData](r)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.service.Login(r.Context(), loginData.Username, loginData.Password)
	if err != nil {
		// One message for every failure mode, so usernames cannot be probed.
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.Error(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		slog.Error("Login failed", "err", err)
		httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	httpx.JSON(w, http.StatusOK, LoginResponse{Token: token, Username: loginData.Username})
}
