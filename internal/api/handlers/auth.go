package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/roksva123/go-productivity-backend/internal/model"
	"github.com/roksva123/go-productivity-backend/internal/service"
)

type Authenticator interface {
	Login(ctx context.Context, username, password string) (*model.LoginResponse, error)
}

type AuthHandler struct {
	Auth Authenticator
	log  *slog.Logger
}

func NewAuthHandler(auth Authenticator, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{Auth: auth, log: logger}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	var response model.ResponseApi

	// Validate JSON
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ApiMessage = "Invalid request: " + err.Error()
		c.JSON(http.StatusBadRequest, response)
		return
	}

	token, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		response.ApiMessage = "Username or password is incorrect"
		c.JSON(http.StatusUnauthorized, response)
		return
	}
	if err != nil {
		h.log.Error("login failed", slog.String("username", req.Username), slog.String("error", err.Error()))
		response.ApiMessage = "Failed to generate token"
		c.JSON(http.StatusInternalServerError, response)
		return
	}

	response.ApiMessage = "Login Successful"
	response.Data = token
	c.JSON(http.StatusOK, response)
}
