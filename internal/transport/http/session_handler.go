package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/njprem/VisitEgypt_BackEnd/internal/service"
	"github.com/njprem/VisitEgypt_BackEnd/internal/util"
)

const errProviderMessage = "session provider not configured"

type SessionHandler struct {
	logger *zap.Logger
}

func RegisterSession(e *echo.Echo, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	handler := &SessionHandler{logger: logger}

	group := e.Group("/api/v1/session")
	group.GET("", handler.current)
	group.POST("/login", handler.login)
	group.POST("/logout", handler.logout)
}

func (h *SessionHandler) current(c echo.Context) error {
	user, ok, err := CurrentUser(c)
	if err != nil {
		return h.writeSessionError(c, err)
	}
	resp := SessionResponse{Authenticated: ok}
	if ok {
		resp.User = toSessionUser(user)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SessionHandler) login(c echo.Context) error {
	manager, err := service.SessionFromContext(c.Request().Context())
	if err != nil {
		return h.writeSessionError(c, err)
	}

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request body"))
	}

	user := req.toDomain()
	if err := manager.Login(c.Request().Context(), user); err != nil {
		return h.writeSessionError(c, err)
	}
	return c.JSON(http.StatusOK, util.Data("user", toSessionUser(user)))
}

func (h *SessionHandler) logout(c echo.Context) error {
	manager, err := service.SessionFromContext(c.Request().Context())
	if err != nil {
		return h.writeSessionError(c, err)
	}
	if err := manager.Logout(c.Request().Context()); err != nil {
		return h.writeSessionError(c, err)
	}

	redirect, ok := navigatedTo(c)
	if !ok {
		redirect = manager.LoginRoute()
	}
	return c.JSON(http.StatusOK, LogoutResponse{Redirect: redirect})
}

func (h *SessionHandler) writeSessionError(c echo.Context, err error) error {
	if errors.Is(err, service.ErrSessionProviderMissing) {
		h.logger.Error("session accessed without provider", zap.String("path", c.Path()))
		return c.JSON(http.StatusInternalServerError, util.Error(errProviderMessage))
	}
	h.logger.Error("session request failed", zap.Error(err))
	return c.JSON(http.StatusInternalServerError, util.Error("unable to update session"))
}
