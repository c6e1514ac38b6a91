package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shelfmark/catalog-api/internal/api/metrics"
	"github.com/shelfmark/catalog-api/internal/core/domain"
	"github.com/shelfmark/catalog-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	audit       ports.AuditSink // optional
}

func NewAuthHandler(authService ports.AuthService, audit ports.AuditSink) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  messageResponse
// @Failure      409   {object}  messageResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	_, err := h.authService.Register(c.Request().Context(), req.Username, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			h.recordAudit(req.Username, ports.AuditActionRegister, ports.AuditOutcomeDenied, "duplicate username")
			return c.JSON(http.StatusConflict, messageResponse{Message: "user already exists"})
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "all fields required"})
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	h.recordAudit(req.Username, ports.AuditActionRegister, ports.AuditOutcomeSuccess, "role="+req.Role)
	return c.JSON(http.StatusCreated, messageResponse{Message: "user registered"})
}

// Login authenticates a user and returns a signed token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Failure      429   {object}  messageResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			h.recordAudit(req.Username, ports.AuditActionLogin, ports.AuditOutcomeFailure, "invalid credentials")
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "invalid credentials"})
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("not_found").Inc()
			return c.JSON(http.StatusNotFound, messageResponse{Message: "user not found"})
		case errors.Is(err, domain.ErrTooManyAttempts):
			metrics.LoginsTotal.WithLabelValues("throttled").Inc()
			h.recordAudit(req.Username, ports.AuditActionLogin, ports.AuditOutcomeDenied, "throttled")
			return c.JSON(http.StatusTooManyRequests, messageResponse{Message: "too many login attempts"})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.recordAudit(user.Username, ports.AuditActionLogin, ports.AuditOutcomeSuccess, "")
	return c.JSON(http.StatusOK, loginResponse{Token: token})
}

func (h *AuthHandler) recordAudit(actor, action, outcome, detail string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(ports.AuditEntry{
		Actor:     actor,
		Action:    action,
		Outcome:   outcome,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
