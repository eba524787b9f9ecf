package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/fintrackpro/fintrack_app/internal/apperrors"
	portssvc "github.com/fintrackpro/fintrack_app/internal/core/ports/services"
	"github.com/fintrackpro/fintrack_app/internal/core/session"
	"github.com/fintrackpro/fintrack_app/internal/dto"
	"github.com/fintrackpro/fintrack_app/internal/middleware"
	"github.com/fintrackpro/fintrack_app/pkg/config"
	"github.com/gin-gonic/gin"
)

// sessionHandler handles login, restore, reload, and logout.
type sessionHandler struct {
	sessionService portssvc.SessionSvcFacade
}

func newSessionHandler(ss portssvc.SessionSvcFacade) *sessionHandler {
	return &sessionHandler{sessionService: ss}
}

// registerSessionRoutes registers the public auth routes and the
// session-scoped routes behind the auth middleware.
func registerSessionRoutes(r *gin.Engine, cfg *config.Config, ss portssvc.SessionSvcFacade) {
	h := newSessionHandler(ss)

	auth := r.Group("/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/restore", h.restore)
	}

	authed := r.Group("/auth", middleware.AuthMiddleware(cfg.JWTSecret))
	{
		authed.POST("/logout", h.logout)
		authed.POST("/reload", h.reload)
	}
}

// login godoc
// @Summary Log in with a display name
// @Description Creates a demo identity, seeds first-time data, and returns the session with its restoration token
// @Tags session
// @Accept  json
// @Produce  json
// @Param   credentials body dto.LoginRequest true "Display name"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 500 {object} map[string]string "Login failed"
// @Router /auth/login [post]
func (h *sessionHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for login", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sess, token, err := h.sessionService.Login(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(sess, token))
}

// restore godoc
// @Summary Restore a session from a stored token
// @Tags session
// @Accept  json
// @Produce  json
// @Param   token body dto.RestoreRequest true "Restoration token"
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} map[string]string "Invalid or expired token"
// @Router /auth/restore [post]
func (h *sessionHandler) restore(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RestoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sess, err := h.sessionService.Restore(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session token"})
			return
		}
		logger.Error("Session restore failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session restore failed"})
		return
	}

	// The existing token stays valid; it is not re-issued on restore.
	c.JSON(http.StatusOK, dto.ToSessionResponse(sess, ""))
}

// reload godoc
// @Summary Re-run the initial load for the active session
// @Description Retries the seed-check and fetch after a failed load
// @Tags session
// @Produce  json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/reload [post]
func (h *sessionHandler) reload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	sess, err := h.sessionService.Reload(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session, please log in again"})
			return
		}
		logger.Error("Session reload failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session reload failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSessionResponse(sess, ""))
}

// logout godoc
// @Summary Log out and discard the in-memory session
// @Tags session
// @Produce  json
// @Success 204 "Logged out"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *sessionHandler) logout(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	h.sessionService.Logout(userID)
	c.Status(http.StatusNoContent)
}

// activeSession resolves the caller's live session, writing the error
// response when none exists. Shared by the entity handlers.
func activeSession(c *gin.Context, ss portssvc.SessionSvcFacade) (*session.Session, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	sess, ok := ss.Active(userID)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session, please log in again"})
		return nil, false
	}
	return sess, true
}
