// internal/handlers/auth.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/eventrix/eventrix-backend/internal/i18n"
	"github.com/eventrix/eventrix-backend/internal/services"
	"github.com/eventrix/eventrix-backend/internal/session"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

type AuthHandler struct {
	authService AuthService
}

func NewAuthHandler(authService AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	authResponse, err := h.authService.Login(c.Request.Context(), session.From(c), &req)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrAlreadyAuthenticated):
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyAuthAlreadyLoggedIn))
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
		case errors.Is(err, services.ErrAccountSuspended):
			utils.ForbiddenResponse(c, i18n.T(lang, i18n.KeyAuthAccountSuspended))
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":    i18n.T(lang, i18n.KeyAuthLoginSuccess),
		"user":       authResponse.User,
		"token":      authResponse.AccessToken,
		"token_type": authResponse.TokenType,
		"expires_in": authResponse.ExpiresIn,
	})
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	if err := h.authService.Logout(c.Request.Context(), session.From(c)); err != nil {
		if errors.Is(err, session.ErrNotAuthenticated) {
			utils.UnauthorizedResponse(c, "")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthLogoutSuccess),
	})
}

// GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.Me(c.Request.Context(), session.From(c))
	if err != nil {
		switch {
		case errors.Is(err, session.ErrNotAuthenticated):
			utils.UnauthorizedResponse(c, "")
		case errors.Is(err, services.ErrUserNotFound):
			utils.NotFoundResponse(c, i18n.KeyUser)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}
	utils.SuccessResponse(c, user)
}
