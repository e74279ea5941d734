// internal/middleware/auth.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eventrix/eventrix-backend/internal/cache"
	"github.com/eventrix/eventrix-backend/internal/i18n"
	"github.com/eventrix/eventrix-backend/internal/models"
	"github.com/eventrix/eventrix-backend/internal/session"
	"github.com/eventrix/eventrix-backend/internal/utils"
)

const authFailureKey = "auth_failure"

// Session attaches a session to every request. A valid, unrevoked bearer
// token moves it to Authenticated; anything else leaves it anonymous and
// records why for AuthRequired.
func Session(denylist cache.Denylist) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.New()
		session.Attach(c, s)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Set(authFailureKey, i18n.KeyAuthInvalidToken)
			c.Next()
			return
		}

		claims, err := utils.ValidateJWT(parts[1])
		if err != nil {
			if utils.IsTokenExpired(err) {
				c.Set(authFailureKey, i18n.KeyAuthTokenExpired)
			} else {
				c.Set(authFailureKey, i18n.KeyAuthInvalidToken)
			}
			c.Next()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			c.Set(authFailureKey, i18n.KeyAuthInvalidToken)
			c.Next()
			return
		}

		revoked, err := denylist.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			// Fail closed.
			logrus.WithError(err).Warn("Token denylist lookup failed")
			c.Set(authFailureKey, i18n.KeyAuthInvalidToken)
			c.Next()
			return
		}
		if revoked {
			c.Set(authFailureKey, i18n.KeyAuthTokenRevoked)
			c.Next()
			return
		}

		identity := session.Identity{
			UserID:  userID,
			Email:   claims.Email,
			Name:    claims.Name,
			Role:    models.UserRole(claims.Role),
			TokenID: claims.ID,
		}
		if claims.ExpiresAt != nil {
			identity.ExpiresAt = claims.ExpiresAt.Time
		}
		_ = s.Login(identity)
		c.Next()
	}
}

func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if session.From(c).IsAuthenticated() {
			c.Next()
			return
		}

		key := c.GetString(authFailureKey)
		if key == "" {
			key = i18n.KeyAuthRequired
		}
		utils.UnauthorizedResponse(c, i18n.T(utils.GetLangFromContext(c), key))
		c.Abort()
	}
}

func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !session.From(c).HasRole(models.UserRoleSuperAdmin, models.UserRoleAdmin) {
			utils.ForbiddenResponse(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}
