package middleware

import (
	"errors"
	"net/http"
	"strings"

	"workforce_project/internal/utils"
	"workforce_project/internal/utils/blacklist"
	"workforce_project/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	ContextUserID = "userID"
	ContextToken  = "token"
)

// AuthRequired validates the bearer token, rejects revoked tokens and
// banned users, and attaches the employee id to the request context.
func AuthRequired(secret string, bl blacklist.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			abortUnauthorized(c, "Authorization header is missing")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			abortUnauthorized(c, "Token is missing")
			return
		}

		claims, err := utils.ParseAndValidateToken(tokenString, secret)
		if err != nil {
			abortUnauthorized(c, "Invalid token")
			return
		}

		if bl != nil {
			ctx := c.Request.Context()
			if err := bl.CheckToken(ctx, tokenString); err != nil {
				if errors.Is(err, blacklist.ErrTokenRevoked) {
					abortUnauthorized(c, "Token has been revoked")
					return
				}
				logger.Logger.Warn("Blacklist token check failed", zap.Error(err))
			}
			if err := bl.CheckUser(ctx, claims.ID); err != nil {
				if errors.Is(err, blacklist.ErrUserBanned) {
					c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
						"success": false,
						"message": "User is banned",
						"code":    "forbidden",
					})
					return
				}
				logger.Logger.Warn("Blacklist user check failed", zap.Error(err))
			}
		}

		c.Set(ContextUserID, claims.ID)
		c.Set(ContextToken, tokenString)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
		"code":    "unauthorized",
	})
}
