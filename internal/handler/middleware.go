package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yaboywf/bb-website-v3/internal/model"
	"github.com/yaboywf/bb-website-v3/internal/service"
)

const tokenCookieName = "token"

const authClaimsKey = "auth_claims"

// AuthMiddleware validates the bearer token carried in the `token`
// cookie. All credential failures surface as 401 with the reason in the
// message.
func AuthMiddleware(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token, _ := c.Cookie(tokenCookieName)

		claims, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			switch err {
			case service.ErrMissingToken, service.ErrInvalidToken, service.ErrTokenExpired, service.ErrTokenUsed:
				c.JSON(http.StatusUnauthorized, model.ErrorResponse{Message: err.Error()})
			default:
				// Ledger lookup failed, not a credential problem.
				c.JSON(http.StatusInternalServerError, model.ErrorResponse{Message: "server error"})
			}
			c.Abort()
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

func GetAuthClaims(c *gin.Context) *model.AuthClaims {
	if value, ok := c.Get(authClaimsKey); ok {
		if claims, ok := value.(*model.AuthClaims); ok {
			return claims
		}
	}
	return nil
}

func CORSMiddleware(allowedOrigins []string, allowCredentials bool) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				if allowCredentials {
					c.Header("Access-Control-Allow-Credentials", "true")
				}
				c.Header("Access-Control-Allow-Headers", "Content-Type")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
