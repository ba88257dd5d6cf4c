package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"tienda-hogar/models"
	"tienda-hogar/session"
	"tienda-hogar/utils"
)

// AuthMiddleware gates the admin panel. The token normally travels in the
// session cookie set at login; a Bearer header is accepted too for API
// clients. Failures answer 401 pointing at /login.
func AuthMiddleware(jwtSecret []byte, sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Success: false,
					Message: "Invalid authorization header format",
				})
				c.Abort()
				return
			}
			token = tokenParts[1]
		} else {
			token = sessions.Token(sessions.Get(c))
		}

		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Autenticación requerida",
				"login":   "/login",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(jwtSecret, token)
		if err != nil || !claims.Admin {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Sesión inválida o expirada",
				"login":   "/login",
			})
			c.Abort()
			return
		}

		c.Set("admin_user", claims.Usuario)
		c.Next()
	}
}
