package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lennykioko/School-Mngmt-Backend/internal/graph"
	"github.com/lennykioko/School-Mngmt-Backend/internal/services"
)

// AuthMiddleware resolves the caller's identity from a bearer token and
// stores it in the request context. Requests without a usable token pass
// through anonymously; the resolvers decide which operations need identity.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = parts[1]
			}
		}

		if token != "" {
			if user, err := authService.ValidateToken(token); err == nil {
				ctx := graph.WithUser(c.Request.Context(), user)
				c.Request = c.Request.WithContext(ctx)
				c.Set("user", user)
			}
		}

		c.Next()
	}
}

// CORSMiddleware allows browser clients on other origins to reach the API.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
