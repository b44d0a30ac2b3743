package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"inkpost/auth"
	"inkpost/dto"
	"inkpost/internal/logger"
	"inkpost/models"
)

const principalKey = "principal"

// AuthMiddleware verifies the Bearer token and attaches the resulting
// Principal to the request context. Protected routes behind it always see a
// valid principal.
func AuthMiddleware(jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure("Access denied. A valid Bearer token is required"))
			return
		}

		sub, role, err := jwt.Parse(token)
		if err != nil {
			logger.Log.Infof("token parse error: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure("Invalid or expired token"))
			return
		}
		id, err := primitive.ObjectIDFromHex(sub)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Failure("Invalid or expired token"))
			return
		}

		c.Set(principalKey, &auth.Principal{ID: id, Role: role})
		c.Next()
	}
}

// AdminMiddleware allows only principals holding the admin role. It must run
// after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := Principal(c)
		if p == nil || p.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Failure("Admin privileges are required for this operation"))
			return
		}
		c.Next()
	}
}

// Principal returns the authenticated principal attached by AuthMiddleware,
// or nil on public routes.
func Principal(c *gin.Context) *auth.Principal {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	p, _ := v.(*auth.Principal)
	return p
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}
