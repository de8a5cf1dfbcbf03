package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadUmar248/clinic-backend/pkg/helpers"
	"github.com/MuhammadUmar248/clinic-backend/pkg/response"
)

// CtxDoctorIDKey is the Gin context key carrying the authenticated doctor id.
const CtxDoctorIDKey = "doctorID"

// Auth extracts the bearer token from the Authorization header, validates
// it, and injects the doctor id into the context. A missing, malformed,
// expired or mis-signed token aborts with 401.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			response.AbortError(c, http.StatusUnauthorized, "invalid authorization header", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(strings.TrimSpace(parts[1]))
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}
		c.Set(CtxDoctorIDKey, claims.DoctorID)
		c.Next()
	}
}
