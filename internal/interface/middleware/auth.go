package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VinaySonwane/note-App/internal/application"
	"github.com/VinaySonwane/note-App/internal/domain/entity"
	"github.com/VinaySonwane/note-App/pkg/response"
)

const (
	// CtxUserKey holds the resolved *entity.User for downstream handlers.
	CtxUserKey = "authUser"
	// CtxUserIDKey holds the resolved user ID.
	CtxUserIDKey = "userID"
)

// Auth validates the Authorization bearer token and resolves the acting
// user. Missing, malformed, tampered or expired tokens, and tokens whose
// subject no longer exists, all abort with 401. On success the resolved user
// is threaded through the Gin context for ownership checks.
func Auth(svc *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.AbortError(c, http.StatusUnauthorized, "not authorized, no token")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "not authorized, no token")
			return
		}

		u, err := svc.Authorize(c.Request.Context(), token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "not authorized, token failed")
			return
		}

		c.Set(CtxUserKey, u)
		c.Set(CtxUserIDKey, u.ID)
		c.Next()
	}
}

// UserFromCtx returns the authenticated user set by Auth.
func UserFromCtx(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(CtxUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok
}
