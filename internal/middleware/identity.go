package middleware

import (
	"github.com/gin-gonic/gin"

	"blogapp/internal/app/session"
	"blogapp/internal/app/user"
)

const principalKey = "principal"

// IdentityMiddleware resolves the request's principal exactly once,
// from the session_key cookie (X-Session-Key header as fallback), and
// stores it on the context. A missing or unresolvable key is normal:
// the request continues with no principal and each operation decides
// what that means.
func IdentityMiddleware(sessions session.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		key, err := c.Cookie("session_key")
		if err != nil || key == "" {
			key = c.GetHeader("X-Session-Key")
		}
		if key != "" {
			if u, err := sessions.GetUserBySessionKey(c.Request.Context(), key); err == nil {
				c.Set(principalKey, u)
			}
		}
		c.Next()
	}
}

// Principal returns the resolved principal, or nil when the request
// is unauthenticated.
func Principal(c *gin.Context) *user.User {
	v, ok := c.Get(principalKey)
	if !ok {
		return nil
	}
	u, _ := v.(*user.User)
	return u
}
