package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ViewerKey is the gin context key carrying the resolved viewer id.
const ViewerKey = "viewerId"

// ViewerMiddleware resolves the opaque viewer identity for downstream
// handlers. Authentication itself lives in the external auth service; this
// only plumbs the id through, preferring the `sub` claim of a Bearer token
// (HS256, shared secret) and falling back to the X-Viewer-Id header. An
// empty viewer id is allowed — the access gate treats it as an anonymous
// public reader.
func ViewerMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth := c.GetHeader("Authorization"); auth != "" && secret != "" {
			raw := strings.TrimPrefix(auth, "Bearer ")
			if raw != auth {
				if sub := subjectFromToken(raw, secret); sub != "" {
					c.Set(ViewerKey, sub)
					c.Next()
					return
				}
			}
		}
		c.Set(ViewerKey, strings.TrimSpace(c.GetHeader("X-Viewer-Id")))
		c.Next()
	}
}

// ViewerID returns the viewer id set by ViewerMiddleware, or "".
func ViewerID(c *gin.Context) string {
	if v, ok := c.Get(ViewerKey); ok {
		if s, ok2 := v.(string); ok2 {
			return s
		}
	}
	return ""
}

func subjectFromToken(raw, secret string) string {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return ""
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sub, _ := claims["sub"].(string)
	return sub
}
