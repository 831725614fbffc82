package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func viewerEcho(secret string) *gin.Engine {
	r := gin.New()
	r.Use(ViewerMiddleware(secret))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"viewer": ViewerID(c)})
	})
	return r
}

func TestViewerMiddleware_HeaderFallback(t *testing.T) {
	r := viewerEcho("secret")
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("X-Viewer-Id", "writer-aria")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "writer-aria")
}

func TestViewerMiddleware_BearerSubject(t *testing.T) {
	secret := "test-secret"
	claims := jwt.MapClaims{
		"sub": "writer-jules",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Minute).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	r := viewerEcho(secret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "writer-jules")
}

func TestViewerMiddleware_BadTokenFallsBackToHeader(t *testing.T) {
	r := viewerEcho("test-secret")
	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	req.Header.Set("X-Viewer-Id", "writer-ronin")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "writer-ronin")
}

func TestViewerMiddleware_Anonymous(t *testing.T) {
	r := viewerEcho("")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/whoami", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"viewer":""`)
}
