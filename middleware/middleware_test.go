package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sevasetu/config"
	"sevasetu/models"
	"sevasetu/utils"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier struct {
	tokens map[string]*auth.Token
}

func (s stubVerifier) VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error) {
	if t, ok := s.tokens[idToken]; ok {
		return t, nil
	}
	return nil, errors.New("token expired")
}

func identityRouter(verifier IdentityVerifier, allowGuests bool, seen *models.Identity) *gin.Engine {
	r := gin.New()
	r.GET("/me", Identity(verifier, allowGuests), func(c *gin.Context) {
		*seen = GetIdentity(c)
		c.Status(http.StatusOK)
	})
	return r
}

func TestIdentity(t *testing.T) {
	verifier := stubVerifier{tokens: map[string]*auth.Token{
		"good": {UID: "u1", Claims: map[string]interface{}{"name": "Asha", "email": "asha@example.com"}},
	}}

	tests := []struct {
		name        string
		header      string
		allowGuests bool
		status      int
		want        models.Identity
	}{
		{"signed in", "Bearer good", false, http.StatusOK, models.Identity{UID: "u1", DisplayName: "Asha", Email: "asha@example.com"}},
		{"guest allowed", "", true, http.StatusOK, models.GuestIdentity()},
		{"guest refused", "", false, http.StatusUnauthorized, models.Identity{}},
		{"bad token with guests allowed", "Bearer stale", true, http.StatusUnauthorized, models.Identity{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var seen models.Identity
			r := identityRouter(verifier, tt.allowGuests, &seen)
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.want, seen)
		})
	}
}

func TestJWTAuthAdminMiddleware(t *testing.T) {
	prev := config.AppConfig
	t.Cleanup(func() { config.AppConfig = prev })
	config.AppConfig.JWTSecret = "test-secret"

	admin, err := utils.GenerateToken(utils.AdminRole, utils.AdminRole, time.Hour)
	require.NoError(t, err)
	other, err := utils.GenerateToken("someone", "user", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/admin", JWTAuthAdminMiddleware(), func(c *gin.Context) { c.Status(http.StatusNoContent) })

	do := func(path, header string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusNoContent, do("/admin", "Bearer "+admin))
	assert.Equal(t, http.StatusNoContent, do("/admin?token="+admin, ""))
	assert.Equal(t, http.StatusForbidden, do("/admin", "Bearer "+other))
	assert.Equal(t, http.StatusUnauthorized, do("/admin", "Bearer garbage"))
	assert.Equal(t, http.StatusUnauthorized, do("/admin", ""))
}

func TestCartSession(t *testing.T) {
	r := gin.New()
	var seen string
	r.GET("/cart", CartSession(), func(c *gin.Context) {
		seen = GetCartID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	issued := w.Header().Get(utils.CartIDHeader)
	assert.NotEmpty(t, issued)
	assert.Equal(t, issued, seen)

	req = httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.Header.Set(utils.CartIDHeader, "cart-42")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "cart-42", w.Header().Get(utils.CartIDHeader))
	assert.Equal(t, "cart-42", seen)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimitMiddleware(2), func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "198.51.100.1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
