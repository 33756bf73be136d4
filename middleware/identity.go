package middleware

import (
	"context"
	"net/http"
	"strings"

	"sevasetu/models"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "identity"

// IdentityVerifier is satisfied by *auth.Client.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

// Identity resolves the caller of customer endpoints. A valid Firebase ID
// token yields the signed-in identity. Without one, allowGuests decides for
// every route alike: the guest identity is used, or the request is rejected.
// A token that is present but invalid is always rejected.
func Identity(verifier IdentityVerifier, allowGuests bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") || verifier == nil {
			if !allowGuests {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Sign in to continue"})
				return
			}
			c.Set(identityKey, models.GuestIdentity())
			c.Next()
			return
		}

		token, err := verifier.VerifyIDToken(c.Request.Context(), strings.TrimSpace(strings.TrimPrefix(h, "Bearer ")))
		if err != nil {
			zap.L().Warn("ID token rejected", zap.String("ip", getClientIP(c)), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		identity := models.Identity{UID: token.UID}
		if name, ok := token.Claims["name"].(string); ok {
			identity.DisplayName = name
		}
		if email, ok := token.Claims["email"].(string); ok {
			identity.Email = email
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// GetIdentity returns the identity set by Identity, or the guest identity.
func GetIdentity(c *gin.Context) models.Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(models.Identity); ok {
			return identity
		}
	}
	return models.GuestIdentity()
}
