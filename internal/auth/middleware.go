package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextKeyClaims = "auth_claims"

// ClaimsFromContext returns the claims set by RequireToken. ok is false if
// the middleware did not run or rejected the request.
func ClaimsFromContext(c *gin.Context) (Claims, bool) {
	v, ok := c.Get(contextKeyClaims)
	if !ok {
		return Claims{}, false
	}
	claims, ok := v.(Claims)
	return claims, ok
}

// RequireToken returns a middleware that checks the Authorization bearer
// token and sets the decoded claims in context. Missing or invalid tokens
// get 401; a token without an email claim is reported separately.
func RequireToken(codec *TokenCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}
		claims, err := codec.Validate(token)
		if err != nil {
			if errors.Is(err, ErrMissingEmailClaim) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token missing email field"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set(contextKeyClaims, claims)
		c.Next()
	}
}
