package delivery

import (
	"net/http"
	"strings"

	"jobtrail-backend/internal/identity/domain"
	"jobtrail-backend/internal/identity/repository"
	"jobtrail-backend/internal/identity/verifier"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const claimsKey = "claims"

// AuthMiddleware resolves the caller's identity from the bearer token before
// any data access. As a side effect it refreshes the caller's profile cache;
// that write is best-effort and never blocks or fails the request.
func AuthMiddleware(v verifier.TokenVerifier, profiles repository.ProfileRepository, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		claims, err := v.Verify(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(claimsKey, claims)

		go func(claims domain.Claims) {
			profile := &domain.UserProfile{
				UserID:     claims.Subject,
				Email:      claims.Email,
				GivenName:  claims.GivenName,
				FamilyName: claims.FamilyName,
			}
			if err := profiles.Upsert(profile); err != nil {
				log.Error("error saving user profile", zap.String("user_id", claims.Subject), zap.Error(err))
			}
		}(*claims)

		c.Next()
	}
}

// ClaimsFromContext returns the identity set by AuthMiddleware.
func ClaimsFromContext(c *gin.Context) *domain.Claims {
	if v, ok := c.Get(claimsKey); ok {
		if claims, ok := v.(*domain.Claims); ok {
			return claims
		}
	}
	return nil
}
