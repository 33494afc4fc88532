package verifier

import (
	"context"
	"fmt"

	"jobtrail-backend/internal/identity/domain"
)

// TokenVerifier validates a bearer token and resolves the caller's identity.
// Implement this interface to add new identity providers.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Claims, error)
}

// ProviderType selects the identity provider.
type ProviderType string

const (
	ProviderFirebase ProviderType = "firebase"
	ProviderJWT      ProviderType = "jwt"
)

// Config holds identity provider configuration.
type Config struct {
	Provider ProviderType

	// JWT (shared-secret) provider
	Secret string

	// Firebase provider
	CredentialsFile string
}

// New creates a TokenVerifier based on the config.
func New(ctx context.Context, cfg Config) (TokenVerifier, error) {
	switch cfg.Provider {
	case ProviderFirebase:
		return NewFirebaseVerifier(ctx, cfg.CredentialsFile)

	case ProviderJWT:
		if cfg.Secret == "" {
			return nil, fmt.Errorf("JWT_SECRET is required for jwt provider")
		}
		return NewJWTVerifier(cfg.Secret), nil

	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Provider)
	}
}
