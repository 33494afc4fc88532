package verifier

import (
	"context"
	"fmt"

	"jobtrail-backend/internal/identity/domain"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// FirebaseVerifier delegates token validation to Firebase Auth, the managed
// identity provider. User sign-up, sign-in and password reset flows all live
// on the provider side; the backend only sees verified ID tokens.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(ctx context.Context, credentialsFile string) (*FirebaseVerifier, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase auth client: %w", err)
	}

	return &FirebaseVerifier{client: client}, nil
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*domain.Claims, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}

	claims := &domain.Claims{Subject: decoded.UID}
	claims.Email, _ = decoded.Claims["email"].(string)
	claims.GivenName, _ = decoded.Claims["given_name"].(string)
	claims.FamilyName, _ = decoded.Claims["family_name"].(string)
	return claims, nil
}
