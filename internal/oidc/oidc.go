package oidc

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/sahyatri/sahyatri-backend/pkg/middleware"
)

// Verifier wraps the OIDC provider and token verifier. Tokens must be signed
// RS256 by the configured issuer and carry the configured audience.
type Verifier struct {
	provider *oidc.Provider
	verifier *oidc.IDTokenVerifier
}

// NewVerifier discovers the issuer's keys and returns a verifier pinned to
// the given audience.
func NewVerifier(ctx context.Context, issuerBaseURL, audience string) (*Verifier, error) {
	provider, err := oidc.NewProvider(ctx, issuerBaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}
	verifier := provider.Verifier(&oidc.Config{
		ClientID:             audience,
		SupportedSigningAlgs: []string{oidc.RS256},
	})
	return &Verifier{provider: provider, verifier: verifier}, nil
}

// Verify checks the raw bearer token and returns it as a middleware.Token.
func (v *Verifier) Verify(ctx context.Context, raw string) (middleware.Token, error) {
	idToken, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, err
	}
	return idToken, nil
}
