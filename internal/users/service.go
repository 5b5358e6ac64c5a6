package users

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/sahyatri/sahyatri-backend/internal/models"
)

// Service maps validated token claims onto persisted user profiles.
type Service struct {
	repo      Repository
	namespace string
}

// NewService creates the user sync service. namespace is the Auth0 custom
// claims namespace; namespaced keys ("<namespace>/name") win over bare keys.
func NewService(r Repository, namespace string) *Service {
	return &Service{repo: r, namespace: namespace}
}

// SyncFromClaims upserts the user identified by the "sub" claim.
// Fields whose claims are absent are left out of the update entirely, so a
// login without a profile claim never blanks a stored value. lastLogin is
// always stamped with the current time. Returns nil when "sub" is missing.
func (s *Service) SyncFromClaims(ctx context.Context, claims map[string]interface{}) (*models.User, error) {
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, nil
	}

	fields := bson.M{
		"lastLogin": time.Now().UTC(),
		"roles":     s.rolesClaim(claims),
	}
	for _, key := range []string{"name", "picture", "email"} {
		if v, ok := s.stringClaim(claims, key); ok {
			fields[key] = v
		}
	}

	u, err := s.repo.UpsertByAuth0ID(ctx, sub, fields)
	if err != nil {
		return nil, fmt.Errorf("sync user %q: %w", sub, err)
	}
	return u, nil
}

// GetByAuth0ID returns the stored user, or nil when unknown.
func (s *Service) GetByAuth0ID(ctx context.Context, auth0ID string) (*models.User, error) {
	return s.repo.GetByAuth0ID(ctx, auth0ID)
}

// stringClaim resolves a profile claim, namespaced key first, bare key as
// fallback. Empty strings count as absent, matching the issuer's behavior of
// omitting unset profile attributes.
func (s *Service) stringClaim(claims map[string]interface{}, key string) (string, bool) {
	if v, ok := claims[s.namespace+"/"+key].(string); ok && v != "" {
		return v, true
	}
	if v, ok := claims[key].(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// rolesClaim resolves the role list; a missing claim yields an empty list so
// roles is always written.
func (s *Service) rolesClaim(claims map[string]interface{}) []string {
	for _, key := range []string{s.namespace + "/roles", "roles"} {
		raw, ok := claims[key].([]interface{})
		if !ok {
			continue
		}
		out := make([]string, 0, len(raw))
		for _, r := range raw {
			if v, ok := r.(string); ok {
				out = append(out, v)
			}
		}
		return out
	}
	return []string{}
}
