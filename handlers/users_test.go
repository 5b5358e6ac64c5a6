package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/sahyatri/sahyatri-backend/internal/models"
	"github.com/sahyatri/sahyatri-backend/internal/oidc"
	"github.com/sahyatri/sahyatri-backend/internal/users"
	"github.com/sahyatri/sahyatri-backend/pkg/middleware"
)

const testNamespace = "https://sahyatri-ten.vercel.app"

// fake user repo
type fakeUserRepo struct {
	upserts int
	byID    map[string]*models.User
}

func (f *fakeUserRepo) UpsertByAuth0ID(ctx context.Context, auth0ID string, fields bson.M) (*models.User, error) {
	f.upserts++
	if f.byID == nil {
		f.byID = map[string]*models.User{}
	}
	u, ok := f.byID[auth0ID]
	if !ok {
		u = &models.User{Auth0ID: auth0ID}
		f.byID[auth0ID] = u
	}
	if v, ok := fields["name"].(string); ok {
		u.Name = v
	}
	if v, ok := fields["email"].(string); ok {
		u.Email = v
	}
	if v, ok := fields["picture"].(string); ok {
		u.Picture = v
	}
	return u, nil
}

func (f *fakeUserRepo) GetByAuth0ID(ctx context.Context, auth0ID string) (*models.User, error) {
	return f.byID[auth0ID], nil
}

// injectClaims stands in for the auth middleware in handler-level tests.
func injectClaims(claims map[string]interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("claims", claims)
		c.Next()
	}
}

func TestSyncUser(t *testing.T) {
	repo := &fakeUserRepo{}
	h := NewUserHandler(users.NewService(repo, testNamespace))

	r := gin.New()
	api := r.Group("/api", injectClaims(map[string]interface{}{
		"sub":   "auth0|abc123",
		"name":  "Alice",
		"email": "alice@example.com",
	}))
	h.Register(api)

	req := httptest.NewRequest("POST", "/api/sync-user", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "auth0|abc123", got.Auth0ID)
	assert.Equal(t, "Alice", got.Name)

	// syncing again must hit the same record, not create another
	req2 := httptest.NewRequest("POST", "/api/sync-user", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, 2, repo.upserts)
	assert.Len(t, repo.byID, 1)
}

func TestSyncUser_MissingSubject(t *testing.T) {
	repo := &fakeUserRepo{}
	h := NewUserHandler(users.NewService(repo, testNamespace))

	r := gin.New()
	api := r.Group("/api", injectClaims(map[string]interface{}{"email": "nosub@example.com"}))
	h.Register(api)

	req := httptest.NewRequest("POST", "/api/sync-user", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 0, repo.upserts)
}

func TestSyncUser_ThroughAuthMiddleware(t *testing.T) {
	repo := &fakeUserRepo{}
	h := NewUserHandler(users.NewService(repo, testNamespace))

	r := gin.New()
	api := r.Group("/api", middleware.AuthMiddleware(oidc.NewInsecureVerifier()))
	h.Register(api)

	// token parsed without signature verification by the insecure verifier
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":                   "auth0|via-token",
		testNamespace + "/name": "Token Name",
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/sync-user", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "auth0|via-token", got.Auth0ID)
	assert.Equal(t, "Token Name", got.Name)

	// no token -> rejected before the handler runs
	req2 := httptest.NewRequest("POST", "/api/sync-user", nil)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	require.Equal(t, http.StatusUnauthorized, w2.Code)
}
