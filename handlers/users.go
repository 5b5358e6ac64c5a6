package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahyatri/sahyatri-backend/internal/users"
	"github.com/sahyatri/sahyatri-backend/pkg/logger"
	"github.com/sahyatri/sahyatri-backend/pkg/metrics"
)

// UserHandler exposes the login-sync endpoint.
type UserHandler struct {
	svc *users.Service
}

func NewUserHandler(svc *users.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register mounts the user routes on an auth-protected group.
func (h *UserHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/sync-user", h.SyncUser)
}

// SyncUser upserts the caller's profile from their validated token claims.
// The request carries no body; everything comes from the token.
func (h *UserHandler) SyncUser(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token claims"})
		return
	}

	u, err := h.svc.SyncFromClaims(c.Request.Context(), claims)
	if err != nil {
		logger.Errorf("user sync error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error syncing user"})
		return
	}
	if u == nil {
		logger.Errorf("user sync returned no user (claims missing 'sub')")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error syncing user"})
		return
	}

	metrics.UsersSynced.Inc()
	logger.Infof("user synced: %s", u.Auth0ID)
	c.JSON(http.StatusOK, u)
}

// claimsFromContext pulls the claims map the auth middleware stored.
func claimsFromContext(c *gin.Context) map[string]interface{} {
	v, ok := c.Get("claims")
	if !ok {
		return nil
	}
	claims, _ := v.(map[string]interface{})
	return claims
}
