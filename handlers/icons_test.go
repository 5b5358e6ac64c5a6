package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/sahyatri/sahyatri-backend/internal/mapdata"
)

func TestUploadIcon_StorageUnconfigured(t *testing.T) {
	h := NewIconHandler(nil, mapdata.NewStore())
	r := gin.New()
	api := r.Group("/api", injectClaims(map[string]interface{}{"sub": "auth0|admin"}))
	h.Register(api)

	req := httptest.NewRequest("POST", "/api/places/DB%20City%20Mall/icon", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}
