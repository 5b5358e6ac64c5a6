package handlers

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sahyatri/sahyatri-backend/internal/mapdata"
	"github.com/sahyatri/sahyatri-backend/internal/storage"
	"github.com/sahyatri/sahyatri-backend/pkg/logger"
)

// iconURLTTL is the presign window; MinIO caps presigned URLs at 7 days.
const iconURLTTL = 7 * 24 * time.Hour

// IconHandler uploads place icon images to object storage and stamps the
// matching place with the resulting URL. icons is nil when MinIO is not
// configured; the endpoint then answers 503.
type IconHandler struct {
	icons    *storage.IconStore
	mapStore *mapdata.Store
}

func NewIconHandler(icons *storage.IconStore, mapStore *mapdata.Store) *IconHandler {
	return &IconHandler{icons: icons, mapStore: mapStore}
}

// Register mounts the icon routes on an auth-protected group.
func (h *IconHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/places/:name/icon", h.Upload)
}

func (h *IconHandler) Upload(c *gin.Context) {
	if h.icons == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "icon storage not configured"})
		return
	}

	name := c.Param("name")
	fh, err := c.FormFile("icon")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "icon file is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable icon file"})
		return
	}
	defer f.Close()

	key := "icons/" + uuid.NewString() + filepath.Ext(fh.Filename)
	contentType := fh.Header.Get("Content-Type")
	if err := h.icons.Upload(c.Request.Context(), key, f, fh.Size, contentType); err != nil {
		logger.Errorf("icon upload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "icon upload failed"})
		return
	}

	iconURL, err := h.icons.PresignedURL(c.Request.Context(), key, iconURLTTL)
	if err != nil {
		logger.Errorf("icon presign error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "icon upload failed"})
		return
	}

	if !h.mapStore.SetPlaceIcon(name, iconURL) {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown place"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"name": name, "icon": iconURL})
}
