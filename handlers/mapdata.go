package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahyatri/sahyatri-backend/internal/mapdata"
	"github.com/sahyatri/sahyatri-backend/pkg/metrics"
)

// MapHandler serves the in-process map document. These routes are public:
// the frontend polls them without a token, and the bulk replace is an
// accepted, documented exposure of the upstream data contract.
type MapHandler struct {
	store *mapdata.Store
}

func NewMapHandler(store *mapdata.Store) *MapHandler {
	return &MapHandler{store: store}
}

// Register mounts the map routes on the unauthenticated root group.
func (h *MapHandler) Register(r *gin.Engine) {
	r.GET("/fetch_loc", h.Fetch)
	r.POST("/update_loc", h.Replace)
	r.POST("/update_co", h.UpsertPoint)
}

// Fetch returns the whole current document.
func (h *MapHandler) Fetch(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}

// Replace swaps in the caller-supplied document wholesale.
func (h *MapHandler) Replace(c *gin.Context) {
	var doc mapdata.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.store.Replace(doc)
	metrics.MapReplaces.Inc()
	c.String(http.StatusOK, "Map data updated successfully")
}

// UpsertPointRequest moves (or creates) the live marker with the given name.
type UpsertPointRequest struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

func (h *MapHandler) UpsertPoint(c *gin.Context) {
	var req UpsertPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points, updated := h.store.UpsertPoint(req.Name, req.Lat, req.Lng)
	msg := "Location added"
	kind := "appended"
	if updated {
		msg = "Location updated"
		kind = "updated"
	}
	metrics.PointUpserts.WithLabelValues(kind).Inc()
	c.JSON(http.StatusOK, gin.H{"message": msg, "points": points})
}
