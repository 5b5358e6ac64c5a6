package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahyatri/sahyatri-backend/internal/complaints"
	"github.com/sahyatri/sahyatri-backend/pkg/logger"
	"github.com/sahyatri/sahyatri-backend/pkg/metrics"
)

// ComplaintRequest is the submission body. The filer identity is taken from
// the token, never from the body.
type ComplaintRequest struct {
	ZoneName string `json:"zoneName"`
	Details  string `json:"details"`
}

// ComplaintHandler exposes complaint filing.
type ComplaintHandler struct {
	svc *complaints.Service
}

func NewComplaintHandler(svc *complaints.Service) *ComplaintHandler {
	return &ComplaintHandler{svc: svc}
}

// Register mounts the complaint routes on an auth-protected group.
func (h *ComplaintHandler) Register(rg *gin.RouterGroup) {
	rg.POST("/complaints", h.File)
}

func (h *ComplaintHandler) File(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token claims"})
		return
	}
	filedBy, _ := claims["sub"].(string)

	var req ComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.ComplaintsFiled.WithLabelValues("rejected").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec, err := h.svc.File(c.Request.Context(), req.ZoneName, req.Details, filedBy)
	if err != nil {
		if errors.Is(err, complaints.ErrMissingFields) {
			metrics.ComplaintsFiled.WithLabelValues("rejected").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Errorf("complaint insert error: %v", err)
		metrics.ComplaintsFiled.WithLabelValues("failed").Inc()
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error filing complaint"})
		return
	}

	metrics.ComplaintsFiled.WithLabelValues("accepted").Inc()
	c.JSON(http.StatusCreated, rec)
}
