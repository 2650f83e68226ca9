package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/commissaire-project/bootstrap-agent/api/v1"
	"github.com/commissaire-project/bootstrap-agent/internal/models"
)

// ListClusters returns every known cluster
// (GET /clusters)
func (h *Handler) ListClusters(c *gin.Context) {
	clusters, err := h.clusterSrv.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewClusterList(clusters))
}

// GetCluster returns one cluster by name
// (GET /cluster/:name)
func (h *Handler) GetCluster(c *gin.Context) {
	cluster, err := h.clusterSrv.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewCluster(cluster))
}

// SaveCluster creates or replaces a cluster
// (PUT /cluster/:name)
func (h *Handler) SaveCluster(c *gin.Context) {
	var req v1.SaveClusterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Message: "invalid request body"})
		return
	}

	cluster := &models.Cluster{Name: c.Param("name"), Network: req.Network}
	if err := h.clusterSrv.Save(c.Request.Context(), cluster); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v1.NewCluster(cluster))
}

// DeleteCluster removes a cluster and disassociates its hosts
// (DELETE /cluster/:name)
func (h *Handler) DeleteCluster(c *gin.Context) {
	if err := h.clusterSrv.Delete(c.Request.Context(), c.Param("name")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
