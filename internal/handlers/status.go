package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/commissaire-project/bootstrap-agent/api/v1"
)

// GetAgentStatus summarizes the registry
// (GET /status)
func (h *Handler) GetAgentStatus(c *gin.Context) {
	ctx := c.Request.Context()

	hosts, err := h.hostSrv.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	clusters, err := h.clusterSrv.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}
	networks, err := h.networkSrv.List(ctx)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, v1.NewAgentStatus(hosts, clusters, networks))
}
