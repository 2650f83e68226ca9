package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/commissaire-project/bootstrap-agent/api/v1"
)

// ListHosts returns every registered host
// (GET /hosts)
func (h *Handler) ListHosts(c *gin.Context) {
	hosts, err := h.hostSrv.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewHostList(hosts))
}

// GetHost returns one host by address
// (GET /host/:address)
func (h *Handler) GetHost(c *gin.Context) {
	host, err := h.hostSrv.Get(c.Request.Context(), c.Param("address"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewHost(host))
}

// RegisterHost registers a host and starts its pipeline
// (PUT /host/:address)
func (h *Handler) RegisterHost(c *gin.Context) {
	var req v1.RegisterHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Message: "invalid request body"})
		return
	}

	host := req.ToModel(c.Param("address"))
	if err := h.hostSrv.Register(c.Request.Context(), host); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v1.NewHost(host))
}

// GetHostStatus returns the stored and live pipeline state of a host
// (GET /host/:address/status)
func (h *Handler) GetHostStatus(c *gin.Context) {
	host, status, err := h.hostSrv.Status(c.Request.Context(), c.Param("address"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewHostStatus(host, status))
}

// GetHostFacts returns the normalized facts gathered for a host
// (GET /host/:address/facts)
func (h *Handler) GetHostFacts(c *gin.Context) {
	host, err := h.hostSrv.Get(c.Request.Context(), c.Param("address"))
	if err != nil {
		writeError(c, err)
		return
	}
	if host.Facts == nil {
		c.JSON(http.StatusNotFound, v1.Error{Message: "no facts gathered for host"})
		return
	}
	c.JSON(http.StatusOK, v1.NewHost(host).Facts)
}

// DeleteHost removes a host from the registry
// (DELETE /host/:address)
func (h *Handler) DeleteHost(c *gin.Context) {
	if err := h.hostSrv.Delete(c.Request.Context(), c.Param("address")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
