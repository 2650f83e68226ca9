package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/commissaire-project/bootstrap-agent/api/v1"
	"github.com/commissaire-project/bootstrap-agent/internal/models"
)

// ListNetworks returns every known network
// (GET /networks)
func (h *Handler) ListNetworks(c *gin.Context) {
	networks, err := h.networkSrv.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewNetworkList(networks))
}

// GetNetwork returns one network by name
// (GET /network/:name)
func (h *Handler) GetNetwork(c *gin.Context) {
	network, err := h.networkSrv.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, v1.NewNetwork(network))
}

// SaveNetwork creates or replaces a network
// (PUT /network/:name)
func (h *Handler) SaveNetwork(c *gin.Context) {
	var req v1.SaveNetworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Message: "invalid request body"})
		return
	}

	networkType, err := models.ParseNetworkType(req.Type)
	if err != nil {
		c.JSON(http.StatusBadRequest, v1.Error{Message: err.Error()})
		return
	}

	network := &models.Network{Name: c.Param("name"), Type: networkType, Options: req.Options}
	if err := h.networkSrv.Save(c.Request.Context(), network); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v1.NewNetwork(network))
}

// DeleteNetwork removes a network
// (DELETE /network/:name)
func (h *Handler) DeleteNetwork(c *gin.Context) {
	if err := h.networkSrv.Delete(c.Request.Context(), c.Param("name")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
