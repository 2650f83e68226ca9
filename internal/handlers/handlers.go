package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/commissaire-project/bootstrap-agent/api/v1"
	"github.com/commissaire-project/bootstrap-agent/internal/models"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

// HostService is the slice of the host service the handlers consume.
type HostService interface {
	Register(ctx context.Context, host *models.Host) error
	Get(ctx context.Context, address string) (*models.Host, error)
	List(ctx context.Context) ([]models.Host, error)
	Status(ctx context.Context, address string) (*models.Host, models.BootstrapStatus, error)
	Delete(ctx context.Context, address string) error
}

// ClusterService is the slice of the cluster service the handlers consume.
type ClusterService interface {
	Save(ctx context.Context, cluster *models.Cluster) error
	Get(ctx context.Context, name string) (*models.Cluster, error)
	List(ctx context.Context) ([]models.Cluster, error)
	Delete(ctx context.Context, name string) error
}

// NetworkService is the slice of the network service the handlers consume.
type NetworkService interface {
	Save(ctx context.Context, network *models.Network) error
	Get(ctx context.Context, name string) (*models.Network, error)
	List(ctx context.Context) ([]models.Network, error)
	Delete(ctx context.Context, name string) error
}

type Handler struct {
	hostSrv    HostService
	clusterSrv ClusterService
	networkSrv NetworkService
}

func New(hostSrv HostService, clusterSrv ClusterService, networkSrv NetworkService) *Handler {
	return &Handler{
		hostSrv:    hostSrv,
		clusterSrv: clusterSrv,
		networkSrv: networkSrv,
	}
}

// writeError maps typed service errors onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	switch {
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, v1.Error{Message: err.Error()})
	case srvErrors.IsBootstrapInProgressError(err):
		c.JSON(http.StatusConflict, v1.Error{Message: err.Error()})
	case srvErrors.IsConfigurationError(err), srvErrors.IsUnsupportedOSError(err):
		c.JSON(http.StatusBadRequest, v1.Error{Message: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, v1.Error{Message: err.Error()})
	}
}
