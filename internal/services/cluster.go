package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
	"github.com/commissaire-project/bootstrap-agent/internal/store"
)

// ClusterService manages the cluster registry.
type ClusterService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewClusterService(st *store.Store) *ClusterService {
	return &ClusterService{store: st, log: zap.S().Named("clusters")}
}

func (s *ClusterService) Save(ctx context.Context, cluster *models.Cluster) error {
	if err := s.store.Clusters().Save(ctx, cluster); err != nil {
		return err
	}
	s.log.Infow("cluster saved", "cluster", cluster.Name, "network", cluster.Network)
	return nil
}

func (s *ClusterService) Get(ctx context.Context, name string) (*models.Cluster, error) {
	return s.store.Clusters().Get(ctx, name)
}

func (s *ClusterService) List(ctx context.Context) ([]models.Cluster, error) {
	return s.store.Clusters().List(ctx)
}

// Delete removes a cluster and marks its hosts disassociated so they stay
// visible in the registry without a dangling cluster reference.
func (s *ClusterService) Delete(ctx context.Context, name string) error {
	if err := s.store.Clusters().Delete(ctx, name); err != nil {
		return err
	}

	hosts, err := s.store.Hosts().List(ctx)
	if err != nil {
		return err
	}
	for i := range hosts {
		if hosts[i].Cluster != name {
			continue
		}
		if err := s.store.Hosts().UpdateStatus(ctx, hosts[i].Address, models.HostStatusDisassociated); err != nil {
			return err
		}
	}

	s.log.Infow("cluster removed", "cluster", name)
	return nil
}
