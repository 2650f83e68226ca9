package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
	"github.com/commissaire-project/bootstrap-agent/internal/store"
)

// NetworkService manages the network registry.
type NetworkService struct {
	store *store.Store
	log   *zap.SugaredLogger
}

func NewNetworkService(st *store.Store) *NetworkService {
	return &NetworkService{store: st, log: zap.S().Named("networks")}
}

func (s *NetworkService) Save(ctx context.Context, network *models.Network) error {
	if err := s.store.Networks().Save(ctx, network); err != nil {
		return err
	}
	s.log.Infow("network saved", "network", network.Name, "type", network.Type)
	return nil
}

func (s *NetworkService) Get(ctx context.Context, name string) (*models.Network, error) {
	return s.store.Networks().Get(ctx, name)
}

func (s *NetworkService) List(ctx context.Context) ([]models.Network, error) {
	return s.store.Networks().List(ctx)
}

func (s *NetworkService) Delete(ctx context.Context, name string) error {
	if err := s.store.Networks().Delete(ctx, name); err != nil {
		return err
	}
	s.log.Infow("network removed", "network", name)
	return nil
}
