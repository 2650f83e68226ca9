package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
	"github.com/commissaire-project/bootstrap-agent/internal/store"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

// Investigator kicks off and reports on the bootstrap pipeline.
type Investigator interface {
	Investigate(host *models.Host) error
	Status(address string) models.BootstrapStatus
}

// HostService owns the host registry. Registering a host persists it and
// hands it to the investigator; the pipeline takes it from there.
type HostService struct {
	store        *store.Store
	investigator Investigator
	log          *zap.SugaredLogger
}

func NewHostService(st *store.Store, investigator Investigator) *HostService {
	return &HostService{
		store:        st,
		investigator: investigator,
		log:          zap.S().Named("hosts"),
	}
}

// Register persists the host in the investigating state and schedules its
// pipeline. Re-registering a host that is mid-pipeline returns
// BootstrapInProgressError without touching the stored record.
func (s *HostService) Register(ctx context.Context, host *models.Host) error {
	if status := s.investigator.Status(host.Address); status.State == models.BootstrapStateInvestigating ||
		status.State == models.BootstrapStateProvisioning {
		return srvErrors.NewBootstrapInProgressError()
	}

	host.Status = models.HostStatusInvestigating
	if err := s.store.Hosts().Save(ctx, host); err != nil {
		return err
	}
	s.log.Infow("host registered", "host", host.Address, "cluster", host.Cluster)

	return s.investigator.Investigate(host)
}

func (s *HostService) Get(ctx context.Context, address string) (*models.Host, error) {
	return s.store.Hosts().Get(ctx, address)
}

func (s *HostService) List(ctx context.Context) ([]models.Host, error) {
	return s.store.Hosts().List(ctx)
}

// Status reports both the stored lifecycle state and the live pipeline
// state for a host.
func (s *HostService) Status(ctx context.Context, address string) (*models.Host, models.BootstrapStatus, error) {
	host, err := s.store.Hosts().Get(ctx, address)
	if err != nil {
		return nil, models.BootstrapStatus{}, err
	}
	return host, s.investigator.Status(address), nil
}

func (s *HostService) Delete(ctx context.Context, address string) error {
	if err := s.store.Hosts().Delete(ctx, address); err != nil {
		return err
	}
	s.log.Infow("host removed", "host", address)
	return nil
}
