package services

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/commissaire-project/bootstrap-agent/internal/config"
	"github.com/commissaire-project/bootstrap-agent/internal/models"
	"github.com/commissaire-project/bootstrap-agent/internal/store"
	"github.com/commissaire-project/bootstrap-agent/pkg/ansible"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
	"github.com/commissaire-project/bootstrap-agent/pkg/oscmd"
	"github.com/commissaire-project/bootstrap-agent/pkg/scheduler"
)

// BootstrapService drives the host provisioning pipeline: it builds the
// play variables, invokes the automation run through the injected runner
// and interprets the raw status. Retry policy belongs to the caller; the
// service never retries a run.
type BootstrapService struct {
	runner        ansible.Runner
	store         *store.Store
	scheduler     *scheduler.Scheduler
	runbookFolder string
	backends      []models.StoreBackend

	mu     sync.Mutex
	active map[string]models.BootstrapStatus
}

func NewBootstrapService(
	runner ansible.Runner,
	st *store.Store,
	sched *scheduler.Scheduler,
	runbookFolder string,
	backends []models.StoreBackend,
) *BootstrapService {
	return &BootstrapService{
		runner:        runner,
		store:         st,
		scheduler:     sched,
		runbookFolder: runbookFolder,
		backends:      backends,
		active:        map[string]models.BootstrapStatus{},
	}
}

// Status returns the pipeline state for a host. Hosts without an active
// or finished pipeline report ready.
func (s *BootstrapService) Status(address string) models.BootstrapStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	if status, ok := s.active[address]; ok {
		return status
	}
	return models.BootstrapStatus{State: models.BootstrapStateReady, Host: address}
}

// GetInfo runs the read-only fact-gathering runbook against the host and
// normalizes the reported facts. A nonzero run status is returned in the
// result, not as an error; facts are empty in that case.
func (s *BootstrapService) GetInfo(ctx context.Context, host *models.Host) (models.RunResult, error) {
	res, err := s.runner.Run(ctx, ansible.RunOptions{
		Host:    host.Address,
		KeyPath: host.SSHKeyPath,
		Runbook: filepath.Join(s.runbookFolder, config.GetInfoRunbook),
	})
	if err != nil {
		return models.RunResult{}, err
	}
	if res.Status != 0 {
		return models.RunResult{Status: res.Status}, nil
	}

	facts, err := ansible.NormalizeFacts(host.Address, res.Facts)
	if err != nil {
		return models.RunResult{}, err
	}
	return models.RunResult{Status: 0, Facts: &facts}, nil
}

// Bootstrap builds the play variables for the host and executes the
// provisioning runbook. On success the facts gathered by the preceding
// investigation ride along in the result; on a nonzero status they are
// left empty.
func (s *BootstrapService) Bootstrap(ctx context.Context, host *models.Host, cmd oscmd.OSCmd) (models.RunResult, error) {
	vars, err := s.buildPlayVars(ctx, host, cmd)
	if err != nil {
		return models.RunResult{}, err
	}

	res, err := s.runner.Run(ctx, ansible.RunOptions{
		Host:    host.Address,
		KeyPath: host.SSHKeyPath,
		Runbook: filepath.Join(s.runbookFolder, config.BootstrapRunbook),
		Vars:    vars,
	})
	if err != nil {
		return models.RunResult{}, err
	}
	if res.Status != 0 {
		return models.RunResult{Status: res.Status}, nil
	}
	return models.RunResult{Status: 0, Facts: host.Facts}, nil
}

// Investigate schedules the full pipeline for the host: fact gathering,
// OS command resolution, then bootstrap. One pipeline per host at a time.
func (s *BootstrapService) Investigate(host *models.Host) error {
	s.mu.Lock()
	if status, ok := s.active[host.Address]; ok &&
		(status.State == models.BootstrapStateInvestigating || status.State == models.BootstrapStateProvisioning) {
		s.mu.Unlock()
		return srvErrors.NewBootstrapInProgressError()
	}
	s.active[host.Address] = models.BootstrapStatus{
		State: models.BootstrapStateInvestigating,
		Host:  host.Address,
	}
	s.mu.Unlock()

	// The pipeline owns its copy; the caller's host is never written to
	// after scheduling.
	pipelineHost := *host
	s.scheduler.AddWork(func(ctx context.Context) (any, error) {
		return nil, s.runPipeline(ctx, &pipelineHost)
	})
	return nil
}

func (s *BootstrapService) runPipeline(ctx context.Context, host *models.Host) error {
	log := zap.S().Named("bootstrap")

	fail := func(err error) error {
		s.setState(models.BootstrapStatus{State: models.BootstrapStateError, Host: host.Address, Error: err})
		if storeErr := s.store.Hosts().UpdateStatus(ctx, host.Address, models.HostStatusFailed); storeErr != nil {
			log.Warnw("unable to record failed status", "host", host.Address, "error", storeErr)
		}
		log.Errorw("pipeline failed", "host", host.Address, "error", err)
		return err
	}

	if err := s.store.Hosts().UpdateStatus(ctx, host.Address, models.HostStatusInvestigating); err != nil {
		return fail(err)
	}

	info, err := s.GetInfo(ctx, host)
	if err != nil {
		return fail(err)
	}
	if !info.Succeeded() {
		return fail(srvErrors.NewRunFailedError(info.Status))
	}

	family, err := models.ParseOSFamily(info.Facts.OS)
	if err != nil {
		return fail(srvErrors.NewUnsupportedOSError(info.Facts.OS))
	}
	if err := s.store.Hosts().SaveFacts(ctx, host.Address, family, info.Facts); err != nil {
		return fail(err)
	}
	host.OSFamily = family
	host.Facts = info.Facts

	cmd, err := oscmd.Get(family)
	if err != nil {
		return fail(err)
	}

	s.setState(models.BootstrapStatus{State: models.BootstrapStateProvisioning, Host: host.Address})
	if err := s.store.Hosts().UpdateStatus(ctx, host.Address, models.HostStatusBootstrapping); err != nil {
		return fail(err)
	}

	res, err := s.Bootstrap(ctx, host, cmd)
	if err != nil {
		return fail(err)
	}
	if !res.Succeeded() {
		return fail(srvErrors.NewRunFailedError(res.Status))
	}

	if err := s.store.Hosts().UpdateStatus(ctx, host.Address, models.HostStatusActive); err != nil {
		return fail(err)
	}
	s.setState(models.BootstrapStatus{State: models.BootstrapStateDone, Host: host.Address})

	log.Infow("host bootstrapped", "host", host.Address, "os", host.Facts.OS)
	return nil
}

func (s *BootstrapService) setState(status models.BootstrapStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active[status.Host] = status
}

func (s *BootstrapService) buildPlayVars(ctx context.Context, host *models.Host, cmd oscmd.OSCmd) (map[string]string, error) {
	network, err := s.resolveNetwork(ctx, host)
	if err != nil {
		return nil, err
	}

	vars, err := ansible.StoreBackendVars(s.backends, network)
	if err != nil {
		return nil, err
	}

	vars["commissaire_targets"] = host.Address
	vars["commissaire_target_ssh_key_path"] = host.SSHKeyPath
	vars["commissaire_install_docker"] = strings.Join(cmd.InstallDocker(), " ")
	vars["commissaire_install_kube"] = strings.Join(cmd.InstallKube(), " ")
	vars["commissaire_enable_pkg_repos"] = cmd.EnableReposCommand()

	return vars, nil
}

// resolveNetwork walks host -> cluster -> network. A host outside any
// cluster, or a dangling reference, bootstraps without network-dependent
// variables rather than failing the whole run.
func (s *BootstrapService) resolveNetwork(ctx context.Context, host *models.Host) (*models.Network, error) {
	if host.Cluster == "" {
		return nil, nil
	}

	cluster, err := s.store.Clusters().Get(ctx, host.Cluster)
	if srvErrors.IsResourceNotFoundError(err) {
		zap.S().Named("bootstrap").Warnw("host references an unknown cluster", "host", host.Address, "cluster", host.Cluster)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if cluster.Network == "" {
		return nil, nil
	}

	network, err := s.store.Networks().Get(ctx, cluster.Network)
	if srvErrors.IsResourceNotFoundError(err) {
		zap.S().Named("bootstrap").Warnw("cluster references an unknown network", "cluster", cluster.Name, "network", cluster.Network)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return network, nil
}
