package ansible

import (
	"fmt"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

// StoreBackendVars translates the configured persistent-store backends into
// flat play variables. Each backend type owns a disjoint variable prefix, so
// translation never overwrites across backends. Backend types the agent does
// not model are skipped for forward compatibility.
//
// The network is consulted only for backends whose variables depend on the
// cluster network topology (the flannel key lives under the etcd tree).
func StoreBackendVars(backends []models.StoreBackend, network *models.Network) (map[string]string, error) {
	vars := map[string]string{}

	for _, backend := range backends {
		switch backend.Type {
		case models.StoreBackendEtcd:
			if err := etcdVars(backend, network, vars); err != nil {
				return nil, err
			}
		case models.StoreBackendKubernetes:
			if err := kubernetesVars(backend, vars); err != nil {
				return nil, err
			}
		default:
			// Unrecognized store types are not an error; a newer server
			// may register handlers this agent does not translate yet.
		}
	}

	return vars, nil
}

func etcdVars(backend models.StoreBackend, network *models.Network, vars map[string]string) error {
	if backend.ServerURL == "" {
		return srvErrors.NewConfigurationError("etcd store backend requires a server_url")
	}

	vars["commissaire_etcd_server_url"] = backend.ServerURL
	if backend.CertificateCAPath != "" {
		vars["commissaire_etcd_ca_path_local"] = backend.CertificateCAPath
	}
	if backend.CertificatePath != "" {
		vars["commissaire_etcd_client_cert_path_local"] = backend.CertificatePath
	}
	if backend.CertificateKeyPath != "" {
		vars["commissaire_etcd_client_key_path_local"] = backend.CertificateKeyPath
	}

	if network != nil && network.Type == models.NetworkTypeFlannelEtcd {
		vars["commissaire_flannel_key"] = fmt.Sprintf("/commissaire/networks/%s", network.Name)
	}

	return nil
}

func kubernetesVars(backend models.StoreBackend, vars map[string]string) error {
	if backend.ServerURL == "" {
		return srvErrors.NewConfigurationError("kubernetes store backend requires a server_url")
	}

	vars["commissaire_kubernetes_api_server_url"] = backend.ServerURL
	if backend.CertificateCAPath != "" {
		vars["commissaire_kubernetes_ca_path_local"] = backend.CertificateCAPath
	}
	if backend.CertificatePath != "" {
		vars["commissaire_kubernetes_client_cert_path_local"] = backend.CertificatePath
	}
	if backend.CertificateKeyPath != "" {
		vars["commissaire_kubernetes_client_key_path_local"] = backend.CertificateKeyPath
	}

	return nil
}
