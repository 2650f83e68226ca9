package v1

import (
	"time"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
)

// NewHost converts a model host to its API form.
func NewHost(host *models.Host) Host {
	h := Host{
		Address:   host.Address,
		Cluster:   host.Cluster,
		Status:    string(host.Status),
		OSFamily:  string(host.OSFamily),
		CreatedAt: host.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: host.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if host.Facts != nil {
		h.Facts = &Facts{
			OS:     host.Facts.OS,
			CPUs:   host.Facts.CPUs,
			Memory: host.Facts.Memory,
			Space:  host.Facts.Space,
		}
	}
	return h
}

func NewHostList(hosts []models.Host) []Host {
	out := make([]Host, 0, len(hosts))
	for i := range hosts {
		out = append(out, NewHost(&hosts[i]))
	}
	return out
}

// NewHostStatus combines the stored record with the pipeline state.
func NewHostStatus(host *models.Host, status models.BootstrapStatus) HostStatus {
	hs := HostStatus{
		Address: host.Address,
		Status:  string(host.Status),
		State:   string(status.State),
	}
	if status.Error != nil {
		hs.Error = status.Error.Error()
	}
	return hs
}

// ToModel builds the model host registered by the request.
func (r *RegisterHostRequest) ToModel(address string) *models.Host {
	return &models.Host{
		Address:    address,
		Cluster:    r.Cluster,
		SSHKeyPath: r.SSHKeyPath,
	}
}

func NewCluster(cluster *models.Cluster) Cluster {
	return Cluster{Name: cluster.Name, Network: cluster.Network}
}

func NewClusterList(clusters []models.Cluster) []Cluster {
	out := make([]Cluster, 0, len(clusters))
	for i := range clusters {
		out = append(out, NewCluster(&clusters[i]))
	}
	return out
}

func NewNetwork(network *models.Network) Network {
	return Network{
		Name:    network.Name,
		Type:    string(network.Type),
		Options: network.Options,
	}
}

func NewNetworkList(networks []models.Network) []Network {
	out := make([]Network, 0, len(networks))
	for i := range networks {
		out = append(out, NewNetwork(&networks[i]))
	}
	return out
}

// NewAgentStatus summarizes the registry contents by host status.
func NewAgentStatus(hosts []models.Host, clusters []models.Cluster, networks []models.Network) AgentStatus {
	status := AgentStatus{
		Hosts:    map[string]int{},
		Clusters: len(clusters),
		Networks: len(networks),
	}
	for i := range hosts {
		status.Hosts[string(hosts[i].Status)]++
	}
	return status
}
