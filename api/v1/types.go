// Package v1 holds the wire types of the agent's REST API.
package v1

// Facts are the normalized host characteristics reported over the API.
type Facts struct {
	OS     string `json:"os"`
	CPUs   int64  `json:"cpus"`
	Memory int64  `json:"memory"`
	Space  int64  `json:"space"`
}

// Host is the API view of a registered host.
type Host struct {
	Address   string `json:"address"`
	Cluster   string `json:"cluster,omitempty"`
	Status    string `json:"status"`
	OSFamily  string `json:"os_family,omitempty"`
	Facts     *Facts `json:"facts,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// RegisterHostRequest registers a host for investigation and bootstrap.
// The host address comes from the request path.
type RegisterHostRequest struct {
	Cluster    string `json:"cluster"`
	SSHKeyPath string `json:"ssh_key_path" binding:"required"`
}

// HostStatus pairs the stored lifecycle state with the live pipeline state.
type HostStatus struct {
	Address string `json:"address"`
	Status  string `json:"status"`
	State   string `json:"state"`
	Error   string `json:"error,omitempty"`
}

// Cluster is the API view of a cluster.
type Cluster struct {
	Name    string `json:"name"`
	Network string `json:"network,omitempty"`
}

// SaveClusterRequest creates or replaces a cluster.
type SaveClusterRequest struct {
	Network string `json:"network"`
}

// Network is the API view of a cluster network.
type Network struct {
	Name    string            `json:"name"`
	Type    string            `json:"type"`
	Options map[string]string `json:"options,omitempty"`
}

// SaveNetworkRequest creates or replaces a network.
type SaveNetworkRequest struct {
	Type    string            `json:"type" binding:"required"`
	Options map[string]string `json:"options"`
}

// AgentStatus summarizes the registry for the status endpoint.
type AgentStatus struct {
	Hosts    map[string]int `json:"hosts"`
	Clusters int            `json:"clusters"`
	Networks int            `json:"networks"`
}

// Error is the uniform error body returned by the API.
type Error struct {
	Message string `json:"message"`
}
