package models

import "fmt"

// NetworkType identifies how the cluster overlay network is configured.
type NetworkType string

const (
	// NetworkTypeFlannelEtcd - flannel configured through the etcd store
	NetworkTypeFlannelEtcd NetworkType = "flannel_etcd"
	// NetworkTypeFlannelServer - flannel pointed at a dedicated server
	NetworkTypeFlannelServer NetworkType = "flannel_server"
)

func ParseNetworkType(s string) (NetworkType, error) {
	switch s {
	case "flannel_etcd":
		return NetworkTypeFlannelEtcd, nil
	case "flannel_server":
		return NetworkTypeFlannelServer, nil
	default:
		return "", fmt.Errorf("invalid network type: %s", s)
	}
}

// Network is a named cluster network definition.
type Network struct {
	Name    string
	Type    NetworkType
	Options map[string]string
}

// Cluster groups hosts under a shared network.
type Cluster struct {
	Name    string
	Network string
}
