package models

import (
	"fmt"
	"time"
)

// HostStatusType represents the lifecycle state of a managed host.
type HostStatusType string

const (
	// HostStatusInvestigating - host registered, gathering facts over ssh
	HostStatusInvestigating HostStatusType = "investigating"
	// HostStatusBootstrapping - provisioning run in progress
	HostStatusBootstrapping HostStatusType = "bootstrapping"
	// HostStatusActive - bootstrap finished, host joined the cluster
	HostStatusActive HostStatusType = "active"
	// HostStatusFailed - investigation or bootstrap failed
	HostStatusFailed HostStatusType = "failed"
	// HostStatusDisassociated - host removed from its cluster but still known
	HostStatusDisassociated HostStatusType = "disassociated"
)

func ParseHostStatusType(s string) (HostStatusType, error) {
	switch s {
	case "investigating":
		return HostStatusInvestigating, nil
	case "bootstrapping":
		return HostStatusBootstrapping, nil
	case "active":
		return HostStatusActive, nil
	case "failed":
		return HostStatusFailed, nil
	case "disassociated":
		return HostStatusDisassociated, nil
	default:
		return "", fmt.Errorf("invalid host status type: %s", s)
	}
}

// Host is a machine managed by the agent, keyed by its address.
type Host struct {
	Address    string
	Cluster    string
	SSHKeyPath string
	Status     HostStatusType
	OSFamily   OSFamily
	Facts      *Facts
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
