package oscmd

import (
	"github.com/commissaire-project/bootstrap-agent/internal/models"
)

// fedora installs through dnf and needs no extra repositories.
type fedora struct{}

func (fedora) Family() models.OSFamily { return models.OSFamilyFedora }

func (fedora) InstallDocker() []string {
	return []string{"dnf", "install", "-y", "docker"}
}

func (fedora) InstallKube() []string {
	return []string{"dnf", "install", "-y", "kubernetes-node"}
}

func (fedora) EnableReposCommand() string { return noop }

// centos installs through yum and needs no extra repositories.
type centos struct{}

func (centos) Family() models.OSFamily { return models.OSFamilyCentOS }

func (centos) InstallDocker() []string {
	return []string{"yum", "install", "-y", "docker"}
}

func (centos) InstallKube() []string {
	return []string{"yum", "install", "-y", "kubernetes-node"}
}

func (centos) EnableReposCommand() string { return noop }

// redhat covers both the redhat and rhel families. Packages live in
// entitled repositories, so bootstrap must enable them first.
type redhat struct {
	family models.OSFamily
}

func (r redhat) Family() models.OSFamily { return r.family }

func (redhat) InstallDocker() []string {
	return []string{"yum", "install", "-y", "docker"}
}

func (redhat) InstallKube() []string {
	return []string{"yum", "install", "-y", "kubernetes-node"}
}

func (redhat) EnableReposCommand() string {
	return "subscription-manager repos " +
		"--enable=rhel-7-server-extras-rpms " +
		"--enable=rhel-7-server-optional-rpms"
}

// atomic ships its container tooling in the image, so every command is
// a no-op.
type atomic struct{}

func (atomic) Family() models.OSFamily { return models.OSFamilyAtomic }

func (atomic) InstallDocker() []string { return []string{noop} }

func (atomic) InstallKube() []string { return []string{noop} }

func (atomic) EnableReposCommand() string { return noop }
