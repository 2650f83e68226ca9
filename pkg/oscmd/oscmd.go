// Package oscmd selects OS-family specific provisioning commands.
//
// Each supported family provides an OSCmd implementation; the bootstrap
// pipeline resolves one from the os fact reported by the host and passes
// the resulting commands to the provisioning runbook as play variables.
package oscmd

import (
	"github.com/commissaire-project/bootstrap-agent/internal/models"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

// noop is the shell command used where a family needs nothing done.
const noop = "true"

// OSCmd is the per-family command strategy handed to the automation run.
type OSCmd interface {
	// Family returns the OS family the command set targets.
	Family() models.OSFamily
	// InstallDocker returns the argv installing the container runtime.
	InstallDocker() []string
	// InstallKube returns the argv installing the kubernetes node bits.
	InstallKube() []string
	// EnableReposCommand returns the shell command enabling the package
	// repositories bootstrap needs, or "true" when none are required.
	EnableReposCommand() string
}

// Get resolves the command set for a family. Families must be validated
// before the provisioning run is built, so an unknown family is reported
// as an UnsupportedOSError rather than falling back to a default.
func Get(family models.OSFamily) (OSCmd, error) {
	switch family {
	case models.OSFamilyAtomic:
		return atomic{}, nil
	case models.OSFamilyFedora:
		return fedora{}, nil
	case models.OSFamilyCentOS:
		return centos{}, nil
	case models.OSFamilyRedHat:
		return redhat{family: models.OSFamilyRedHat}, nil
	case models.OSFamilyRHEL:
		return redhat{family: models.OSFamilyRHEL}, nil
	default:
		return nil, srvErrors.NewUnsupportedOSError(string(family))
	}
}
