package models

import "fmt"

// OSFamily is the broad operating-system classification driving conditional
// provisioning logic.
type OSFamily string

const (
	OSFamilyAtomic OSFamily = "atomic"
	OSFamilyFedora OSFamily = "fedora"
	OSFamilyCentOS OSFamily = "centos"
	OSFamilyRedHat OSFamily = "redhat"
	OSFamilyRHEL   OSFamily = "rhel"
)

// OSFamilies lists every family the agent can provision.
var OSFamilies = []OSFamily{
	OSFamilyAtomic,
	OSFamilyFedora,
	OSFamilyCentOS,
	OSFamilyRedHat,
	OSFamilyRHEL,
}

func ParseOSFamily(s string) (OSFamily, error) {
	for _, f := range OSFamilies {
		if s == string(f) {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid os family: %s", s)
}
