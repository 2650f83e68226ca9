package models

// StoreBackendType identifies a persistent-store flavor the cluster uses.
type StoreBackendType string

const (
	StoreBackendEtcd       StoreBackendType = "etcd"
	StoreBackendKubernetes StoreBackendType = "kubernetes"
)

// StoreBackend is one configured persistent-store target. The agent never
// talks to the store itself; the connection details are translated into
// play variables so the provisioning runbook can wire the host up.
type StoreBackend struct {
	Type               StoreBackendType
	ServerURL          string
	CertificateCAPath  string
	CertificatePath    string
	CertificateKeyPath string
	DriverArgs         []string
}
