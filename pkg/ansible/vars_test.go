package ansible_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/commissaire-project/bootstrap-agent/internal/models"
	"github.com/commissaire-project/bootstrap-agent/pkg/ansible"
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

var _ = Describe("StoreBackendVars", func() {
	var (
		etcdBackend models.StoreBackend
		kubeBackend models.StoreBackend
		network     *models.Network
	)

	BeforeEach(func() {
		etcdBackend = models.StoreBackend{
			Type:               models.StoreBackendEtcd,
			ServerURL:          "https://192.168.1.1:1234",
			CertificateCAPath:  "/path/to/etcd/ca/cert",
			CertificatePath:    "/path/to/etcd/client/cert",
			CertificateKeyPath: "/path/to/etcd/client/key",
		}
		kubeBackend = models.StoreBackend{
			Type:               models.StoreBackendKubernetes,
			ServerURL:          "https://192.168.2.2:4567",
			CertificatePath:    "/path/to/kube/client/cert",
			CertificateKeyPath: "/path/to/kube/client/key",
		}
		network = &models.Network{Name: "default", Type: models.NetworkTypeFlannelEtcd}
	})

	// Given an etcd-typed backend
	// When we translate the backend list
	// Then the fixed etcd variable mapping is applied
	It("should translate an etcd backend", func() {
		vars, err := ansible.StoreBackendVars([]models.StoreBackend{etcdBackend}, network)
		Expect(err).NotTo(HaveOccurred())

		Expect(vars).To(HaveKeyWithValue("commissaire_etcd_server_url", "https://192.168.1.1:1234"))
		Expect(vars).To(HaveKeyWithValue("commissaire_etcd_ca_path_local", "/path/to/etcd/ca/cert"))
		Expect(vars).To(HaveKeyWithValue("commissaire_etcd_client_cert_path_local", "/path/to/etcd/client/cert"))
		Expect(vars).To(HaveKeyWithValue("commissaire_etcd_client_key_path_local", "/path/to/etcd/client/key"))
	})

	It("should translate a kubernetes backend", func() {
		vars, err := ansible.StoreBackendVars([]models.StoreBackend{kubeBackend}, network)
		Expect(err).NotTo(HaveOccurred())

		Expect(vars).To(HaveKeyWithValue("commissaire_kubernetes_api_server_url", "https://192.168.2.2:4567"))
		Expect(vars).To(HaveKeyWithValue("commissaire_kubernetes_client_cert_path_local", "/path/to/kube/client/cert"))
		Expect(vars).To(HaveKeyWithValue("commissaire_kubernetes_client_key_path_local", "/path/to/kube/client/key"))
		Expect(vars).NotTo(HaveKey("commissaire_kubernetes_ca_path_local"))
	})

	It("should emit the flannel key when the network runs flannel over etcd", func() {
		vars, err := ansible.StoreBackendVars([]models.StoreBackend{etcdBackend, kubeBackend}, network)
		Expect(err).NotTo(HaveOccurred())

		Expect(vars).To(HaveKeyWithValue("commissaire_flannel_key", "/commissaire/networks/default"))
	})

	It("should not emit the flannel key for other network types", func() {
		network.Type = models.NetworkTypeFlannelServer

		vars, err := ansible.StoreBackendVars([]models.StoreBackend{etcdBackend}, network)
		Expect(err).NotTo(HaveOccurred())

		Expect(vars).NotTo(HaveKey("commissaire_flannel_key"))
	})

	// Given a backend of a type this agent does not model
	// When we translate the backend list
	// Then the backend is skipped without error
	It("should skip unrecognized backend types", func() {
		unknown := models.StoreBackend{Type: "consul", ServerURL: "https://192.168.3.3:8500"}

		vars, err := ansible.StoreBackendVars([]models.StoreBackend{unknown, etcdBackend}, network)
		Expect(err).NotTo(HaveOccurred())

		Expect(vars).To(HaveKey("commissaire_etcd_server_url"))
		for name := range vars {
			Expect(name).NotTo(ContainSubstring("consul"))
		}
	})

	It("should fail fast on a recognized backend missing its server url", func() {
		etcdBackend.ServerURL = ""

		_, err := ansible.StoreBackendVars([]models.StoreBackend{etcdBackend}, network)
		Expect(err).To(HaveOccurred())
		Expect(srvErrors.IsConfigurationError(err)).To(BeTrue())
	})
})
