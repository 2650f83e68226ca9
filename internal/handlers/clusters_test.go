package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	v1 "github.com/commissaire-project/bootstrap-agent/api/v1"
	"github.com/commissaire-project/bootstrap-agent/internal/handlers"
	"github.com/commissaire-project/bootstrap-agent/internal/models"
)

var _ = Describe("Cluster and Network Handlers", func() {
	var (
		mockHosts    *MockHostService
		mockClusters *MockClusterService
		mockNetworks *MockNetworkService
		router       *gin.Engine
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		mockHosts = NewMockHostService()
		mockClusters = NewMockClusterService()
		mockNetworks = NewMockNetworkService()
		handler := handlers.New(mockHosts, mockClusters, mockNetworks)

		router = gin.New()
		router.GET("/clusters", handler.ListClusters)
		router.GET("/cluster/:name", handler.GetCluster)
		router.PUT("/cluster/:name", handler.SaveCluster)
		router.DELETE("/cluster/:name", handler.DeleteCluster)
		router.GET("/networks", handler.ListNetworks)
		router.GET("/network/:name", handler.GetNetwork)
		router.PUT("/network/:name", handler.SaveNetwork)
		router.DELETE("/network/:name", handler.DeleteNetwork)
		router.GET("/status", handler.GetAgentStatus)
	})

	Describe("SaveCluster", func() {
		// Given a cluster body naming a network
		// When we PUT the cluster
		// Then it should be stored and returned with 201 Created
		It("should save a cluster", func() {
			req := httptest.NewRequest(http.MethodPut, "/cluster/default", bytes.NewReader([]byte(`{"network":"default"}`)))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(mockClusters.Clusters).To(HaveKey("default"))
			Expect(mockClusters.Clusters["default"].Network).To(Equal("default"))
		})
	})

	Describe("GetCluster", func() {
		// Given no cluster with the name
		// When we GET it
		// Then it should answer 404 Not Found
		It("should answer not found for an unknown cluster", func() {
			req := httptest.NewRequest(http.MethodGet, "/cluster/missing", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("SaveNetwork", func() {
		// Given a valid network body
		// When we PUT the network
		// Then it should be stored with its options
		It("should save a network", func() {
			body, _ := json.Marshal(v1.SaveNetworkRequest{
				Type:    "flannel_etcd",
				Options: map[string]string{"subnet": "10.254.0.0/16"},
			})
			req := httptest.NewRequest(http.MethodPut, "/network/default", bytes.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(mockNetworks.Networks["default"].Type).To(Equal(models.NetworkTypeFlannelEtcd))
		})

		// Given a body with an unknown network type
		// When we PUT the network
		// Then it should be rejected with 400 Bad Request
		It("should reject an unknown network type", func() {
			req := httptest.NewRequest(http.MethodPut, "/network/default", bytes.NewReader([]byte(`{"type":"vxlan"}`)))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(mockNetworks.Networks).To(BeEmpty())
		})
	})

	Describe("GetAgentStatus", func() {
		// Given hosts in mixed states plus a cluster and a network
		// When we GET the agent status
		// Then the summary should count them
		It("should summarize the registry", func() {
			mockHosts.Hosts["10.2.0.2"] = &models.Host{Address: "10.2.0.2", Status: models.HostStatusActive}
			mockHosts.Hosts["10.2.0.3"] = &models.Host{Address: "10.2.0.3", Status: models.HostStatusFailed}
			mockClusters.Clusters["default"] = &models.Cluster{Name: "default"}
			mockNetworks.Networks["default"] = &models.Network{Name: "default", Type: models.NetworkTypeFlannelEtcd}

			req := httptest.NewRequest(http.MethodGet, "/status", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var response v1.AgentStatus
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Hosts).To(HaveKeyWithValue("active", 1))
			Expect(response.Hosts).To(HaveKeyWithValue("failed", 1))
			Expect(response.Clusters).To(Equal(1))
			Expect(response.Networks).To(Equal(1))
		})
	})
})
