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
	srvErrors "github.com/commissaire-project/bootstrap-agent/pkg/errors"
)

var _ = Describe("Host Handlers", func() {
	var (
		mockHosts *MockHostService
		router    *gin.Engine
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		mockHosts = NewMockHostService()
		handler := handlers.New(mockHosts, NewMockClusterService(), NewMockNetworkService())

		router = gin.New()
		router.GET("/hosts", handler.ListHosts)
		router.GET("/host/:address", handler.GetHost)
		router.PUT("/host/:address", handler.RegisterHost)
		router.DELETE("/host/:address", handler.DeleteHost)
		router.GET("/host/:address/status", handler.GetHostStatus)
		router.GET("/host/:address/facts", handler.GetHostFacts)
	})

	Describe("RegisterHost", func() {
		// Given a valid registration body
		// When we PUT the host
		// Then it should be registered and returned with 201 Created
		It("should register a host", func() {
			body, _ := json.Marshal(v1.RegisterHostRequest{
				Cluster:    "default",
				SSHKeyPath: "/path/to/key",
			})
			req := httptest.NewRequest(http.MethodPut, "/host/10.2.0.2", bytes.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusCreated))
			var response v1.Host
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Address).To(Equal("10.2.0.2"))
			Expect(response.Status).To(Equal("investigating"))
			Expect(mockHosts.RegisterCallCount).To(Equal(1))
			Expect(mockHosts.Registered[0].SSHKeyPath).To(Equal("/path/to/key"))
		})

		// Given a body without the ssh key path
		// When we PUT the host
		// Then it should be rejected with 400 Bad Request
		It("should reject a body missing the ssh key path", func() {
			req := httptest.NewRequest(http.MethodPut, "/host/10.2.0.2", bytes.NewReader([]byte(`{"cluster":"default"}`)))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(mockHosts.RegisterCallCount).To(Equal(0))
		})

		// Given a host whose pipeline is still running
		// When we PUT the host again
		// Then it should answer 409 Conflict
		It("should answer conflict while a pipeline is running", func() {
			mockHosts.RegisterError = srvErrors.NewBootstrapInProgressError()
			body, _ := json.Marshal(v1.RegisterHostRequest{SSHKeyPath: "/path/to/key"})
			req := httptest.NewRequest(http.MethodPut, "/host/10.2.0.2", bytes.NewReader(body))
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusConflict))
		})
	})

	Describe("GetHost", func() {
		// Given a registered host
		// When we GET it by address
		// Then it should be returned with 200 OK
		It("should return the host", func() {
			mockHosts.Hosts["10.2.0.2"] = &models.Host{
				Address: "10.2.0.2",
				Status:  models.HostStatusActive,
				Facts:   &models.Facts{OS: "fedora", CPUs: 2, Memory: 2048, Space: 11447746560},
			}
			req := httptest.NewRequest(http.MethodGet, "/host/10.2.0.2", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var response v1.Host
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Status).To(Equal("active"))
			Expect(response.Facts.OS).To(Equal("fedora"))
		})

		// Given no host at the address
		// When we GET it
		// Then it should answer 404 Not Found
		It("should answer not found for an unknown host", func() {
			req := httptest.NewRequest(http.MethodGet, "/host/10.9.9.9", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("GetHostStatus", func() {
		// Given a host with a failed pipeline
		// When we GET its status
		// Then the body should carry both states and the error detail
		It("should return the stored and live states", func() {
			mockHosts.Hosts["10.2.0.2"] = &models.Host{Address: "10.2.0.2", Status: models.HostStatusFailed}
			mockHosts.Statuses["10.2.0.2"] = models.BootstrapStatus{
				State: models.BootstrapStateError,
				Host:  "10.2.0.2",
				Error: srvErrors.NewRunFailedError(2),
			}
			req := httptest.NewRequest(http.MethodGet, "/host/10.2.0.2/status", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var response v1.HostStatus
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Status).To(Equal("failed"))
			Expect(response.State).To(Equal("error"))
			Expect(response.Error).To(ContainSubstring("status 2"))
		})
	})

	Describe("GetHostFacts", func() {
		// Given a host that has not finished investigation
		// When we GET its facts
		// Then it should answer 404 Not Found
		It("should answer not found before facts are gathered", func() {
			mockHosts.Hosts["10.2.0.2"] = &models.Host{Address: "10.2.0.2", Status: models.HostStatusInvestigating}
			req := httptest.NewRequest(http.MethodGet, "/host/10.2.0.2/facts", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		// Given an investigated host
		// When we GET its facts
		// Then the normalized facts should be returned
		It("should return the facts", func() {
			mockHosts.Hosts["10.2.0.2"] = &models.Host{
				Address: "10.2.0.2",
				Status:  models.HostStatusActive,
				Facts:   &models.Facts{OS: "fedora", CPUs: 2, Memory: 2048, Space: 11447746560},
			}
			req := httptest.NewRequest(http.MethodGet, "/host/10.2.0.2/facts", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var response v1.Facts
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response.Space).To(Equal(int64(11447746560)))
		})
	})

	Describe("DeleteHost", func() {
		// Given a registered host
		// When we DELETE it
		// Then it should answer 204 No Content and drop the record
		It("should delete the host", func() {
			mockHosts.Hosts["10.2.0.2"] = &models.Host{Address: "10.2.0.2"}
			req := httptest.NewRequest(http.MethodDelete, "/host/10.2.0.2", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusNoContent))
			Expect(mockHosts.Hosts).NotTo(HaveKey("10.2.0.2"))
		})
	})

	Describe("ListHosts", func() {
		// Given two registered hosts
		// When we GET the host list
		// Then both should be returned
		It("should list the hosts", func() {
			mockHosts.Hosts["10.2.0.2"] = &models.Host{Address: "10.2.0.2", Status: models.HostStatusActive}
			mockHosts.Hosts["10.2.0.3"] = &models.Host{Address: "10.2.0.3", Status: models.HostStatusFailed}
			req := httptest.NewRequest(http.MethodGet, "/hosts", nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
			var response []v1.Host
			Expect(json.Unmarshal(w.Body.Bytes(), &response)).To(Succeed())
			Expect(response).To(HaveLen(2))
		})
	})
})
