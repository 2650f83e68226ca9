// Package server wires the HTTP API: router, middleware and lifecycle.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/commissaire-project/bootstrap-agent/internal/config"
	"github.com/commissaire-project/bootstrap-agent/internal/handlers"
	"github.com/commissaire-project/bootstrap-agent/internal/server/middlewares"
)

type Server struct {
	cfg        *config.Configuration
	handler    *handlers.Handler
	httpServer *http.Server
	log        *zap.SugaredLogger
}

func New(cfg *config.Configuration, handler *handlers.Handler) *Server {
	return &Server{
		cfg:     cfg,
		handler: handler,
		log:     zap.S().Named("server"),
	}
}

// Router builds the gin engine with middleware and every API route bound.
func (s *Server) Router() (*gin.Engine, error) {
	if s.cfg.Server.ServerMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	logger := zap.L().Named("http")
	router.Use(middlewares.Logger(logger), middlewares.Recovery(logger))

	api := router.Group("/api/v0")
	if s.cfg.Auth.Enabled {
		auth, err := middlewares.JWTAuth(s.cfg.Auth.JWTFilePath)
		if err != nil {
			return nil, err
		}
		api.Use(auth)
	}

	api.GET("/hosts", s.handler.ListHosts)
	api.GET("/host/:address", s.handler.GetHost)
	api.PUT("/host/:address", s.handler.RegisterHost)
	api.DELETE("/host/:address", s.handler.DeleteHost)
	api.GET("/host/:address/status", s.handler.GetHostStatus)
	api.GET("/host/:address/facts", s.handler.GetHostFacts)

	api.GET("/clusters", s.handler.ListClusters)
	api.GET("/cluster/:name", s.handler.GetCluster)
	api.PUT("/cluster/:name", s.handler.SaveCluster)
	api.DELETE("/cluster/:name", s.handler.DeleteCluster)

	api.GET("/networks", s.handler.ListNetworks)
	api.GET("/network/:name", s.handler.GetNetwork)
	api.PUT("/network/:name", s.handler.SaveNetwork)
	api.DELETE("/network/:name", s.handler.DeleteNetwork)

	api.GET("/status", s.handler.GetAgentStatus)

	return router, nil
}

// Start serves the API until the listener fails or Stop is called.
func (s *Server) Start() error {
	router, err := s.Router()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Server.ListenInterface, s.cfg.Server.HTTPPort)
	s.httpServer = &http.Server{Addr: addr, Handler: router}

	s.log.Infow("serving api", "address", addr, "tls", s.cfg.Server.TLSCertFile != "")

	if s.cfg.Server.TLSCertFile != "" {
		err = s.httpServer.ListenAndServeTLS(s.cfg.Server.TLSCertFile, s.cfg.Server.TLSKeyFile)
	} else {
		err = s.httpServer.ListenAndServe()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop drains in-flight requests and shuts the listener down.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
