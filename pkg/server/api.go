package server

import (
	"fmt"

	"github.com/NeuralTrust/MaskFlow/pkg/config"
	"github.com/NeuralTrust/MaskFlow/pkg/server/router"
	"github.com/sirupsen/logrus"
)

type (
	APIServerDI struct {
		Routers []router.ServerRouter
		Config  *config.Config
		Logger  *logrus.Logger
	}
	APIServer struct {
		*BaseServer
		routers []router.ServerRouter
	}
)

func NewAPIServer(di APIServerDI) *APIServer {
	return &APIServer{
		BaseServer: NewBaseServer(di.Config, di.Logger),
		routers:    di.Routers,
	}
}

func (s *APIServer) Run() error {
	s.setupHealthCheck()
	s.WithRouters(s.routers...)
	s.setupMetricsEndpoint()

	addr := fmt.Sprintf(":%d", s.Config.Server.Port)
	s.Logger.WithField("addr", addr).Info("starting maskflow api server")
	return s.Router.Listen(addr)
}

func (s *APIServer) Shutdown() error {
	s.shutdownMetrics()
	return s.Router.Shutdown()
}
